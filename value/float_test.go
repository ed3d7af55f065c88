package value

import (
	"math"
	"testing"

	"github.com/dshills/valuekit/observe"
)

func TestNewFloat64(t *testing.T) {
	f := NewFloat64(2.5)
	if got := f.Get(); got != 2.5 {
		t.Errorf("Get() = %v, want 2.5", got)
	}
}

func TestFloat_MulOverflowsToInfinity(t *testing.T) {
	f := NewFloat64(math.MaxFloat64)
	f.Mul(2)
	if got := f.Get(); !math.IsInf(got, 1) {
		t.Errorf("Get() = %v, want +Inf", got)
	}
}

func TestFloat_DivByZero(t *testing.T) {
	f := NewFloat64(1)
	f.Div(0)
	if got := f.Get(); !math.IsInf(got, 1) {
		t.Errorf("1/0 = %v, want +Inf", got)
	}

	f = NewFloat64(0)
	f.Div(0)
	if got := f.Get(); !math.IsNaN(got) {
		t.Errorf("0/0 = %v, want NaN", got)
	}
}

func TestFloat_Arithmetic(t *testing.T) {
	f := NewFloat64(10)
	got := f.Add(2.5).Sub(0.5).Mul(2).Div(4).Get()
	if got != 6 {
		t.Errorf("chained result = %v, want 6", got)
	}
}

func TestFloat_AddGetAndGetAdd(t *testing.T) {
	f := NewFloat64(1.5)

	if got := f.AddGet(1); got != 2.5 {
		t.Errorf("AddGet(1) = %v, want 2.5", got)
	}
	if got := f.GetAdd(1); got != 2.5 {
		t.Errorf("GetAdd(1) = %v, want 2.5", got)
	}
	if got := f.Get(); got != 3.5 {
		t.Errorf("Get() = %v, want 3.5", got)
	}
}

func TestFloat_SetNotifies(t *testing.T) {
	f := NewFloat64(1)

	var got observe.Change[float64]
	var calls int
	f.OnChange(func(c observe.Change[float64]) {
		got = c
		calls++
	})

	f.Set(2)
	if calls != 1 {
		t.Fatalf("listener calls = %d, want 1", calls)
	}
	if got.Old != 1 || got.New != 2 {
		t.Errorf("change = %v -> %v, want 1 -> 2", got.Old, got.New)
	}

	f.Set(2)
	if calls != 1 {
		t.Errorf("listener calls after no-op set = %d, want 1", calls)
	}
}

func TestFloat32_Arithmetic(t *testing.T) {
	f := NewFloat32(1.5)
	f.Add(1)
	if got := f.Get(); got != 2.5 {
		t.Errorf("Get() = %v, want 2.5", got)
	}

	f = NewFloat32(math.MaxFloat32)
	f.Mul(2)
	if got := f.Get(); !math.IsInf(float64(got), 1) {
		t.Errorf("Get() = %v, want +Inf", got)
	}
}

func TestFloat_Predicates(t *testing.T) {
	f := NewFloat64(-0.5)

	if f.IsPositive() {
		t.Error("IsPositive() = true, want false")
	}
	if !f.IsNegative() {
		t.Error("IsNegative() = false, want true")
	}
	if !f.IsEqualTo(-0.5) {
		t.Error("IsEqualTo(-0.5) = false, want true")
	}
	if !f.IsLessThan(0) {
		t.Error("IsLessThan(0) = false, want true")
	}
	if !f.IsGreaterThan(-1) {
		t.Error("IsGreaterThan(-1) = false, want true")
	}

	nan := NewFloat64(math.NaN())
	if nan.IsEqualTo(math.NaN()) {
		t.Error("NaN IsEqualTo NaN = true, want false")
	}
}

func TestFloat_Compare(t *testing.T) {
	tests := []struct {
		v     float64
		other float64
		want  int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{2, 2, 0},
	}

	for _, tt := range tests {
		if got := NewFloat64(tt.v).Compare(tt.other); got != tt.want {
			t.Errorf("NewFloat64(%v).Compare(%v) = %d, want %d", tt.v, tt.other, got, tt.want)
		}
	}
}

package container

import (
	"errors"
	"testing"
)

type widget struct {
	name string
}

type gadget struct {
	closedAt *[]string
	name     string
}

func (g *gadget) Close() error {
	*g.closedAt = append(*g.closedAt, g.name)
	return nil
}

func TestProvideResolve(t *testing.T) {
	c := New()
	defer c.Close()

	if err := Provide(c, func() *widget { return &widget{name: "w"} }); err != nil {
		t.Fatalf("Provide error: %v", err)
	}

	w, err := Resolve[*widget](c)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if w.name != "w" {
		t.Errorf("name = %q, want %q", w.name, "w")
	}
}

func TestResolve_Singleton(t *testing.T) {
	c := New()
	defer c.Close()

	var constructed int
	_ = Provide(c, func() *widget {
		constructed++
		return &widget{}
	})

	a := MustResolve[*widget](c)
	b := MustResolve[*widget](c)

	if a != b {
		t.Error("Resolve returned different instances")
	}
	if constructed != 1 {
		t.Errorf("constructor ran %d times, want 1", constructed)
	}
}

func TestResolve_NotProvided(t *testing.T) {
	c := New()
	defer c.Close()

	_, err := Resolve[*widget](c)
	if !errors.Is(err, ErrNotProvided) {
		t.Errorf("error = %v, want ErrNotProvided", err)
	}
}

func TestProvide_Duplicate(t *testing.T) {
	c := New()
	defer c.Close()

	_ = Provide(c, func() *widget { return &widget{} })
	err := Provide(c, func() *widget { return &widget{} })
	if !errors.Is(err, ErrAlreadyProvided) {
		t.Errorf("error = %v, want ErrAlreadyProvided", err)
	}
}

func TestProvideValue(t *testing.T) {
	c := New()
	defer c.Close()

	want := &widget{name: "direct"}
	if err := ProvideValue(c, want); err != nil {
		t.Fatalf("ProvideValue error: %v", err)
	}

	got := MustResolve[*widget](c)
	if got != want {
		t.Error("resolved instance differs from provided value")
	}
}

func TestHas(t *testing.T) {
	c := New()
	defer c.Close()

	if Has[*widget](c) {
		t.Error("Has = true before Provide")
	}
	_ = Provide(c, func() *widget { return &widget{} })
	if !Has[*widget](c) {
		t.Error("Has = false after Provide")
	}
}

func TestClose_SkipsNonClosers(t *testing.T) {
	c := New()

	var closed []string
	_ = Provide(c, func() *gadget { return &gadget{closedAt: &closed, name: "first"} })
	_ = ProvideValue(c, &widget{}) // not a Closer, skipped on Close

	_ = MustResolve[*gadget](c)
	_ = MustResolve[*widget](c)

	if err := c.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if len(closed) != 1 || closed[0] != "first" {
		t.Errorf("closed = %v, want [first]", closed)
	}
}

func TestClose_ReverseOrder(t *testing.T) {
	c := New()

	var closed []string
	_ = ProvideValue(c, &gadget{closedAt: &closed, name: "a"})
	type second struct{ gadget }
	_ = Provide(c, func() *second {
		return &second{gadget{closedAt: &closed, name: "b"}}
	})

	_ = MustResolve[*gadget](c)
	_ = MustResolve[*second](c)

	if err := c.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if len(closed) != 2 || closed[0] != "b" || closed[1] != "a" {
		t.Errorf("close order = %v, want [b a]", closed)
	}
}

func TestClosedContainer(t *testing.T) {
	c := New()
	_ = c.Close()

	if err := Provide(c, func() *widget { return &widget{} }); !errors.Is(err, ErrClosed) {
		t.Errorf("Provide after Close error = %v, want ErrClosed", err)
	}
	if _, err := Resolve[*widget](c); !errors.Is(err, ErrClosed) {
		t.Errorf("Resolve after Close error = %v, want ErrClosed", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close error = %v, want nil", err)
	}
}

func TestResolve_InterfaceType(t *testing.T) {
	c := New()
	defer c.Close()

	_ = Provide(c, func() error { return errors.New("boom") })

	got, err := Resolve[error](c)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got.Error() != "boom" {
		t.Errorf("resolved error = %q, want %q", got.Error(), "boom")
	}
}

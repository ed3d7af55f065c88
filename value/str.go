package value

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Str is an immutable string value object. Every transformation returns a
// new Str; the receiver is never modified. Str is a value type and is safe
// to copy and compare with ==.
type Str struct {
	s string
}

// NewStr creates a Str holding s.
func NewStr(s string) Str {
	return Str{s: s}
}

// Get returns the wrapped string.
func (s Str) Get() string {
	return s.s
}

// String returns the wrapped string.
func (s Str) String() string {
	return s.s
}

// Len returns the length of the wrapped string in bytes.
func (s Str) Len() int {
	return len(s.s)
}

// RuneLen returns the number of grapheme clusters (user-perceived
// characters) in the wrapped string.
func (s Str) RuneLen() int {
	return uniseg.GraphemeClusterCount(s.s)
}

// IsEmpty reports whether the wrapped string has zero length.
func (s Str) IsEmpty() bool {
	return s.s == ""
}

// IsBlank reports whether the wrapped string is empty or all whitespace.
func (s Str) IsBlank() bool {
	return strings.TrimSpace(s.s) == ""
}

// Equal reports whether both wrappers hold the same string.
func (s Str) Equal(other Str) bool {
	return s.s == other.s
}

// Compare returns -1, 0, or 1 ordering the wrapped string against other
// lexically.
func (s Str) Compare(other Str) int {
	return strings.Compare(s.s, other.s)
}

// Trim returns a new Str with leading and trailing whitespace removed.
func (s Str) Trim() Str {
	return Str{s: strings.TrimSpace(s.s)}
}

// TrimLeft returns a new Str with leading whitespace removed.
func (s Str) TrimLeft() Str {
	return Str{s: strings.TrimLeftFunc(s.s, unicode.IsSpace)}
}

// TrimRight returns a new Str with trailing whitespace removed.
func (s Str) TrimRight() Str {
	return Str{s: strings.TrimRightFunc(s.s, unicode.IsSpace)}
}

// TrimPrefix returns a new Str with prefix removed, if present.
func (s Str) TrimPrefix(prefix string) Str {
	return Str{s: strings.TrimPrefix(s.s, prefix)}
}

// TrimSuffix returns a new Str with suffix removed, if present.
func (s Str) TrimSuffix(suffix string) Str {
	return Str{s: strings.TrimSuffix(s.s, suffix)}
}

// ToUpper returns a new Str with all letters upper-cased.
func (s Str) ToUpper() Str {
	return Str{s: strings.ToUpper(s.s)}
}

// ToLower returns a new Str with all letters lower-cased.
func (s Str) ToLower() Str {
	return Str{s: strings.ToLower(s.s)}
}

// ToTitle returns a new Str title-cased per the casing rules of tag.
func (s Str) ToTitle(tag language.Tag) Str {
	return Str{s: cases.Title(tag).String(s.s)}
}

// Contains reports whether the wrapped string contains sub.
func (s Str) Contains(sub string) bool {
	return strings.Contains(s.s, sub)
}

// ContainsFold reports whether the wrapped string contains sub under
// case folding.
func (s Str) ContainsFold(sub string) bool {
	return strings.Contains(strings.ToLower(s.s), strings.ToLower(sub))
}

// Index returns the byte index of the first occurrence of sub, or -1.
func (s Str) Index(sub string) int {
	return strings.Index(s.s, sub)
}

// LastIndex returns the byte index of the last occurrence of sub, or -1.
func (s Str) LastIndex(sub string) int {
	return strings.LastIndex(s.s, sub)
}

// HasPrefix reports whether the wrapped string starts with prefix.
func (s Str) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.s, prefix)
}

// HasSuffix reports whether the wrapped string ends with suffix.
func (s Str) HasSuffix(suffix string) bool {
	return strings.HasSuffix(s.s, suffix)
}

// EnsurePrefix returns a new Str guaranteed to start with prefix.
func (s Str) EnsurePrefix(prefix string) Str {
	if strings.HasPrefix(s.s, prefix) {
		return s
	}
	return Str{s: prefix + s.s}
}

// EnsureSuffix returns a new Str guaranteed to end with suffix.
func (s Str) EnsureSuffix(suffix string) Str {
	if strings.HasSuffix(s.s, suffix) {
		return s
	}
	return Str{s: s.s + suffix}
}

// Split slices the wrapped string around each instance of sep.
func (s Str) Split(sep string) []Str {
	parts := strings.Split(s.s, sep)
	out := make([]Str, len(parts))
	for i, p := range parts {
		out[i] = Str{s: p}
	}
	return out
}

// Fields splits the wrapped string around runs of whitespace.
func (s Str) Fields() []Str {
	parts := strings.Fields(s.s)
	out := make([]Str, len(parts))
	for i, p := range parts {
		out[i] = Str{s: p}
	}
	return out
}

// Join concatenates the wrapped strings of elems with sep between them.
func Join(elems []Str, sep string) Str {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = e.s
	}
	return Str{s: strings.Join(parts, sep)}
}

// Concat returns a new Str with parts appended.
func (s Str) Concat(parts ...string) Str {
	if len(parts) == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString(s.s)
	for _, p := range parts {
		b.WriteString(p)
	}
	return Str{s: b.String()}
}

// Repeat returns a new Str holding count copies of the wrapped string.
// A non-positive count yields the empty Str.
func (s Str) Repeat(count int) Str {
	if count <= 0 {
		return Str{}
	}
	return Str{s: strings.Repeat(s.s, count)}
}

// ReplaceAll returns a new Str with all occurrences of old replaced by new.
func (s Str) ReplaceAll(old, new string) Str {
	return Str{s: strings.ReplaceAll(s.s, old, new)}
}

// Reverse returns a new Str with grapheme clusters in reverse order.
// Combining sequences stay intact, so Reverse composed with itself is the
// identity.
func (s Str) Reverse() Str {
	gr := uniseg.NewGraphemes(s.s)
	var clusters []string
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	b.Grow(len(s.s))
	for i := len(clusters) - 1; i >= 0; i-- {
		b.WriteString(clusters[i])
	}
	return Str{s: b.String()}
}

// Quote returns a new Str holding a double-quoted Go string literal of the
// wrapped string.
func (s Str) Quote() Str {
	return Str{s: strconv.Quote(s.s)}
}

// Unquote interprets the wrapped string as a quoted literal and returns the
// unquoted value.
func (s Str) Unquote() (Str, error) {
	u, err := strconv.Unquote(s.s)
	if err != nil {
		return Str{}, fmt.Errorf("unquote %q: %w", s.s, err)
	}
	return Str{s: u}, nil
}

// Map returns a new Str holding fn applied to the wrapped string.
func (s Str) Map(fn func(string) string) Str {
	if fn == nil {
		return s
	}
	return Str{s: fn(s.s)}
}

// ToInt converts the wrapped string to an int. The string must satisfy
// IsNumeric and parse as an integer, else ErrNotNumeric is returned.
func (s Str) ToInt() (int, error) {
	if !s.IsNumeric(language.English) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s.s)
	}
	n, err := strconv.Atoi(s.s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s.s)
	}
	return n, nil
}

// ToInt64 converts the wrapped string to an int64. The string must satisfy
// IsNumeric and parse as an integer, else ErrNotNumeric is returned.
func (s Str) ToInt64() (int64, error) {
	if !s.IsNumeric(language.English) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s.s)
	}
	n, err := strconv.ParseInt(s.s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s.s)
	}
	return n, nil
}

// ToFloat32 converts the wrapped string to a float32. The string must
// satisfy IsNumeric, else ErrNotNumeric is returned.
func (s Str) ToFloat32(tag language.Tag) (float32, error) {
	f, err := s.toFloat(tag, 32)
	return float32(f), err
}

// ToFloat64 converts the wrapped string to a float64. The string must
// satisfy IsNumeric, else ErrNotNumeric is returned.
func (s Str) ToFloat64(tag language.Tag) (float64, error) {
	return s.toFloat(tag, 64)
}

func (s Str) toFloat(tag language.Tag, bitSize int) (float64, error) {
	if !s.IsNumeric(tag) {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s.s)
	}
	minus, decimal := numericGlyphs(tag)
	normalized := s.s
	if minus != '-' {
		normalized = strings.ReplaceAll(normalized, string(minus), "-")
	}
	if decimal != '.' {
		normalized = strings.ReplaceAll(normalized, string(decimal), ".")
	}
	f, err := strconv.ParseFloat(normalized, bitSize)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s.s)
	}
	return f, nil
}

package sample

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ClosedInterval is the domain [Lower, Upper] a value is drawn from.
// Both ends are included, and Lower == Upper is a valid single-value interval.
type ClosedInterval[T constraints.Ordered] struct {
	Lower T
	Upper T
}

// NewClosedInterval returns [lower, upper] or an *InvalidRangeError when
// lower > upper.
func NewClosedInterval[T constraints.Ordered](lower, upper T) (ClosedInterval[T], error) {
	iv := ClosedInterval[T]{Lower: lower, Upper: upper}
	if err := iv.Validate(); err != nil {
		return ClosedInterval[T]{}, err
	}
	return iv, nil
}

// Single returns the zero-width interval [v, v].
func Single[T constraints.Ordered](v T) ClosedInterval[T] {
	return ClosedInterval[T]{Lower: v, Upper: v}
}

// Validate checks the ordering invariant. NaN bounds never satisfy it.
func (iv ClosedInterval[T]) Validate() error {
	if iv.Lower != iv.Lower || iv.Upper != iv.Upper {
		return &InvalidRangeError{Lower: iv.Lower, Upper: iv.Upper, Reason: "bounds must be numbers"}
	}
	if iv.Lower > iv.Upper {
		return &InvalidRangeError{Lower: iv.Lower, Upper: iv.Upper}
	}
	return nil
}

// Contains reports whether v lies inside the interval, both ends included.
func (iv ClosedInterval[T]) Contains(v T) bool {
	return iv.Lower <= v && v <= iv.Upper
}

// IsSingleValue reports whether the interval holds exactly one value.
func (iv ClosedInterval[T]) IsSingleValue() bool {
	return iv.Lower == iv.Upper
}

// String renders "N" for a single value and "[a,b]" otherwise, which
// ParseClosedInterval reads back.
func (iv ClosedInterval[T]) String() string {
	if iv.IsSingleValue() {
		return fmt.Sprint(iv.Lower)
	}
	return fmt.Sprintf("[%v,%v]", iv.Lower, iv.Upper)
}

// ParseClosedInterval parses value into a closed interval using parse for
// the individual bounds.
//
// Supported formats:
//   - N
//   - =N
//   - [min,max]
//
// Spaces are ignored. Open ends ('(' or ')') and unbounded sides are
// rejected because only closed, bounded intervals can be sampled. Inverted
// bounds return an *InvalidRangeError.
func ParseClosedInterval[T constraints.Ordered](value string, parse func(string) (T, error)) (ClosedInterval[T], error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return ClosedInterval[T]{}, fmt.Errorf("empty range")
	}

	parseBound := func(side, tok string) (T, error) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			var zero T
			return zero, fmt.Errorf("missing %s bound in %q: unbounded sides are not supported", side, value)
		}
		n, err := parse(tok)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("invalid %s bound in %q: %w", side, value, err)
		}
		return n, nil
	}

	if strings.HasPrefix(s, "=") {
		n, err := parseBound("single", s[1:])
		if err != nil {
			return ClosedInterval[T]{}, err
		}
		return Single(n), nil
	}

	first, last := s[0], s[len(s)-1]
	if first == '(' || last == ')' {
		return ClosedInterval[T]{}, fmt.Errorf("only closed intervals are supported: %s", value)
	}
	if first == '[' || last == ']' {
		if len(s) < 2 || first != '[' || last != ']' {
			return ClosedInterval[T]{}, fmt.Errorf("invalid interval syntax: %s", value)
		}
		parts := strings.SplitN(s[1:len(s)-1], ",", 2)
		if len(parts) != 2 {
			return ClosedInterval[T]{}, fmt.Errorf("invalid interval syntax: %s", value)
		}
		lower, err := parseBound("left", parts[0])
		if err != nil {
			return ClosedInterval[T]{}, err
		}
		upper, err := parseBound("right", parts[1])
		if err != nil {
			return ClosedInterval[T]{}, err
		}
		return NewClosedInterval(lower, upper)
	}

	n, err := parse(s)
	if err != nil {
		return ClosedInterval[T]{}, fmt.Errorf("unrecognized range format %q: %w", value, err)
	}
	return Single(n), nil
}

// ParseUint32 parses a decimal uint32 bound.
func ParseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// ParseFloat64 parses a float64 bound.
func ParseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

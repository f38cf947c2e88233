package sample

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is matched by every *InvalidRangeError via errors.Is.
var ErrInvalidRange = errors.New("invalid range")

// InvalidRangeError reports an interval that cannot be sampled: the lower
// bound exceeds the upper bound, or a bound is not a finite number.
type InvalidRangeError struct {
	Lower  any
	Upper  any
	Reason string
}

func (e *InvalidRangeError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "lower bound exceeds upper bound"
	}
	return fmt.Sprintf("invalid range [%v,%v]: %s", e.Lower, e.Upper, reason)
}

func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}

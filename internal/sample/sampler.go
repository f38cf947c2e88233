package sample

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Sampler draws uniformly distributed values from closed intervals. It
// holds no state besides its Source, so it is as safe for concurrent use
// as the Source it wraps.
type Sampler struct {
	src Source
}

// New returns a Sampler drawing from src. A nil src selects FastSource.
func New(src Source) *Sampler {
	if src == nil {
		src = FastSource()
	}
	return &Sampler{src: src}
}

// Default samples from the process-wide fast source.
var Default = New(nil)

// Uint32 returns a value v with iv.Lower <= v <= iv.Upper, every value in
// the interval being equally likely. A zero-width interval returns
// iv.Lower without consuming randomness.
func (s *Sampler) Uint32(iv ClosedInterval[uint32]) (uint32, error) {
	if err := iv.Validate(); err != nil {
		return 0, err
	}
	width := iv.Upper - iv.Lower
	switch width {
	case 0:
		return iv.Lower, nil
	case math.MaxUint32:
		return s.src.Uint32(), nil
	}
	return iv.Lower + s.bounded(width+1), nil
}

// bounded returns a uniform value in [0, n) for n > 0 using Lemire's
// multiply-and-reject reduction, which has no modulo bias.
func (s *Sampler) bounded(n uint32) uint32 {
	prod := uint64(s.src.Uint32()) * uint64(n)
	low := uint32(prod)
	if low < n {
		thresh := -n % n
		for low < thresh {
			prod = uint64(s.src.Uint32()) * uint64(n)
			low = uint32(prod)
		}
	}
	return uint32(prod >> 32)
}

// Float returns a value in iv drawn by normalizing 32 random bits to
// [0, 1] and mapping them affinely onto the interval. Resolution is
// therefore limited to 2^32 steps regardless of T.
func Float[T constraints.Float](s *Sampler, iv ClosedInterval[T]) (T, error) {
	if err := validateFloat(iv); err != nil {
		return 0, err
	}
	if iv.IsSingleValue() {
		return iv.Lower, nil
	}

	n := T(s.src.Uint32()) / T(math.MaxUint32)
	var v T
	if width := iv.Upper - iv.Lower; !math.IsInf(float64(width), 0) {
		v = iv.Lower + n*width
	} else {
		// width overflowed, interpolate without forming it
		v = iv.Lower*(1-n) + iv.Upper*n
	}

	// 舍入误差可能越界
	if v < iv.Lower {
		return iv.Lower, nil
	}
	if v > iv.Upper {
		return iv.Upper, nil
	}
	return v, nil
}

// validateFloat checks what Float requires of iv before it draws.
func validateFloat[T constraints.Float](iv ClosedInterval[T]) error {
	if err := iv.Validate(); err != nil {
		return err
	}
	if math.IsInf(float64(iv.Lower), 0) || math.IsInf(float64(iv.Upper), 0) {
		return &InvalidRangeError{Lower: iv.Lower, Upper: iv.Upper, Reason: "bounds must be finite"}
	}
	return nil
}

// Float64 is Float for float64 intervals.
func (s *Sampler) Float64(iv ClosedInterval[float64]) (float64, error) {
	return Float(s, iv)
}

// Uint32 draws from iv using the Default sampler.
func Uint32(iv ClosedInterval[uint32]) (uint32, error) {
	return Default.Uint32(iv)
}

// Float64 draws from iv using the Default sampler.
func Float64(iv ClosedInterval[float64]) (float64, error) {
	return Float(Default, iv)
}

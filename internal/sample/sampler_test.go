package sample

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// scriptedSource replays a fixed list of raw values, then repeats the last.
type scriptedSource struct {
	values []uint32
	calls  int
}

func (s *scriptedSource) Uint32() uint32 {
	i := s.calls
	if i >= len(s.values) {
		i = len(s.values) - 1
	}
	s.calls++
	return s.values[i]
}

func TestSampler_Uint32_InRange(t *testing.T) {
	s := New(NewSeededSource(1))
	intervals := []ClosedInterval[uint32]{
		{Lower: 0, Upper: 1},
		{Lower: 0, Upper: 9},
		{Lower: 100, Upper: 107},
		{Lower: math.MaxUint32 - 3, Upper: math.MaxUint32},
		{Lower: 0, Upper: math.MaxUint32},
		{Lower: 1, Upper: math.MaxUint32},
	}
	for _, iv := range intervals {
		for i := 0; i < 10000; i++ {
			v, err := s.Uint32(iv)
			if err != nil {
				t.Fatalf("Uint32(%v) unexpected error: %v", iv, err)
			}
			if !iv.Contains(v) {
				t.Fatalf("Uint32(%v) = %d, out of range", iv, v)
			}
		}
	}
}

func TestSampler_Uint32_SingleValue(t *testing.T) {
	src := &scriptedSource{values: []uint32{12345}}
	s := New(src)
	for i := 0; i < 1000; i++ {
		v, err := s.Uint32(ClosedInterval[uint32]{Lower: 5, Upper: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != 5 {
			t.Fatalf("Uint32([5,5]) = %d, want 5", v)
		}
	}
	if src.calls != 0 {
		t.Fatalf("zero-width interval consumed %d draws, want 0", src.calls)
	}
}

func TestSampler_Uint32_InvalidRange(t *testing.T) {
	src := &scriptedSource{values: []uint32{7}}
	s := New(src)
	v, err := s.Uint32(ClosedInterval[uint32]{Lower: 10, Upper: 5})
	var rangeErr *InvalidRangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Uint32([10,5]) error = %v, want *InvalidRangeError", err)
	}
	if v != 0 {
		t.Fatalf("Uint32([10,5]) returned value %d alongside error", v)
	}
	if src.calls != 0 {
		t.Fatalf("invalid interval consumed %d draws, want 0", src.calls)
	}
}

func TestSampler_Uint32_Extremes(t *testing.T) {
	cases := []struct {
		name string
		raw  uint32
		iv   ClosedInterval[uint32]
		want uint32
	}{
		{"low_raw_maps_to_lower", 0, ClosedInterval[uint32]{Lower: 3, Upper: 6}, 3},
		{"high_raw_maps_to_upper", math.MaxUint32, ClosedInterval[uint32]{Lower: 3, Upper: 6}, 6},
		{"full_width_passes_raw", 0xdeadbeef, ClosedInterval[uint32]{Lower: 0, Upper: math.MaxUint32}, 0xdeadbeef},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := New(&scriptedSource{values: []uint32{tc.raw}})
			got, err := s.Uint32(tc.iv)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Uint32(%v) with raw %#x = %d, want %d", tc.iv, tc.raw, got, tc.want)
			}
		})
	}
}

func TestSampler_Uint32_Distribution(t *testing.T) {
	const (
		trials  = 100000
		buckets = 10
	)
	s := New(NewSeededSource(20251016))
	obs := make([]float64, buckets)
	for i := 0; i < trials; i++ {
		v, err := s.Uint32(ClosedInterval[uint32]{Lower: 0, Upper: buckets - 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		obs[v]++
	}

	expected := float64(trials) / buckets
	exp := make([]float64, buckets)
	for i := range exp {
		exp[i] = expected
		if math.Abs(obs[i]-expected) > expected*0.1 {
			t.Fatalf("bucket %d has %v hits, want within 10%% of %v", i, obs[i], expected)
		}
	}

	chi := stat.ChiSquare(obs, exp)
	critical := distuv.ChiSquared{K: buckets - 1}.Quantile(0.999)
	if chi > critical {
		t.Fatalf("chi-square %v exceeds critical value %v (counts %v)", chi, critical, obs)
	}
}

func TestSampler_SeededIsReproducible(t *testing.T) {
	a := New(NewSeededSource(42))
	b := New(NewSeededSource(42))
	iv := ClosedInterval[uint32]{Lower: 0, Upper: 1000}
	for i := 0; i < 100; i++ {
		va, _ := a.Uint32(iv)
		vb, _ := b.Uint32(iv)
		if va != vb {
			t.Fatalf("draw %d differs: %d != %d", i, va, vb)
		}
	}
}

func TestFloat_InRange(t *testing.T) {
	s := New(NewSeededSource(7))
	intervals := []ClosedInterval[float64]{
		{Lower: 0, Upper: 1},
		{Lower: -10, Upper: 10},
		{Lower: 0.1, Upper: 0.3},
		{Lower: 1e300, Upper: 1.5e300},
		{Lower: -math.MaxFloat64, Upper: math.MaxFloat64},
	}
	for _, iv := range intervals {
		for i := 0; i < 10000; i++ {
			v, err := Float(s, iv)
			if err != nil {
				t.Fatalf("Float(%v) unexpected error: %v", iv, err)
			}
			if !iv.Contains(v) {
				t.Fatalf("Float(%v) = %v, out of range", iv, v)
			}
		}
	}
}

func TestFloat_Float32(t *testing.T) {
	s := New(NewSeededSource(9))
	iv := ClosedInterval[float32]{Lower: -2.5, Upper: 2.5}
	for i := 0; i < 10000; i++ {
		v, err := Float(s, iv)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !iv.Contains(v) {
			t.Fatalf("Float(%v) = %v, out of range", iv, v)
		}
	}
}

func TestFloat_Boundaries(t *testing.T) {
	iv := ClosedInterval[float64]{Lower: 2, Upper: 4}

	low, err := Float(New(&scriptedSource{values: []uint32{0}}), iv)
	if err != nil || low != 2 {
		t.Fatalf("Float with raw 0 = %v, %v; want 2", low, err)
	}
	high, err := Float(New(&scriptedSource{values: []uint32{math.MaxUint32}}), iv)
	if err != nil || high != 4 {
		t.Fatalf("Float with raw max = %v, %v; want 4", high, err)
	}
	mid, err := Float(New(&scriptedSource{values: []uint32{math.MaxUint32 / 2}}), iv)
	if err != nil || math.Abs(mid-3) > 1e-6 {
		t.Fatalf("Float with raw max/2 = %v, %v; want ~3", mid, err)
	}
}

func TestFloat_InvalidRanges(t *testing.T) {
	s := New(NewSeededSource(1))
	cases := []ClosedInterval[float64]{
		{Lower: 10, Upper: 5},
		{Lower: math.NaN(), Upper: 1},
		{Lower: 0, Upper: math.Inf(1)},
		{Lower: math.Inf(-1), Upper: 0},
	}
	for _, iv := range cases {
		if _, err := Float(s, iv); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("Float(%v) error = %v, want ErrInvalidRange", iv, err)
		}
	}
}

func TestFloat_SingleValue(t *testing.T) {
	src := &scriptedSource{values: []uint32{99}}
	v, err := Float(New(src), ClosedInterval[float64]{Lower: 1.25, Upper: 1.25})
	if err != nil || v != 1.25 {
		t.Fatalf("Float([1.25,1.25]) = %v, %v; want 1.25", v, err)
	}
}

func TestSources_ConcurrentUse(t *testing.T) {
	sources := map[string]Source{
		"fast":   FastSource(),
		"seeded": NewSeededSource(3),
		"crypto": CryptoSource(),
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			s := New(src)
			iv := ClosedInterval[uint32]{Lower: 10, Upper: 20}
			var g errgroup.Group
			for w := 0; w < 8; w++ {
				g.Go(func() error {
					for i := 0; i < 1000; i++ {
						v, err := s.Uint32(iv)
						if err != nil {
							return err
						}
						if !iv.Contains(v) {
							return &InvalidRangeError{Lower: iv.Lower, Upper: iv.Upper, Reason: "draw escaped interval"}
						}
					}
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestNewSource(t *testing.T) {
	seed := uint64(11)
	src, used, err := NewSource(SourceKindSeeded, &seed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if used != seed {
		t.Fatalf("seed = %d, want %d", used, seed)
	}
	if src.Uint32() != NewSeededSource(seed).Uint32() {
		t.Fatalf("seeded source does not match NewSeededSource")
	}

	for _, kind := range SourceKindValues() {
		if _, _, err := NewSource(kind, nil); err != nil {
			t.Fatalf("NewSource(%v) unexpected error: %v", kind, err)
		}
	}
	if _, _, err := NewSource(SourceKind(42), nil); err == nil {
		t.Fatalf("NewSource(42) expected error")
	}
}

func TestPackageDefaults(t *testing.T) {
	v, err := Uint32(ClosedInterval[uint32]{Lower: 1, Upper: 6})
	if err != nil || v < 1 || v > 6 {
		t.Fatalf("Uint32([1,6]) = %d, %v", v, err)
	}
	f, err := Float64(ClosedInterval[float64]{Lower: -1, Upper: 1})
	if err != nil || f < -1 || f > 1 {
		t.Fatalf("Float64([-1,1]) = %v, %v", f, err)
	}
}

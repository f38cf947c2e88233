package cmd

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/vipcxj/randfactory/internal/sample"
)

// intervalValue is a pflag.Value holding a closed interval; a single
// number N is read as [N,N].
type intervalValue[T constraints.Ordered] struct {
	iv    sample.ClosedInterval[T]
	parse func(string) (T, error)
	set   bool
}

func newIntervalValue[T constraints.Ordered](parse func(string) (T, error)) *intervalValue[T] {
	return &intervalValue[T]{parse: parse}
}

func (v *intervalValue[T]) String() string {
	if !v.set {
		return ""
	}
	return v.iv.String()
}

func (v *intervalValue[T]) Set(s string) error {
	iv, err := sample.ParseClosedInterval(s, v.parse)
	if err != nil {
		return err
	}
	v.iv = iv
	v.set = true
	return nil
}

func (v *intervalValue[T]) Type() string {
	return "range"
}

// enumValue is a pflag.Value over an enumer-generated type.
type enumValue[T fmt.Stringer] struct {
	target *T
	parse  func(string) (T, error)
	names  []string
}

func newEnumValue[T fmt.Stringer](target *T, parse func(string) (T, error), names []string) *enumValue[T] {
	return &enumValue[T]{target: target, parse: parse, names: names}
}

func (e *enumValue[T]) String() string {
	return (*e.target).String()
}

func (e *enumValue[T]) Set(s string) error {
	v, err := e.parse(s)
	if err != nil {
		return fmt.Errorf("allowed values are %s", strings.Join(e.names, ", "))
	}
	*e.target = v
	return nil
}

func (e *enumValue[T]) Type() string {
	return "string"
}

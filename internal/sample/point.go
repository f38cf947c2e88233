package sample

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Point is a 2D coordinate produced by the point samplers.
type Point[T constraints.Float] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// PointIn draws x and y independently, x first.
func PointIn[T constraints.Float](s *Sampler, x, y ClosedInterval[T]) (Point[T], error) {
	// 先校验 y，避免 x 已消耗随机数后才失败
	if err := validateFloat(y); err != nil {
		return Point[T]{}, fmt.Errorf("y: %w", err)
	}
	px, err := Float(s, x)
	if err != nil {
		return Point[T]{}, fmt.Errorf("x: %w", err)
	}
	py, err := Float(s, y)
	if err != nil {
		return Point[T]{}, fmt.Errorf("y: %w", err)
	}
	return Point[T]{X: px, Y: py}, nil
}

// PointAtX holds X at x and draws Y from y.
func PointAtX[T constraints.Float](s *Sampler, x T, y ClosedInterval[T]) (Point[T], error) {
	py, err := Float(s, y)
	if err != nil {
		return Point[T]{}, fmt.Errorf("y: %w", err)
	}
	return Point[T]{X: x, Y: py}, nil
}

// PointAtY draws X from x and holds Y at y.
func PointAtY[T constraints.Float](s *Sampler, x ClosedInterval[T], y T) (Point[T], error) {
	px, err := Float(s, x)
	if err != nil {
		return Point[T]{}, fmt.Errorf("x: %w", err)
	}
	return Point[T]{X: px, Y: y}, nil
}

package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Range is a closed numeric range [Min, Max]. A range with Min > Max is empty.
type Range[T constraints.Float] struct {
	Min T
	Max T
}

// Interval is the float64 range used throughout the renderer
type Interval = Range[float64]

// shadowAcneEpsilon is the minimum ray parameter accepted for scene intersections
const shadowAcneEpsilon = 0.001

var (
	// EmptyInterval contains nothing and is the identity for Union
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every value
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
	// PositiveInterval starts just above zero so rays don't re-hit the surface they left
	PositiveInterval = Interval{Min: shadowAcneEpsilon, Max: math.Inf(1)}
)

// NewInterval creates a range from min and max
func NewInterval[T constraints.Float](min, max T) Range[T] {
	return Range[T]{Min: min, Max: max}
}

// Size returns Max - Min
func (r Range[T]) Size() T {
	return r.Max - r.Min
}

// IsEmpty reports whether the range contains no values
func (r Range[T]) IsEmpty() bool {
	return !(r.Min <= r.Max)
}

// Contains reports whether x lies in [Min, Max]
func (r Range[T]) Contains(x T) bool {
	return r.Min <= x && x <= r.Max
}

// Surrounds reports whether x lies in (Min, Max)
func (r Range[T]) Surrounds(x T) bool {
	return r.Min < x && x < r.Max
}

// Clamp limits x to [Min, Max]
func (r Range[T]) Clamp(x T) T {
	if x < r.Min {
		return r.Min
	}
	if x > r.Max {
		return r.Max
	}
	return x
}

// Expand grows the range by delta, half on each side
func (r Range[T]) Expand(delta T) Range[T] {
	padding := delta / 2
	return Range[T]{Min: r.Min - padding, Max: r.Max + padding}
}

// Union returns the smallest range containing both ranges
func (r Range[T]) Union(other Range[T]) Range[T] {
	return Range[T]{Min: min(r.Min, other.Min), Max: max(r.Max, other.Max)}
}

// Insert returns the smallest range containing r and x
func (r Range[T]) Insert(x T) Range[T] {
	return Range[T]{Min: min(r.Min, x), Max: max(r.Max, x)}
}

// Offset shifts both ends of the range by d
func (r Range[T]) Offset(d T) Range[T] {
	return Range[T]{Min: r.Min + d, Max: r.Max + d}
}

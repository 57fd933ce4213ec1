// Package xy provides a generic two-axis value container for layout and
// geometry code. An XY holds exactly one value per axis and offers a
// closed set of combinators (map, zip, fold, conditional select) so that
// paired horizontal/vertical quantities can be manipulated without
// duplicating logic per axis.
package xy

import "fmt"

// XY is a generic container with one value for each axis. Layout code
// uses it to carry paired per-axis quantities such as sizes, offsets and
// min/max constraints.
//
// Both fields are always present. An absent axis value is expressed by
// instantiating T as an Option, never by the container itself; see
// UnwrapOr and Select.
type XY[T any] struct {
	// X is the value for the horizontal axis.
	X T

	// Y is the value for the vertical axis.
	Y T
}

// New creates an XY from the given values.
func New[T any](x, y T) XY[T] {
	return XY[T]{X: x, Y: y}
}

// BothFrom creates an isotropic XY with value on both axes.
func BothFrom[T any](value T) XY[T] {
	return New(value, value)
}

// FromPair creates an XY from an ordered pair, first value on the X axis.
// It is the exact inverse of Pair.
func FromPair[T any](p Pair[T, T]) XY[T] {
	return New(p.AsGoPair())
}

// Pair returns the two values as an ordered pair, x first.
func (p XY[T]) Pair() Pair[T, T] {
	return NewPair(p.X, p.Y)
}

// Split ejects the two values into the multiple return values that are
// customary in go idiom.
func (p XY[T]) Split() (x, y T) {
	return p.X, p.Y
}

// Slice returns the two values as a fresh slice, x first then y. The
// result always has exactly two elements.
func (p XY[T]) Slice() []T {
	return []T{p.X, p.Y}
}

// Get returns the value on the given axis.
func (p XY[T]) Get(o Orientation) T {
	switch o {
	case Horizontal:
		return p.X

	case Vertical:
		return p.Y

	default:
		panic(fmt.Sprintf("unknown orientation: %d", o))
	}
}

// Ref returns a pointer to the field on the given axis, allowing in-place
// update. The pointer addresses exactly one field and never aliases the
// other axis.
func (p *XY[T]) Ref(o Orientation) *T {
	switch o {
	case Horizontal:
		return &p.X

	case Vertical:
		return &p.Y

	default:
		panic(fmt.Sprintf("unknown orientation: %d", o))
	}
}

// MapX returns a new XY with f applied to the x value, carrying y over.
func (p XY[T]) MapX(f func(T) T) XY[T] {
	return New(f(p.X), p.Y)
}

// MapY returns a new XY with f applied to the y value, carrying x over.
func (p XY[T]) MapY(f func(T) T) XY[T] {
	return New(p.X, f(p.Y))
}

// MapIf applies f on each axis where cond is true, carrying the value
// over unchanged otherwise.
func (p XY[T]) MapIf(cond XY[bool], f func(T) T) XY[T] {
	return ZipMap(p, cond, func(v T, apply bool) T {
		if apply {
			return f(v)
		}

		return v
	})
}

// WithAxis returns a copy of the XY with the given axis set to value. The
// receiver is left untouched.
func (p XY[T]) WithAxis(o Orientation, value T) XY[T] {
	out := p
	*out.Ref(o) = value

	return out
}

// WithAxisFrom returns a copy of the XY with the given axis set to the
// value taken from the same axis of other.
func (p XY[T]) WithAxisFrom(o Orientation, other XY[T]) XY[T] {
	out := p
	out.SetAxisFrom(o, other)

	return out
}

// SetAxisFrom sets the given axis in place to the value taken from the
// same axis of other. The other axis is untouched.
func (p *XY[T]) SetAxisFrom(o Orientation, other XY[T]) {
	*p.Ref(o) = other.Get(o)
}

// String renders the two values as "(x, y)". Debug output only, nothing
// parses it back.
func (p XY[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Fold consumes both values and returns f(x, y).
func Fold[T, U any](p XY[T], f func(x, y T) U) U {
	return f(p.X, p.Y)
}

// Map creates a new XY by applying f to x and y independently.
func Map[T, U any](p XY[T], f func(T) U) XY[U] {
	return New(f(p.X), f(p.Y))
}

// Zip pairs up same-axis values from two containers into an XY of pairs.
func Zip[T, U any](a XY[T], b XY[U]) XY[Pair[T, U]] {
	return New(NewPair(a.X, b.X), NewPair(a.Y, b.Y))
}

// ZipMap creates a new XY by calling f on the same-axis values of a and b
// for each axis. It is the building block the other per-axis combinators
// compose on top of.
func ZipMap[T, U, V any](a XY[T], b XY[U], f func(T, U) V) XY[V] {
	return New(f(a.X, b.X), f(a.Y, b.Y))
}

// UnwrapOr resolves an XY of optional values against defaults: for each
// axis independently, the value is used if present, otherwise the value
// from the same axis of defaults is substituted.
func UnwrapOr[T any](p XY[Option[T]], defaults XY[T]) XY[T] {
	return ZipMap(p, defaults, Option[T].UnwrapOr)
}

// Any returns true if the flag on at least one axis is true.
func Any(p XY[bool]) bool {
	return Fold(p, func(x, y bool) bool { return x || y })
}

// Both returns true if the flags on both axes are true.
func Both(p XY[bool]) bool {
	return Fold(p, func(x, y bool) bool { return x && y })
}

// Select keeps, for each axis, the value from other if the flag in cond
// for that axis is true, and yields an absent Option otherwise.
func Select[T any](cond XY[bool], other XY[T]) XY[Option[T]] {
	return ZipMap(cond, other, func(keep bool, v T) Option[T] {
		if keep {
			return Some(v)
		}

		return None[T]()
	})
}

// SelectOr picks, for each axis, the value from ifTrue when the flag in
// cond is set, and from ifFalse otherwise.
func SelectOr[T any](cond XY[bool], ifTrue, ifFalse XY[T]) XY[T] {
	return UnwrapOr(Select(cond, ifTrue), ifFalse)
}

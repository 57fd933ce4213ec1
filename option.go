package xy

// Option represents an optional value of type T. The zero value is the
// absent Option. Instantiating an XY with an Option element type is how
// "this axis may have no value" is expressed on top of the otherwise
// always-populated container.
type Option[T any] struct {
	value  T
	isSome bool
}

// Some wraps a present value in an Option.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value:  value,
		isSome: true,
	}
}

// None returns the absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.isSome
}

// IsNone reports whether the Option is absent.
func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// UnwrapOr returns the contained value if present, and def otherwise.
func (o Option[T]) UnwrapOr(def T) T {
	if o.isSome {
		return o.value
	}

	return def
}

// Unpack returns the contained value along with whether it was present.
// The value is meaningless when the second return is false.
func (o Option[T]) Unpack() (T, bool) {
	return o.value, o.isSome
}

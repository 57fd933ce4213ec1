package xy

// Comp is left to right function composition. Comp(f, g)(x) == g(f(x)).
// This can make it easier to create on the fly closures to hand to the
// combinators in this package.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden is the left and right identity of Comp. It is a function that
// simply returns its argument.
func Iden[A any](a A) A {
	return a
}

// Const accepts a value and returns a function that always returns that
// value irrespective of its own argument.
func Const[A, B any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

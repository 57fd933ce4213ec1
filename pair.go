package xy

// Pair is the simplest ordered 2-tuple type. It is the carrier for the
// pair form of an XY and the element type produced by Zip.
type Pair[A, B any] struct {
	fst A
	snd B
}

// NewPair creates a Pair from the given values.
func NewPair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{
		fst: a,
		snd: b,
	}
}

// Fst returns the first value in the Pair.
func (p Pair[A, B]) Fst() A {
	return p.fst
}

// Snd returns the second value in the Pair.
func (p Pair[A, B]) Snd() B {
	return p.snd
}

// AsGoPair ejects the pair's members into the multiple return values that
// are customary in go idiom.
func (p Pair[A, B]) AsGoPair() (A, B) {
	return p.fst, p.snd
}

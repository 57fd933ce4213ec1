package xy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrientationSwap(t *testing.T) {
	require.Equal(t, Vertical, Horizontal.Swap())
	require.Equal(t, Horizontal, Vertical.Swap())

	require.Panics(t, func() {
		Orientation(2).Swap()
	})
}

func TestOrientationString(t *testing.T) {
	require.Equal(t, "horizontal", Horizontal.String())
	require.Equal(t, "vertical", Vertical.String())

	require.Panics(t, func() {
		_ = Orientation(2).String()
	})
}

// TestOrientationDispatch asserts that the same orientation value selects
// the same axis across every axis-addressed operation.
func TestOrientationDispatch(t *testing.T) {
	for _, o := range []Orientation{Horizontal, Vertical} {
		p := New(10, 20)
		other := New(30, 40)

		updated := p.WithAxisFrom(o, other)

		require.Equal(t, other.Get(o), updated.Get(o))
		require.Equal(t, p.Get(o.Swap()), updated.Get(o.Swap()))
	}
}

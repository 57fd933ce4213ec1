package xy

import "fmt"

// Orientation identifies one of the two axes of an XY container. It
// carries no payload of its own: an Orientation only selects which field
// an operation targets.
type Orientation uint8

const (
	// Horizontal selects the X axis.
	Horizontal Orientation = iota

	// Vertical selects the Y axis.
	Vertical
)

// Swap returns the orientation for the other axis.
func (o Orientation) Swap() Orientation {
	switch o {
	case Horizontal:
		return Vertical

	case Vertical:
		return Horizontal

	default:
		panic(fmt.Sprintf("unknown orientation: %d", o))
	}
}

// String returns the name of the axis the orientation selects.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"

	case Vertical:
		return "vertical"

	default:
		panic(fmt.Sprintf("unknown orientation: %d", o))
	}
}

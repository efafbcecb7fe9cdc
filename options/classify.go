package options

import "fmt"

// Shape is the recognized strategy structure of a set of legs. The
// calculator dispatches on it instead of matching strategy names at runtime.
type Shape int

const (
	// ShapeAuto asks the calculator to classify the legs itself.
	ShapeAuto Shape = iota
	VerticalSpread
	IronCondor
	Straddle
	Generic
)

func (s Shape) String() string {
	switch s {
	case ShapeAuto:
		return "auto"
	case VerticalSpread:
		return "vertical_spread"
	case IronCondor:
		return "iron_condor"
	case Straddle:
		return "straddle"
	case Generic:
		return "generic"
	default:
		return "unknown"
	}
}

// ParseShape converts a shape name as printed by String into a Shape.
func ParseShape(s string) (Shape, error) {
	for _, shape := range []Shape{ShapeAuto, VerticalSpread, IronCondor, Straddle, Generic} {
		if s == shape.String() {
			return shape, nil
		}
	}
	return ShapeAuto, fmt.Errorf("options: unknown shape %q", s)
}

// ClassifyShape picks a Shape from leg counts and rights.
//
// Two legs of the same right form a vertical spread. Two long legs of mixed
// rights form a straddle/strangle. Four legs split two puts and two calls
// form an iron condor. Everything else is Generic and priced heuristically.
func ClassifyShape(legs []Leg) Shape {
	switch len(legs) {
	case 2:
		if legs[0].Right == legs[1].Right {
			return VerticalSpread
		}
		if legs[0].Qty > 0 && legs[1].Qty > 0 {
			return Straddle
		}
	case 4:
		puts := 0
		for _, l := range legs {
			if l.Right == Put {
				puts++
			}
		}
		if puts == 2 {
			return IronCondor
		}
	}
	return Generic
}

package constraint

import (
	"fmt"
	"strings"
)

// Rotation is the four-way structure orientation used by every structure
// kind. Ordinal values matter: they are exactly the values returned by the
// generator's rotation draw.
type Rotation int

const (
	RotationNone Rotation = iota
	RotationClockwise90
	RotationClockwise180
	RotationCounterclockwise90
)

func (r Rotation) String() string {
	switch r {
	case RotationNone:
		return "NONE"
	case RotationClockwise90:
		return "CLOCKWISE_90"
	case RotationClockwise180:
		return "CLOCKWISE_180"
	case RotationCounterclockwise90:
		return "COUNTERCLOCKWISE_90"
	default:
		return fmt.Sprintf("Rotation(%d)", int(r))
	}
}

// ParseRotation parses one of the four rotation names. Matching is
// case-insensitive.
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return RotationNone, nil
	case "CLOCKWISE_90":
		return RotationClockwise90, nil
	case "CLOCKWISE_180":
		return RotationClockwise180, nil
	case "COUNTERCLOCKWISE_90":
		return RotationCounterclockwise90, nil
	default:
		return 0, fmt.Errorf("unknown rotation %q", s)
	}
}

package collision

import (
	"errors"
	"fmt"
)

// ErrUnresolved is matched by every LookupError.
var ErrUnresolved = errors.New("collision: unresolved element")

// Side says which argument of a query failed to resolve.
type Side int

const (
	SideFirst Side = iota + 1
	SideSecond
	SideBoth
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideFirst:
		return "first"
	case SideSecond:
		return "second"
	case SideBoth:
		return "both"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// LookupError reports which named elements a query could not resolve.
type LookupError struct {
	Missing Side
	First   string
	Second  string
}

func (e *LookupError) Error() string {
	switch e.Missing {
	case SideFirst:
		return fmt.Sprintf("first element missing: %q", e.First)
	case SideSecond:
		return fmt.Sprintf("second element missing: %q", e.Second)
	default:
		return fmt.Sprintf("both elements missing: %q, %q", e.First, e.Second)
	}
}

// Is makes errors.Is(err, ErrUnresolved) hold.
func (e *LookupError) Is(target error) bool {
	return target == ErrUnresolved
}

// MissingSide extracts the failing side from err, or 0 if err is not a
// LookupError.
func MissingSide(err error) Side {
	var le *LookupError
	if errors.As(err, &le) {
		return le.Missing
	}
	return 0
}

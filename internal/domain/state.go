package domain

import "fmt"

// OperatingState is the externally driven host state. The control loop only
// performs work while ACTIVE and terminates once the state reaches ERROR.
type OperatingState int32

const (
	StateInactive OperatingState = iota
	StateActive
	StateError
)

func (s OperatingState) String() string {
	switch s {
	case StateInactive:
		return "INACTIVE"
	case StateActive:
		return "ACTIVE"
	case StateError:
		return "ERROR"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int32(s))
	}
}

// ParseOperatingState converts the wire representation of a state back to
// its enum value.
func ParseOperatingState(s string) (OperatingState, error) {
	switch s {
	case "INACTIVE":
		return StateInactive, nil
	case "ACTIVE":
		return StateActive, nil
	case "ERROR":
		return StateError, nil
	default:
		return StateInactive, fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
}

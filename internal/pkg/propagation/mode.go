package propagation

import "fmt"

// Mode defines how the parameter is propagated to destination projects.
type Mode int

const (
	// DefaultOnly writes the parameter without conditional values.
	DefaultOnly Mode = iota
	// DefaultAndConditional writes the parameter as it is, missing conditions are created.
	DefaultAndConditional
	// Custom asks for values per destination, only conditions selected for the destination are created.
	Custom
)

func Modes() []Mode {
	return []Mode{DefaultOnly, DefaultAndConditional, Custom}
}

// ModeFor returns the fixed mode for the count of destinations, false means the operator must select the mode.
func ModeFor(destinations int) (Mode, bool) {
	if destinations == 1 {
		return DefaultAndConditional, true
	}
	return 0, false
}

func (m Mode) String() string {
	switch m {
	case DefaultOnly:
		return "Default value only"
	case DefaultAndConditional:
		return "Default value and conditional values"
	case Custom:
		return "Custom values per project"
	default:
		panic(fmt.Errorf("unexpected propagation mode %d", int(m)))
	}
}

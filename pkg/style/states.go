// Package style models the visual-state protocol between togglekit widgets
// and whatever renders them. Widgets report a set of boolean states; hosts
// resolve the set against an ordered [StateList] to pick a visual resource.
package style

import "strings"

// State is a single boolean visual state a widget can report.
type State uint32

const (
	// StateChecked is reported while the widget's visible value is on.
	StateChecked State = 1 << iota
	// StateActive is reported while the widget is animating a transition.
	StateActive
	// StatePressed is reported while a pointer is down on the widget.
	StatePressed
	// StateDisabled is reported while the widget ignores interaction.
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateChecked:
		return "checked"
	case StateActive:
		return "active"
	case StatePressed:
		return "pressed"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// StateSet is a combination of States.
type StateSet uint32

// NewStateSet combines the given states into a set.
func NewStateSet(states ...State) StateSet {
	var set StateSet
	for _, s := range states {
		set |= StateSet(s)
	}
	return set
}

// With returns a copy of the set with s added.
func (set StateSet) With(s State) StateSet {
	return set | StateSet(s)
}

// Has reports whether the set contains s.
func (set StateSet) Has(s State) bool {
	return set&StateSet(s) != 0
}

// Contains reports whether the set contains every state in other.
func (set StateSet) Contains(other StateSet) bool {
	return set&other == other
}

func (set StateSet) String() string {
	if set == 0 {
		return "[]"
	}
	var parts []string
	for _, s := range []State{StateChecked, StateActive, StatePressed, StateDisabled} {
		if set.Has(s) {
			parts = append(parts, s.String())
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

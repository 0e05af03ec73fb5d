package widgets

import "github.com/go-drift/togglekit/pkg/style"

// Checkable is the capability an [AnimatedToggle] needs from the control it
// decorates: hold a checked value and repaint from a reported state set.
// Composition over a base-class hierarchy keeps the state machine reusable
// across render backends.
type Checkable interface {
	// Render tells the control which visual states to present. Called
	// whenever the toggle's transition state changes.
	Render(states style.StateSet)
	// IsChecked returns the stored checked value.
	IsChecked() bool
	// SetChecked stores a new checked value immediately.
	SetChecked(checked bool)
}

// BasicToggle is the plain value-holding Checkable. It records the last
// rendered state set so hosts (and tests) can resolve it against a
// [style.StateList].
type BasicToggle struct {
	// OnChanged is called when the stored value changes.
	OnChanged func(bool)

	checked bool
	states  style.StateSet
}

// NewBasicToggle creates a BasicToggle with the given initial value.
func NewBasicToggle(checked bool) *BasicToggle {
	return &BasicToggle{checked: checked}
}

// Render implements Checkable.
func (b *BasicToggle) Render(states style.StateSet) {
	b.states = states
}

// IsChecked implements Checkable.
func (b *BasicToggle) IsChecked() bool {
	return b.checked
}

// SetChecked implements Checkable.
func (b *BasicToggle) SetChecked(checked bool) {
	if b.checked == checked {
		return
	}
	b.checked = checked
	if b.OnChanged != nil {
		b.OnChanged(checked)
	}
}

// States returns the last rendered state set.
func (b *BasicToggle) States() style.StateSet {
	return b.states
}

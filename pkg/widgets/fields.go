package widgets

import "github.com/zoobzio/capitan"

// Field keys for toggle events.
var (
	// KeyOldState is the transition state before a change.
	KeyOldState = capitan.NewStringKey("old_state")

	// KeyNewState is the transition state after a change.
	KeyNewState = capitan.NewStringKey("new_state")

	// KeyTarget is the pending target checked value, as "true" or "false".
	KeyTarget = capitan.NewStringKey("target")

	// KeyAnimation is the name of the animation involved in an event.
	KeyAnimation = capitan.NewStringKey("animation")
)

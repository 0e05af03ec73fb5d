package widgets

import "github.com/zoobzio/capitan"

// Toggle lifecycle signals.
var (
	// ToggleStateChanged is emitted when a toggle moves between transition states.
	ToggleStateChanged = capitan.NewSignal(
		"togglekit.toggle.state.changed",
		"Toggle transition state changed",
	)

	// ToggleCommitRequested is emitted when a pending value change is committed.
	ToggleCommitRequested = capitan.NewSignal(
		"togglekit.toggle.commit.requested",
		"Checked-value change commit requested",
	)

	// ToggleCancelRequested is emitted when a pending value change is cancelled.
	ToggleCancelRequested = capitan.NewSignal(
		"togglekit.toggle.cancel.requested",
		"Checked-value change cancel requested",
	)

	// ToggleClickAbsorbed is emitted when a click is swallowed mid-transition.
	ToggleClickAbsorbed = capitan.NewSignal(
		"togglekit.toggle.click.absorbed",
		"Click swallowed while a transition is in progress",
	)
)

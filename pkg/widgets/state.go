package widgets

import "fmt"

// TransitionState is the phase an [AnimatedToggle] is in with respect to a
// change of its checked value.
//
//	            SetChecked                    CommitCheckedChange
//	Stable ───────────────► Transitioning ─────────────────────► CommitPending
//	   ▲                         │    │                                │
//	   │                         │    │ CancelCheckedChange            │ cycle end,
//	   │      cycle end          ▼    ▼                                ▼ commit animation
//	   └──────────────────── CancelPending                  (plays, then Stable)
type TransitionState int

const (
	// StateStable means the checked value is established and no animation
	// is showing. Plain toggles are always in this state.
	StateStable TransitionState = iota
	// StateTransitioning means the looping transition animation is showing
	// and no commit or cancel decision has been made.
	StateTransitioning
	// StateCommitPending means the change was committed but the operation
	// waits for the current animation cycle to finish.
	StateCommitPending
	// StateCancelPending means the change was cancelled but the operation
	// waits for the current animation cycle to finish.
	StateCancelPending
)

func (s TransitionState) String() string {
	switch s {
	case StateStable:
		return "stable"
	case StateTransitioning:
		return "transitioning"
	case StateCommitPending:
		return "commit-pending"
	case StateCancelPending:
		return "cancel-pending"
	default:
		return fmt.Sprintf("TransitionState(%d)", int(s))
	}
}

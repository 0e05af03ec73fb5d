package widgets

import (
	"context"
	"strconv"

	"github.com/zoobzio/capitan"
	"go.uber.org/zap"

	"github.com/go-drift/togglekit/pkg/animation"
	"github.com/go-drift/togglekit/pkg/errors"
	"github.com/go-drift/togglekit/pkg/style"
)

// AnimatedToggle decorates a [Checkable] control so that a change of its
// checked value is shown as an animation instead of an instant flip.
//
// Requesting a change starts the looping transitioning animation. While it
// plays, the host either commits the change (the animation finishes its
// current cycle, the value is applied and a one-shot commit animation plays)
// or cancels it, in which case the cycle finishes and the value silently
// stays what it was.
//
// While any animation is showing, the toggle adds [style.StateActive] to the
// state set it reports to the control, so hosts can select "animating"
// visuals from a [style.StateList].
//
// All methods must be called on the goroutine that drives
// [animation.StepTickers]. The toggle does not lock its state; single-thread
// affinity is a caller obligation.
type AnimatedToggle struct {
	control       Checkable
	player        *animation.Player
	transitioning *animation.Animation
	commit        *animation.Animation

	state  TransitionState
	target bool

	log *zap.Logger
	ctx context.Context
}

// Option configures an AnimatedToggle.
type Option func(*AnimatedToggle)

// WithLogger sets the logger used for non-fatal diagnostics.
// The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(t *AnimatedToggle) {
		if log != nil {
			t.log = log
		}
	}
}

// WithContext sets the context attached to emitted signals.
func WithContext(ctx context.Context) Option {
	return func(t *AnimatedToggle) {
		if ctx != nil {
			t.ctx = ctx
		}
	}
}

// NewAnimatedToggle wraps control with the transition state machine.
//
// Both animations are mandatory and must not be configured to repeat
// forever: the transitioning animation loops by being restarted at each
// cycle end, which is what lets a commit or cancel take effect exactly at a
// cycle boundary. A missing or infinite animation is a fatal configuration
// error and no toggle is returned.
//
// The toggle owns both handles' listeners; any OnStart, OnRepeat or OnEnd
// already set on them is replaced.
func NewAnimatedToggle(control Checkable, player *animation.Player, transitioning, commit *animation.Animation, opts ...Option) (*AnimatedToggle, error) {
	const op = "widgets.NewAnimatedToggle"
	if control == nil {
		return nil, errors.New(op, errors.KindConfig, "nil control")
	}
	if player == nil {
		return nil, errors.New(op, errors.KindConfig, "nil player")
	}
	if err := validateAnimation(op, "transitioning", transitioning); err != nil {
		return nil, err
	}
	if err := validateAnimation(op, "commit", commit); err != nil {
		return nil, err
	}

	t := &AnimatedToggle{
		control:       control,
		player:        player,
		transitioning: transitioning,
		commit:        commit,
		state:         StateStable,
		log:           zap.NewNop(),
		ctx:           context.Background(),
	}
	for _, opt := range opts {
		opt(t)
	}

	transitioning.OnStart = nil
	transitioning.OnRepeat = nil
	transitioning.OnEnd = t.onTransitioningEnd
	commit.OnStart = nil
	commit.OnRepeat = nil
	commit.OnEnd = t.onCommitEnd

	t.control.Render(t.VisualStates())
	return t, nil
}

func validateAnimation(op, role string, a *animation.Animation) error {
	if a == nil {
		return errors.New(op, errors.KindConfig, "could not resolve the %s animation", role)
	}
	if err := a.Validate(); err != nil {
		return errors.Wrap(op, errors.KindConfig, err)
	}
	if a.IsInfinite() {
		return errors.New(op, errors.KindConfig,
			"the %s animation %q cannot be infinitely repeated", role, a.Name)
	}
	return nil
}

// SetChecked requests a change of the checked value with a transition.
// Equivalent to SetCheckedWithTransition(checked, true).
func (t *AnimatedToggle) SetChecked(checked bool) {
	t.SetCheckedWithTransition(checked, true)
}

// SetCheckedWithTransition requests a change of the checked value.
//
// With withTransition false this behaves like a plain toggle: the value is
// stored immediately and no animation plays. With withTransition true and a
// value different from the currently visible one, the toggle enters
// StateTransitioning and starts the looping transitioning animation; the
// value is not applied until the host commits.
//
// Calling this while a transition is already in progress is permitted but
// logged as a warning: the changed-value check runs against the currently
// visible value, so a second request can retrigger the transition rather
// than queue behind it.
func (t *AnimatedToggle) SetCheckedWithTransition(checked bool, withTransition bool) {
	if t.state != StateStable {
		t.log.Warn("checked value changed while toggle was transitioning",
			zap.Stringer("state", t.state),
			zap.Bool("checked", checked))
	}
	if !withTransition {
		t.control.SetChecked(checked)
		t.control.Render(t.VisualStates())
		return
	}
	if t.IsChecked() == checked {
		return
	}
	t.gotoState(StateTransitioning)
	t.target = checked
	t.startAnimation(t.transitioning)
}

// IsChecked returns the externally visible checked value. Once a change has
// been committed the new value is reported immediately, even though the
// commit animation is still playing.
func (t *AnimatedToggle) IsChecked() bool {
	if t.state == StateCommitPending {
		return t.target
	}
	return t.control.IsChecked()
}

// Toggle requests a transition to the opposite of the visible value.
func (t *AnimatedToggle) Toggle() {
	t.SetChecked(!t.IsChecked())
}

// HandleClick processes a user click and reports it handled. While a
// transition is in progress the click is swallowed without any state change,
// which prevents double-toggling mid-transition.
func (t *AnimatedToggle) HandleClick() bool {
	if t.state != StateStable {
		capitan.Emit(t.ctx, ToggleClickAbsorbed,
			KeyOldState.Field(t.state.String()))
		return true
	}
	t.Toggle()
	return true
}

// CommitCheckedChange establishes the pending value change. The visible
// value flips immediately; the stored value is applied when the current
// animation cycle ends, followed by the one-shot commit animation.
//
// It fails with a KindInvalidOperation error unless the toggle is in
// StateTransitioning.
func (t *AnimatedToggle) CommitCheckedChange() error {
	if t.state != StateTransitioning {
		return errors.New("widgets.CommitCheckedChange", errors.KindInvalidOperation,
			"committing the change requires an ongoing transition, toggle is %s", t.state)
	}
	capitan.Emit(t.ctx, ToggleCommitRequested,
		KeyTarget.Field(strconv.FormatBool(t.target)),
		KeyAnimation.Field(t.commit.Name))
	t.gotoState(StateCommitPending)
	return nil
}

// CancelCheckedChange discards the pending value change. The current
// animation cycle finishes and the toggle returns to StateStable with its
// value untouched.
//
// It fails with a KindInvalidOperation error unless the toggle is in
// StateTransitioning.
func (t *AnimatedToggle) CancelCheckedChange() error {
	if t.state != StateTransitioning {
		return errors.New("widgets.CancelCheckedChange", errors.KindInvalidOperation,
			"cancelling the change requires an ongoing transition, toggle is %s", t.state)
	}
	capitan.Emit(t.ctx, ToggleCancelRequested,
		KeyTarget.Field(strconv.FormatBool(t.target)),
		KeyAnimation.Field(t.transitioning.Name))
	t.gotoState(StateCancelPending)
	return nil
}

// State returns the current transition state.
func (t *AnimatedToggle) State() TransitionState {
	return t.state
}

// VisualStates returns the state set the toggle reports to its control:
// StateChecked per the visible value, plus StateActive whenever an
// animation is showing.
func (t *AnimatedToggle) VisualStates() style.StateSet {
	var set style.StateSet
	if t.IsChecked() {
		set = set.With(style.StateChecked)
	}
	if t.state != StateStable {
		set = set.With(style.StateActive)
	}
	return set
}

func (t *AnimatedToggle) gotoState(next TransitionState) {
	prev := t.state
	t.state = next
	if prev != next {
		capitan.Emit(t.ctx, ToggleStateChanged,
			KeyOldState.Field(prev.String()),
			KeyNewState.Field(next.String()))
	}
	t.control.Render(t.VisualStates())
}

// onTransitioningEnd runs at the end of every cycle of the transitioning
// animation. Commits and cancels are applied here rather than the moment
// they are requested, so the visible transition always completes a whole
// cycle before the toggle moves on. Repeat notifications are deliberately
// not used for this: their delivery is best-effort, so the animation is
// restarted by hand when no decision is pending.
func (t *AnimatedToggle) onTransitioningEnd() {
	switch t.state {
	case StateCommitPending:
		t.control.SetChecked(t.target)
		t.startAnimation(t.commit)
	case StateCancelPending:
		t.gotoState(StateStable)
	case StateTransitioning:
		t.player.Reset(t.transitioning)
		t.startAnimation(t.transitioning)
	default:
		// cannot happen: the transitioning animation only plays outside
		// StateStable
	}
}

// onCommitEnd runs when the commit animation finishes; the value was already
// applied at the cycle boundary, so the toggle just settles.
func (t *AnimatedToggle) onCommitEnd() {
	t.gotoState(StateStable)
}

func (t *AnimatedToggle) startAnimation(a *animation.Animation) {
	// Animations were validated at construction; a failure here means the
	// handle was mutated behind the toggle's back.
	if err := t.player.Start(a); err != nil {
		errors.Report(errors.Wrap("widgets.startAnimation", errors.KindConfig, err))
	}
}

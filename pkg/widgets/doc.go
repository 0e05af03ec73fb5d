// Package widgets contains togglekit's widget layer.
//
// The centerpiece is [AnimatedToggle], a toggle whose checked value does not
// flip instantly: a looping transition animation plays while the new value
// is pending, and the host either commits the change (finishing with a
// one-shot confirmation animation) or cancels it (silently reverting).
//
// AnimatedToggle wraps any [Checkable] control rather than requiring a
// concrete widget type; [BasicToggle] is the plain in-memory implementation
// used by hosts that only need the value.
package widgets

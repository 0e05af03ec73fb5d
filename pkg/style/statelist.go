package style

// Rule maps a required state combination to a visual resource name.
type Rule struct {
	// When is the state combination this rule matches. A reported set
	// matches when it contains every state in When.
	When StateSet
	// Resource is the name of the visual resource to use.
	Resource string
}

// StateList resolves a reported StateSet to a resource name. Rules are
// checked in order and the first match wins, so more specific rules must
// come first.
type StateList struct {
	rules      []Rule
	defaultRes string
}

// NewStateList creates a state list with the given rules.
func NewStateList(rules ...Rule) *StateList {
	return &StateList{rules: rules}
}

// WithDefault sets the resource returned when no rule matches.
func (l *StateList) WithDefault(resource string) *StateList {
	l.defaultRes = resource
	return l
}

// Resolve returns the resource for the first rule whose When set is
// contained in states, or the default resource (possibly empty) when no
// rule matches.
func (l *StateList) Resolve(states StateSet) string {
	for _, r := range l.rules {
		if states.Contains(r.When) {
			return r.Resource
		}
	}
	return l.defaultRes
}

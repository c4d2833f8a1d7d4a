package core

// Navigator is the single source of truth for the visible screen.
type Navigator struct {
	current ScreenID
}

func NewNavigator() *Navigator {
	return &Navigator{current: Welcome}
}

// Current returns the visible screen. A corrupted value reads as Welcome.
func (n *Navigator) Current() ScreenID {
	return n.current.Normalize()
}

// Apply runs t against the current screen. A duplicate or out-of-place
// transition is a no-op and returns false.
func (n *Navigator) Apply(t Transition) (ScreenID, bool) {
	next, ok := Next(n.Current(), t)
	if !ok {
		return n.Current(), false
	}
	n.current = next
	return next, true
}

// Restore sets the current screen directly, falling back to Welcome for
// values outside the screen set.
func (n *Navigator) Restore(s ScreenID) {
	n.current = s.Normalize()
}

// Reset returns to the initial screen.
func (n *Navigator) Reset() {
	n.current = Welcome
}

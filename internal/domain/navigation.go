package domain

// Navigator holds the current screen and at most one pending request.
// Requests never take effect on their own: Apply must run at the start of
// each render cycle so a stale screen is never drawn mid-transition.
type Navigator struct {
	current Screen
	pending Screen
}

// NewNavigator starts on the Home screen with nothing pending.
func NewNavigator() *Navigator {
	return &Navigator{current: ScreenHome}
}

// Current returns the screen being shown.
func (n *Navigator) Current() Screen {
	return n.current
}

// Pending returns the requested screen, if any.
func (n *Navigator) Pending() (Screen, bool) {
	return n.pending, n.pending != ""
}

// RequestNavigation records target as the next screen, replacing any
// earlier request that has not been applied yet.
func (n *Navigator) RequestNavigation(target Screen) error {
	if !target.IsValid() {
		return ErrUnknownScreen
	}
	n.pending = target
	return nil
}

// BackToHome requests the Home screen.
func (n *Navigator) BackToHome() {
	n.pending = ScreenHome
}

// Apply makes the pending request current and clears it. It returns the
// screen that is current afterwards.
func (n *Navigator) Apply() Screen {
	if n.pending != "" {
		n.current = n.pending
		n.pending = ""
	}
	return n.current
}

package tui

// ============================================================================
// Player Command Messages
// ============================================================================

// SubmitNameMsg carries the name entered at the intro screen.
type SubmitNameMsg struct {
	Name string
}

// SubmitAnswerMsg carries an answer submitted in the current chamber.
type SubmitAnswerMsg struct {
	Raw string
}

// AnswerTypedMsg signals that the Chamber 1 answer field was mutated.
// In Chamber 1 the keystroke itself is the disqualifying answer.
type AnswerTypedMsg struct{}

// SaveRequestMsg asks the app to snapshot the current session.
type SaveRequestMsg struct{}

// LoadRequestMsg asks the app to resume the game behind a save code.
type LoadRequestMsg struct {
	Code string
}

// RestartMsg returns the game to the intro screen.
type RestartMsg struct{}

// ============================================================================
// App Result Messages (routed back into the active view)
// ============================================================================

// NameErrorMsg carries an inline name validation error for the intro
// screen. The stage does not change.
type NameErrorMsg struct {
	Err error
}

// SaveResultMsg carries the outcome of a save request. Code is empty
// when the save did not happen; the player may retry.
type SaveResultMsg struct {
	Code string
	Err  error
}

// LoadErrorMsg carries an inline load error for the intro screen.
type LoadErrorMsg struct {
	Message string
}

// ============================================================================
// Timing Messages
// ============================================================================

// TickMsg fires once per second to refresh the elapsed-time readout.
// The readout is cosmetic; completion time is always recomputed from
// the captured endpoints.
type TickMsg struct{}

// GraceElapsedMsg fires when Chamber 1's silence window ends. Gen
// guards against stale timers from an earlier visit to the chamber.
type GraceElapsedMsg struct {
	Gen int
}

package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Name length bounds enforced at the intro screen.
const (
	MinNameLen = 2
	MaxNameLen = 20
)

// Name validation errors. The messages are shown verbatim as inline
// errors on the intro screen.
var (
	ErrNameEmpty    = errors.New("Please enter your name to begin the trial.")
	ErrNameTooShort = errors.New("Name must be at least 2 characters.")
	ErrNameTooLong  = errors.New("Name must be 20 characters or less.")
)

// Session is the live state of one playthrough. It is owned by the UI
// shell and mutated only from the Bubble Tea update loop, so it carries
// no locking.
type Session struct {
	stage             Stage
	playerName        string
	startTime         time.Time
	endTime           time.Time
	chambersPassed    int
	eliminationReason string

	// Chamber 1 interaction latch. Once set, the inaction rule can no
	// longer fire, even on the same tick.
	interacted bool

	now func() time.Time
}

// NewSession returns a fresh session at the intro stage.
func NewSession() *Session {
	return &Session{stage: StageIntro, now: time.Now}
}

// NewSessionWithClock returns a session that reads time from now
// instead of the wall clock. Used by tests.
func NewSessionWithClock(now func() time.Time) *Session {
	return &Session{stage: StageIntro, now: now}
}

// Stage returns the current stage.
func (s *Session) Stage() Stage { return s.stage }

// PlayerName returns the name entered at the intro screen.
func (s *Session) PlayerName() string { return s.playerName }

// StartTime returns when the player entered Chamber 1, or the zero
// time before the timer has started.
func (s *Session) StartTime() time.Time { return s.startTime }

// ChambersPassed returns how many chambers have been cleared, 0..5.
func (s *Session) ChambersPassed() int { return s.chambersPassed }

// EliminationReason returns the narrative for the elimination screen.
func (s *Session) EliminationReason() string { return s.eliminationReason }

// StartWithName validates the player name and enters Chamber 1.
// The run timer does not start here; it starts on the first Tick after
// entry, and only once.
func (s *Session) StartWithName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return ErrNameEmpty
	case len([]rune(trimmed)) < MinNameLen:
		return ErrNameTooShort
	case len([]rune(trimmed)) > MaxNameLen:
		return ErrNameTooLong
	}

	s.playerName = trimmed
	s.stage = StageChamber1
	s.interacted = false
	return nil
}

// Tick advances time-dependent state. It captures the start time on
// the first tick inside a chamber and never resets it afterwards, so
// a re-entered or loaded chamber keeps the original clock.
func (s *Session) Tick() {
	if s.stage.IsChamber() && s.startTime.IsZero() {
		s.startTime = s.now()
	}
}

// Touch records player interaction in Chamber 1. Interaction
// suppresses the inaction rule; a touch and the 8-second threshold
// landing on the same tick resolves in favor of the touch.
func (s *Session) Touch() {
	if s.stage == StageChamber1 {
		s.interacted = true
	}
}

// Interacted reports whether Chamber 1 has seen any player input.
func (s *Session) Interacted() bool { return s.interacted }

// Submit runs the current chamber's validator against raw and applies
// the resulting transition. Accept advances to the next chamber, or to
// victory from Chamber 5. Reject eliminates with the validator's
// narrative. Outside chamber stages Submit is a no-op reject.
func (s *Session) Submit(raw string) Outcome {
	validate, ok := ValidatorFor(s.stage)
	if !ok {
		return Outcome{Reason: fmt.Sprintf("no chamber active at stage %s", s.stage)}
	}

	outcome := validate(raw)
	if !outcome.Accepted {
		s.Eliminate(outcome.Reason)
		return outcome
	}

	s.chambersPassed = s.stage.ChamberNumber()
	if s.stage == StageChamber5 {
		s.stage = StageVictory
		s.endTime = s.now()
	} else {
		s.stage++
	}
	return outcome
}

// Eliminate ends the run with the given narrative. Used by validators
// via Submit and directly by the Chamber 1 keystroke rule, where the
// first typed character is itself a disqualifying answer.
func (s *Session) Eliminate(reason string) {
	if s.stage.Terminal() {
		return
	}
	s.stage = StageEliminated
	s.eliminationReason = reason
	s.endTime = s.now()
}

// AutoAdvance applies the Chamber 1 inaction rule: staying silent for
// the full grace period is the correct answer. It is a no-op if the
// player has interacted or the session has left Chamber 1.
func (s *Session) AutoAdvance() {
	if s.stage != StageChamber1 || s.interacted {
		return
	}
	s.chambersPassed = 1
	s.stage = StageChamber2
}

// Restart clears every field and returns to the intro screen.
func (s *Session) Restart() {
	*s = Session{stage: StageIntro, now: s.now}
}

// Restore loads a saved game. It is only valid from the intro stage
// into a chamber stage; a loaded game is always mid-trial, never
// terminal, because snapshots are only created inside chambers.
func (s *Session) Restore(playerName string, stage Stage, startTime time.Time, chambersPassed int) error {
	if s.stage != StageIntro {
		return fmt.Errorf("cannot load a game from stage %s", s.stage)
	}
	if !stage.IsChamber() {
		return fmt.Errorf("snapshot stage %s is not a chamber", stage)
	}

	s.playerName = playerName
	s.stage = stage
	s.startTime = startTime
	s.chambersPassed = chambersPassed
	s.endTime = time.Time{}
	s.eliminationReason = ""
	s.interacted = false
	return nil
}

// CompletionSeconds returns the authoritative run duration in whole
// seconds, floor((endTime-startTime)/1s), or 0 if either end is unset.
func (s *Session) CompletionSeconds() int {
	if s.startTime.IsZero() || s.endTime.IsZero() {
		return 0
	}
	return int(s.endTime.Sub(s.startTime) / time.Second)
}

// ElapsedSeconds returns the live timer readout. It is cosmetic; the
// completion time is always recomputed from the captured endpoints.
func (s *Session) ElapsedSeconds() int {
	if s.startTime.IsZero() {
		return 0
	}
	if s.stage.Terminal() {
		return s.CompletionSeconds()
	}
	return int(s.now().Sub(s.startTime) / time.Second)
}

package game

import (
	"errors"
	"testing"
	"time"
)

// fixedClock returns a clock stuck at t plus any offsets pushed later.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) now() time.Time { return c.t }

func (c *fixedClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession() (*Session, *fixedClock) {
	clock := &fixedClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
	return NewSessionWithClock(clock.now), clock
}

func TestStartWithNameValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"valid", "Ada", nil},
		{"valid with padding", "  Ada  ", nil},
		{"two chars", "Al", nil},
		{"twenty chars", "ABCDEFGHIJKLMNOPQRST", nil},
		{"empty", "", ErrNameEmpty},
		{"whitespace only", "   ", ErrNameEmpty},
		{"one char", "A", ErrNameTooShort},
		{"twenty-one chars", "ABCDEFGHIJKLMNOPQRSTU", ErrNameTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession()
			err := s.StartWithName(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("StartWithName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if s.Stage() != StageIntro {
					t.Errorf("stage = %s after invalid name, want intro", s.Stage())
				}
				return
			}
			if s.Stage() != StageChamber1 {
				t.Errorf("stage = %s, want chamber1", s.Stage())
			}
			if !s.StartTime().IsZero() {
				t.Error("start time should not be set before the first tick")
			}
		})
	}
}

func TestTickStartsTimerOnce(t *testing.T) {
	s, clock := newTestSession()
	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}

	s.Tick()
	started := s.StartTime()
	if started.IsZero() {
		t.Fatal("first tick in chamber 1 should start the timer")
	}

	clock.advance(30 * time.Second)
	s.Tick()
	if !s.StartTime().Equal(started) {
		t.Error("later ticks must not reset the start time")
	}
}

func TestFullVictoryRun(t *testing.T) {
	s, clock := newTestSession()
	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}
	s.Tick()

	s.AutoAdvance()
	if s.Stage() != StageChamber2 || s.ChambersPassed() != 1 {
		t.Fatalf("after chamber 1 silence: stage %s, passed %d", s.Stage(), s.ChambersPassed())
	}

	for _, answer := range []string{"B", "2", "tomorrow"} {
		if out := s.Submit(answer); !out.Accepted {
			t.Fatalf("Submit(%q) rejected: %s", answer, out.Reason)
		}
	}
	if s.Stage() != StageChamber5 || s.ChambersPassed() != 4 {
		t.Fatalf("before the final appeal: stage %s, passed %d", s.Stage(), s.ChambersPassed())
	}

	clock.advance(125 * time.Second)
	if out := s.Submit("4"); !out.Accepted {
		t.Fatalf("final answer rejected: %s", out.Reason)
	}

	if s.Stage() != StageVictory {
		t.Fatalf("stage = %s, want victory", s.Stage())
	}
	if s.ChambersPassed() != TotalChambers {
		t.Errorf("chambers passed = %d, want %d", s.ChambersPassed(), TotalChambers)
	}
	if got := s.CompletionSeconds(); got != 125 {
		t.Errorf("completion = %d seconds, want 125", got)
	}
}

func TestCompletionSecondsFloors(t *testing.T) {
	s, clock := newTestSession()
	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}
	s.Tick()
	s.AutoAdvance()

	clock.advance(125*time.Second + 900*time.Millisecond)
	s.Submit("wrong")

	if got := s.CompletionSeconds(); got != 125 {
		t.Errorf("completion = %d seconds, want floor to 125", got)
	}
}

func TestCompletionSecondsZeroWhenUnset(t *testing.T) {
	s, _ := newTestSession()
	if got := s.CompletionSeconds(); got != 0 {
		t.Errorf("completion = %d, want 0 before any run", got)
	}
}

func TestRejectionEliminates(t *testing.T) {
	s, _ := newTestSession()
	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}
	s.Tick()
	s.AutoAdvance()

	out := s.Submit("A")
	if out.Accepted {
		t.Fatal("witness A should reject")
	}
	if s.Stage() != StageEliminated {
		t.Fatalf("stage = %s, want eliminated", s.Stage())
	}
	if s.EliminationReason() != out.Reason {
		t.Errorf("elimination reason %q != outcome reason %q", s.EliminationReason(), out.Reason)
	}
}

func TestChamber1TouchSuppressesAutoAdvance(t *testing.T) {
	s, _ := newTestSession()
	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}
	s.Tick()

	// Interaction on the same tick as the threshold wins the race.
	s.Touch()
	s.AutoAdvance()

	if s.Stage() != StageChamber1 {
		t.Fatalf("stage = %s, auto-advance should be suppressed after interaction", s.Stage())
	}
}

func TestChamber1KeystrokeEliminates(t *testing.T) {
	s, _ := newTestSession()
	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}
	s.Tick()

	s.Touch()
	s.Eliminate(Chamber1Violation)

	if s.Stage() != StageEliminated {
		t.Fatalf("stage = %s, want eliminated", s.Stage())
	}
	if s.EliminationReason() != Chamber1Violation {
		t.Errorf("reason = %q, want the fixed violation message", s.EliminationReason())
	}
}

func TestAutoAdvanceOnlyFromChamber1(t *testing.T) {
	s, _ := newTestSession()
	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}
	s.Tick()
	s.AutoAdvance()

	// A stale timer firing in chamber 2 must not advance again.
	s.AutoAdvance()
	if s.Stage() != StageChamber2 || s.ChambersPassed() != 1 {
		t.Errorf("stage %s passed %d, stale auto-advance must be ignored", s.Stage(), s.ChambersPassed())
	}
}

func TestRestartClearsEverything(t *testing.T) {
	s, clock := newTestSession()
	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}
	s.Tick()
	s.AutoAdvance()
	clock.advance(10 * time.Second)
	s.Submit("C")

	s.Restart()

	if s.Stage() != StageIntro {
		t.Errorf("stage = %s, want intro", s.Stage())
	}
	if s.PlayerName() != "" || !s.StartTime().IsZero() || s.ChambersPassed() != 0 || s.EliminationReason() != "" {
		t.Error("restart must clear every session field")
	}
	if s.CompletionSeconds() != 0 {
		t.Error("restart must clear the captured times")
	}
}

func TestRestoreLoadsMidTrial(t *testing.T) {
	s, clock := newTestSession()
	started := clock.t.Add(-42 * time.Second)

	if err := s.Restore("Ada", StageChamber3, started, 2); err != nil {
		t.Fatal(err)
	}

	if s.Stage() != StageChamber3 || s.PlayerName() != "Ada" || s.ChambersPassed() != 2 {
		t.Fatalf("restored stage %s name %q passed %d", s.Stage(), s.PlayerName(), s.ChambersPassed())
	}
	if !s.StartTime().Equal(started) {
		t.Error("restore must keep the saved start time verbatim")
	}

	// The loaded clock keeps running from the original start.
	s.Tick()
	if !s.StartTime().Equal(started) {
		t.Error("tick after restore must not reset the start time")
	}
}

func TestRestoreRejectsNonChamberStages(t *testing.T) {
	s, _ := newTestSession()
	if err := s.Restore("Ada", StageVictory, time.Time{}, 5); err == nil {
		t.Error("restoring into a terminal stage should fail")
	}

	if err := s.StartWithName("Ada"); err != nil {
		t.Fatal(err)
	}
	if err := s.Restore("Eve", StageChamber2, time.Time{}, 1); err == nil {
		t.Error("restoring mid-trial should fail")
	}
}

func TestStageTagsRoundTrip(t *testing.T) {
	stages := []Stage{
		StageIntro, StageChamber1, StageChamber2, StageChamber3,
		StageChamber4, StageChamber5, StageEliminated, StageVictory,
	}
	for _, stage := range stages {
		parsed, err := ParseStage(stage.String())
		if err != nil {
			t.Fatalf("ParseStage(%q): %v", stage.String(), err)
		}
		if parsed != stage {
			t.Errorf("ParseStage(%q) = %v, want %v", stage.String(), parsed, stage)
		}
	}

	if _, err := ParseStage("chamber6"); err == nil {
		t.Error("unknown tag should not parse")
	}
}

// Package game implements the trial state machine and the chamber puzzles.
package game

import "fmt"

// Stage identifies one screen of the trial.
type Stage int

const (
	StageIntro Stage = iota
	StageChamber1
	StageChamber2
	StageChamber3
	StageChamber4
	StageChamber5
	StageEliminated
	StageVictory
)

// TotalChambers is the number of chambers in a full run.
const TotalChambers = 5

// IsChamber reports whether s is one of the five chamber stages.
func (s Stage) IsChamber() bool {
	return s >= StageChamber1 && s <= StageChamber5
}

// ChamberNumber returns 1..5 for chamber stages and 0 otherwise.
func (s Stage) ChamberNumber() int {
	if !s.IsChamber() {
		return 0
	}
	return int(s-StageChamber1) + 1
}

// Terminal reports whether s is an ending stage.
func (s Stage) Terminal() bool {
	return s == StageEliminated || s == StageVictory
}

// String returns the wire tag used in save snapshots.
func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StageChamber1:
		return "chamber1"
	case StageChamber2:
		return "chamber2"
	case StageChamber3:
		return "chamber3"
	case StageChamber4:
		return "chamber4"
	case StageChamber5:
		return "chamber5"
	case StageEliminated:
		return "eliminated"
	case StageVictory:
		return "victory"
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Title returns the chamber heading shown above the puzzle.
func (s Stage) Title() string {
	switch s {
	case StageChamber1:
		return "THE TERMS"
	case StageChamber2:
		return "THE WITNESS"
	case StageChamber3:
		return "THE JUDGES"
	case StageChamber4:
		return "THE VERDICT CLOCK"
	case StageChamber5:
		return "THE FINAL APPEAL"
	}
	return ""
}

// ParseStage converts a wire tag back into a Stage.
func ParseStage(tag string) (Stage, error) {
	switch tag {
	case "intro":
		return StageIntro, nil
	case "chamber1":
		return StageChamber1, nil
	case "chamber2":
		return StageChamber2, nil
	case "chamber3":
		return StageChamber3, nil
	case "chamber4":
		return StageChamber4, nil
	case "chamber5":
		return StageChamber5, nil
	case "eliminated":
		return StageEliminated, nil
	case "victory":
		return StageVictory, nil
	}
	return StageIntro, fmt.Errorf("unknown stage tag %q", tag)
}

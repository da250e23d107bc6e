package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Outcome is a validator's verdict on a submitted answer.
type Outcome struct {
	Accepted bool
	Reason   string // elimination narrative, set only on rejection
}

// Validator maps a raw submitted answer to accept or reject.
// Validators are pure: no clock, no store, no session access.
type Validator func(raw string) Outcome

// Chamber1Violation is the fixed elimination message for answering in
// Chamber 1. Typing a single character counts as answering.
const Chamber1Violation = "You answered the question despite being explicitly instructed NOT to answer unless instructed to do so."

var validators = map[Stage]Validator{
	StageChamber1: validateChamber1,
	StageChamber2: validateChamber2,
	StageChamber3: validateChamber3,
	StageChamber4: validateChamber4,
	StageChamber5: validateChamber5,
}

// ValidatorFor returns the validator for a chamber stage.
func ValidatorFor(stage Stage) (Validator, bool) {
	v, ok := validators[stage]
	return v, ok
}

// Chamber 1 instructs the player not to answer. Any answer is a
// violation; the only way through is the inaction rule handled by
// Session.AutoAdvance.
func validateChamber1(string) Outcome {
	return Outcome{Reason: Chamber1Violation}
}

// Chamber 2: A says "B is lying", B says "C is telling the truth",
// C says "A is lying". B is the only consistent truth-teller.
func validateChamber2(raw string) Outcome {
	answer := strings.ToUpper(strings.TrimSpace(raw))
	if answer == "B" {
		return Outcome{Accepted: true}
	}
	return Outcome{Reason: fmt.Sprintf("You identified Witness %s as the truth-teller. This was incorrect. The logical elimination proves only Witness B can be the consistent truth-teller.", answer)}
}

// Chamber 3: exactly one judge is correct, and only Judge 2's claim
// ("Judge 3 is wrong") survives without paradox.
func validateChamber3(raw string) Outcome {
	answer := strings.TrimSpace(raw)
	if answer == "2" {
		return Outcome{Accepted: true}
	}
	return Outcome{Reason: fmt.Sprintf("You selected Judge %s as correct. This creates a logical contradiction. Only Judge 2 can be correct without paradox.", answer)}
}

// Chamber 4: the verdict-timing statements are only consistent if the
// verdict is announced tomorrow.
func validateChamber4(raw string) Outcome {
	if strings.ToLower(strings.TrimSpace(raw)) == "tomorrow" {
		return Outcome{Accepted: true}
	}
	return Outcome{Reason: fmt.Sprintf("You answered %q. The logical consistency of the statements reveals the verdict must be announced tomorrow.", raw)}
}

// Chamber 5: the player has passed exactly 4 chambers at the moment of
// submission, since this one is not passed until validated.
func validateChamber5(raw string) Outcome {
	answer := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(answer); err == nil && n == 4 {
		return Outcome{Accepted: true}
	}
	return Outcome{Reason: fmt.Sprintf("You submitted %s. At the moment of submission, you had only passed 4 chambers. Chamber 5 is not complete until your answer is validated. The correct answer was 4.", answer)}
}

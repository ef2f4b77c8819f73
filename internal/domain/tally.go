package domain

import "strings"

type ScoreTally struct {
	X int
	O int
}

// TallyPolicy decides how a finished round changes the tally.
type TallyPolicy string

const (
	// winner gains a point, ties change nothing
	PolicyIndependent TallyPolicy = "independent"
	// winner gains a point and the other counter drops to zero; a tie is
	// scored as an O win
	PolicyStreak TallyPolicy = "streak"
	// the original console game: an X win always leaves {1, 0}, an O win
	// or a tie sets O to 1 and keeps X
	PolicyLegacy TallyPolicy = "legacy"
)

// ParseTallyPolicy accepts a policy name in any case. ok is false for an
// unknown name, in which case the independent policy is returned.
func ParseTallyPolicy(name string) (TallyPolicy, bool) {
	switch TallyPolicy(strings.ToLower(strings.TrimSpace(name))) {
	case PolicyIndependent, "":
		return PolicyIndependent, true
	case PolicyStreak:
		return PolicyStreak, true
	case PolicyLegacy:
		return PolicyLegacy, true
	default:
		return PolicyIndependent, false
	}
}

func (p TallyPolicy) Apply(t ScoreTally, outcome RoundOutcome) ScoreTally {
	if !outcome.IsTerminal() {
		return t
	}
	xWon := outcome.Status == StatusWon && outcome.Winner == PlayerX

	switch p {
	case PolicyStreak:
		if xWon {
			return ScoreTally{X: t.X + 1, O: 0}
		}
		return ScoreTally{X: 0, O: t.O + 1}

	case PolicyLegacy:
		// O is cleared after every move that does not end in an X win and
		// X is cleared by its own win, before the winner gets its point
		if xWon {
			return ScoreTally{X: 1, O: 0}
		}
		return ScoreTally{X: t.X, O: 1}
	}

	if outcome.Status != StatusWon {
		return t
	}
	switch outcome.Winner {
	case PlayerX:
		t.X++
	case PlayerO:
		t.O++
	}
	return t
}

package engine

import (
	"errors"
	"fmt"
)

// Stance is one of the three cyclically-ordered clash choices.
type Stance string

const (
	StanceAggressive Stance = "aggressive"
	StanceDeceptive  Stance = "deceptive"
	StanceDefensive  Stance = "defensive"
)

// Stances lists all valid stances in cycle order.
var Stances = []Stance{StanceAggressive, StanceDeceptive, StanceDefensive}

var ErrInvalidStance = errors.New("invalid stance")

// ParseStance converts a wire string into a Stance.
func ParseStance(s string) (Stance, error) {
	switch Stance(s) {
	case StanceAggressive, StanceDeceptive, StanceDefensive:
		return Stance(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStance, s)
	}
}

// ClashOutcome is the result of a clash from the player's side.
type ClashOutcome string

const (
	ClashWin  ClashOutcome = "win"
	ClashLoss ClashOutcome = "loss"
	ClashTie  ClashOutcome = "tie"
)

// beats maps each stance to the stance it defeats: aggression breaks
// deception, deception undoes defense, defense absorbs aggression.
var beats = map[Stance]Stance{
	StanceAggressive: StanceDeceptive,
	StanceDeceptive:  StanceDefensive,
	StanceDefensive:  StanceAggressive,
}

// ResolveClash decides a clash from the two stances alone. It is a
// pure function: the wager never influences the outcome, only the
// settlement.
func ResolveClash(player, opponent Stance) ClashOutcome {
	switch {
	case player == opponent:
		return ClashTie
	case beats[player] == opponent:
		return ClashWin
	default:
		return ClashLoss
	}
}

// SettleClash resolves a clash and moves the wager: a win credits it,
// a loss debits it, a tie returns the stake untouched. The player must
// be able to cover the wager before the stances are even compared, so
// a losing settlement can never drive the balance negative.
func (s *State) SettleClash(player, opponent Stance, wager int64) (ClashOutcome, error) {
	if wager <= 0 {
		return "", ErrInvalidAmount
	}

	if wager > s.Balance {
		return "", ErrInsufficientFunds
	}

	outcome := ResolveClash(player, opponent)

	switch outcome {
	case ClashWin:
		_ = s.Credit(wager)
		s.TotalWon += wager
	case ClashLoss:
		// Covered by the check above.
		_ = s.Wager(wager)
	case ClashTie:
		// No net transfer.
	}

	s.GamesPlayed++
	s.emit(Event{Kind: EventClashResolved, Amount: wager, Outcome: outcome})

	return outcome, nil
}

package engine

import "errors"

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrUnknownGod        = errors.New("unknown god")
)

// Wager debits amount from the balance and counts it toward
// TotalWagered. It fails without mutating anything when the balance
// cannot cover the amount. This is the only place the balance
// decreases, which is what keeps it non-negative everywhere else.
func (s *State) Wager(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	if amount > s.Balance {
		return ErrInsufficientFunds
	}

	s.Balance -= amount
	s.TotalWagered += amount
	s.emit(Event{Kind: EventWager, Amount: amount})

	return nil
}

// Credit adds amount to the balance. Used for winnings, quest rewards
// and blessings; a zero credit is allowed and is a no-op.
func (s *State) Credit(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	if amount == 0 {
		return nil
	}

	s.Balance += amount
	s.emit(Event{Kind: EventCredit, Amount: amount})

	return nil
}

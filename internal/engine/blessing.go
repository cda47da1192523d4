package engine

import "time"

// BlessingResult enumerates the outcomes of a daily blessing claim.
type BlessingResult string

const (
	BlessingClaimed        BlessingResult = "claimed"
	BlessingAlreadyClaimed BlessingResult = "already_claimed_today"
)

// DayID renders a time as the UTC calendar day ("2006-01-02") used for
// blessing eligibility. UTC is deliberate: local-time day strings shift
// with the machine's timezone and can double-grant or skip a day.
func DayID(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// BlessingEligible reports whether the blessing can be claimed on the
// given day. A fresh state (no claim recorded) is always eligible.
func (s *State) BlessingEligible(today string) bool {
	return s.LastBlessingDate != today
}

// ClaimBlessing credits the daily bonus if it has not been claimed on
// the given day yet. A repeat claim on the same day is a no-op that
// counts a cheater point.
func (s *State) ClaimBlessing(today string, amount int64) BlessingResult {
	if !s.BlessingEligible(today) {
		s.CheaterPoints++
		return BlessingAlreadyClaimed
	}

	s.LastBlessingDate = today
	_ = s.Credit(amount)
	s.emit(Event{Kind: EventBlessingClaimed, Amount: amount})

	return BlessingClaimed
}

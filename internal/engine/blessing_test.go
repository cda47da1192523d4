package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayID_UTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*60*60)
	local := time.Date(2026, 3, 14, 23, 30, 0, 0, loc)

	assert.Equal(t, "2026-03-15", DayID(local))
	assert.Equal(t, "2026-03-14", DayID(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)))
}

func TestClaimBlessing_OncePerDay(t *testing.T) {
	s := newTestState(0)

	require.True(t, s.BlessingEligible("2026-08-31"))

	res := s.ClaimBlessing("2026-08-31", 100)
	require.Equal(t, BlessingClaimed, res)
	assert.Equal(t, int64(100), s.Balance)
	assert.False(t, s.BlessingEligible("2026-08-31"))

	res = s.ClaimBlessing("2026-08-31", 100)
	assert.Equal(t, BlessingAlreadyClaimed, res)
	assert.Equal(t, int64(100), s.Balance, "no duplicate credit")
	assert.Equal(t, int64(1), s.CheaterPoints)
}

func TestClaimBlessing_EligibleAgainNextDay(t *testing.T) {
	s := newTestState(0)

	require.Equal(t, BlessingClaimed, s.ClaimBlessing("2026-08-31", 100))

	assert.True(t, s.BlessingEligible("2026-09-01"))
	require.Equal(t, BlessingClaimed, s.ClaimBlessing("2026-09-01", 100))
	assert.Equal(t, int64(200), s.Balance)
}

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClash_Cycle(t *testing.T) {
	tests := []struct {
		player, opponent Stance
		want             ClashOutcome
	}{
		{StanceAggressive, StanceDeceptive, ClashWin},
		{StanceDeceptive, StanceAggressive, ClashLoss},
		{StanceDeceptive, StanceDefensive, ClashWin},
		{StanceDefensive, StanceDeceptive, ClashLoss},
		{StanceDefensive, StanceAggressive, ClashWin},
		{StanceAggressive, StanceDefensive, ClashLoss},
		{StanceAggressive, StanceAggressive, ClashTie},
		{StanceDeceptive, StanceDeceptive, ClashTie},
		{StanceDefensive, StanceDefensive, ClashTie},
	}

	for _, tt := range tests {
		got := ResolveClash(tt.player, tt.opponent)
		assert.Equal(t, tt.want, got, "%s vs %s", tt.player, tt.opponent)
	}
}

func TestResolveClash_Complementary(t *testing.T) {
	for _, a := range Stances {
		for _, b := range Stances {
			fwd := ResolveClash(a, b)
			rev := ResolveClash(b, a)

			if a == b {
				assert.Equal(t, ClashTie, fwd)
				assert.Equal(t, ClashTie, rev)
				continue
			}

			if fwd == ClashWin {
				assert.Equal(t, ClashLoss, rev, "%s vs %s", a, b)
			} else {
				assert.Equal(t, ClashWin, rev, "%s vs %s", a, b)
			}
		}
	}
}

func TestSettleClash_Win(t *testing.T) {
	s := newTestState(1000)

	out, err := s.SettleClash(StanceAggressive, StanceDeceptive, 100)

	require.NoError(t, err)
	assert.Equal(t, ClashWin, out)
	assert.Equal(t, int64(1100), s.Balance)
	assert.Equal(t, int64(100), s.TotalWon)
	assert.Equal(t, int64(1), s.GamesPlayed)
}

func TestSettleClash_Loss(t *testing.T) {
	s := newTestState(1000)

	out, err := s.SettleClash(StanceDeceptive, StanceAggressive, 100)

	require.NoError(t, err)
	assert.Equal(t, ClashLoss, out)
	assert.Equal(t, int64(900), s.Balance)
	assert.Equal(t, int64(100), s.TotalWagered)
}

func TestSettleClash_TieNoTransfer(t *testing.T) {
	s := newTestState(1000)

	out, err := s.SettleClash(StanceDefensive, StanceDefensive, 100)

	require.NoError(t, err)
	assert.Equal(t, ClashTie, out)
	assert.Equal(t, int64(1000), s.Balance)
	assert.Equal(t, int64(0), s.TotalWagered)
}

func TestSettleClash_RequiresCoverage(t *testing.T) {
	s := newTestState(50)

	// Even a clash the player would win is rejected when the stake
	// cannot be covered up front.
	_, err := s.SettleClash(StanceAggressive, StanceDeceptive, 100)

	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(50), s.Balance)
	assert.Equal(t, int64(0), s.GamesPlayed)
}

func TestSettleClash_InvalidWager(t *testing.T) {
	s := newTestState(50)

	_, err := s.SettleClash(StanceAggressive, StanceDeceptive, 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestParseStance(t *testing.T) {
	for _, st := range Stances {
		got, err := ParseStance(string(st))
		require.NoError(t, err)
		assert.Equal(t, st, got)
	}

	_, err := ParseStance("sneaky")
	assert.ErrorIs(t, err, ErrInvalidStance)
}

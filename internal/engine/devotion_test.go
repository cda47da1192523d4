package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOutcome_NetWin(t *testing.T) {
	s := newTestState(0)

	require.NoError(t, s.RecordOutcome("morrigan", 100, 150))

	rec := s.Devotion["morrigan"]
	assert.Equal(t, 5, rec.Devotion)
	assert.Equal(t, int64(1), rec.GamesWon)
	assert.Equal(t, int64(1), s.GamesPlayed)
	assert.Equal(t, int64(150), s.TotalWon)
}

func TestRecordOutcome_ClampsAtHundred(t *testing.T) {
	s := newTestState(0)
	s.Devotion["morrigan"].Devotion = 95

	require.NoError(t, s.RecordOutcome("morrigan", 100, 150))

	assert.Equal(t, 100, s.Devotion["morrigan"].Devotion)
	assert.Equal(t, int64(1), s.Devotion["morrigan"].GamesWon)
}

func TestRecordOutcome_LossFloorsAtZero(t *testing.T) {
	s := newTestState(0)

	for range 5 {
		require.NoError(t, s.RecordOutcome("veles", 100, 0))
	}

	assert.Equal(t, 0, s.Devotion["veles"].Devotion)
	assert.Equal(t, int64(0), s.Devotion["veles"].GamesWon, "losses never count as wins")
}

func TestRecordOutcome_BreakEvenIsALoss(t *testing.T) {
	s := newTestState(0)
	s.Devotion["thoth"].Devotion = 10

	// won == wagered is not a net win.
	require.NoError(t, s.RecordOutcome("thoth", 100, 100))

	assert.Equal(t, 9, s.Devotion["thoth"].Devotion)
	assert.Equal(t, int64(0), s.Devotion["thoth"].GamesWon)
}

func TestRecordOutcome_DevotionStaysBounded(t *testing.T) {
	s := newTestState(0)

	outcomes := []int64{150, 0, 150, 150, 0, 0, 0, 150, 150, 150, 150, 150}
	for i := 0; i < 50; i++ {
		won := outcomes[i%len(outcomes)]
		require.NoError(t, s.RecordOutcome("morrigan", 100, won))

		d := s.Devotion["morrigan"].Devotion
		assert.GreaterOrEqual(t, d, 0)
		assert.LessOrEqual(t, d, 100)
	}
}

func TestRecordOutcome_UnknownGod(t *testing.T) {
	s := newTestState(0)

	err := s.RecordOutcome("zeus", 100, 150)

	assert.ErrorIs(t, err, ErrUnknownGod)
	assert.Equal(t, int64(0), s.GamesPlayed)
}

func TestJoinCult(t *testing.T) {
	s := newTestState(0)

	require.NoError(t, s.JoinCult("morrigan"))
	assert.Equal(t, GodID("morrigan"), s.Cult)

	// Switching is unconditional and immediate.
	require.NoError(t, s.JoinCult("veles"))
	assert.Equal(t, GodID("veles"), s.Cult)

	// Re-joining the same cult is idempotent and emits nothing new.
	s.TakeEvents()
	require.NoError(t, s.JoinCult("veles"))
	assert.Empty(t, s.TakeEvents())

	assert.ErrorIs(t, s.JoinCult("zeus"), ErrUnknownGod)
}

func TestDevotionLevel(t *testing.T) {
	s := newTestState(0)

	tests := []struct {
		devotion int
		level    int
	}{
		{0, 0}, {19, 0}, {20, 1}, {39, 1}, {55, 2}, {80, 4}, {99, 4}, {100, 5},
	}

	for _, tt := range tests {
		s.Devotion["thoth"].Devotion = tt.devotion
		assert.Equal(t, tt.level, s.DevotionLevel("thoth"), "devotion %d", tt.devotion)
	}

	assert.Equal(t, 0, s.DevotionLevel("zeus"))
}

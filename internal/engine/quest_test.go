package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimQuest_ExactlyOnce(t *testing.T) {
	s := newTestState(100)
	s.AdvanceQuest("first-blood", 1)

	res := s.ClaimQuest("first-blood")
	require.Equal(t, ClaimOK, res)
	assert.Equal(t, int64(150), s.Balance, "reward 50 credited once")

	res = s.ClaimQuest("first-blood")
	assert.Equal(t, ClaimAlreadyDone, res)
	assert.Equal(t, int64(150), s.Balance, "second claim must not credit again")
	assert.Equal(t, int64(1), s.CheaterPoints)
}

func TestClaimQuest_NotComplete(t *testing.T) {
	s := newTestState(100)
	s.AdvanceQuest("scholar", 9)

	assert.Equal(t, ClaimIncomplete, s.ClaimQuest("scholar"))
	assert.Equal(t, int64(100), s.Balance)
	assert.False(t, s.Quests[1].Claimed)
}

func TestClaimQuest_NotFound(t *testing.T) {
	s := newTestState(100)

	assert.Equal(t, ClaimQuestNotFound, s.ClaimQuest("no-such-quest"))
	assert.Equal(t, int64(100), s.Balance)
}

func TestAdvanceQuest_ClampsToTarget(t *testing.T) {
	s := newTestState(0)

	s.AdvanceQuest("scholar", 25)
	assert.Equal(t, 10, s.Quests[1].Progress)

	s.AdvanceQuest("scholar", -100)
	assert.Equal(t, 0, s.Quests[1].Progress)

	// Unknown IDs are silently ignored.
	s.AdvanceQuest("no-such-quest", 1)
}

func TestAdvanceQuest_ClaimedQuestFrozen(t *testing.T) {
	s := newTestState(0)
	s.AdvanceQuest("first-blood", 1)
	require.Equal(t, ClaimOK, s.ClaimQuest("first-blood"))

	s.AdvanceQuest("first-blood", -1)
	assert.Equal(t, 1, s.Quests[0].Progress)
}

func TestAdvanceQuestsFor_OnlyMatchingGod(t *testing.T) {
	s := newTestState(0)

	s.AdvanceQuestsFor("thoth")

	assert.Equal(t, 0, s.Quests[0].Progress, "morrigan quest untouched")
	assert.Equal(t, 1, s.Quests[1].Progress)
}

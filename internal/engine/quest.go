package engine

// Quest is a progress-gated, exactly-once-claimable reward.
type Quest struct {
	ID          string `json:"id"`
	God         GodID  `json:"godId"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	Target      int    `json:"target"`
	Reward      int64  `json:"reward"`
	Claimed     bool   `json:"isClaimed"`
}

// Complete reports whether the quest has reached its target.
func (q Quest) Complete() bool {
	return q.Progress >= q.Target
}

// ClaimResult enumerates the outcomes of a quest claim attempt.
type ClaimResult string

const (
	ClaimOK            ClaimResult = "claimed"
	ClaimAlreadyDone   ClaimResult = "already_claimed"
	ClaimIncomplete    ClaimResult = "not_complete"
	ClaimQuestNotFound ClaimResult = "not_found"
)

// ClaimQuest pays out a completed quest exactly once. A repeat claim
// reports ClaimAlreadyDone without touching the balance; this is the
// idempotency boundary for quest rewards. Repeat claims also count a
// cheater point, since honest UIs disable the button after success.
func (s *State) ClaimQuest(id string) ClaimResult {
	q := s.quest(id)
	if q == nil {
		return ClaimQuestNotFound
	}

	if q.Claimed {
		s.CheaterPoints++
		return ClaimAlreadyDone
	}

	if !q.Complete() {
		return ClaimIncomplete
	}

	q.Claimed = true
	_ = s.Credit(q.Reward)
	s.emit(Event{Kind: EventQuestClaimed, Quest: id, Amount: q.Reward})

	return ClaimOK
}

// AdvanceQuest adds delta to a quest's progress, clamped to
// [0, target]. Claimed quests no longer move. Unknown IDs are ignored;
// progress feeds come from gameplay events that may outlive a quest
// set.
func (s *State) AdvanceQuest(id string, delta int) {
	q := s.quest(id)
	if q == nil || q.Claimed {
		return
	}

	q.Progress = min(max(q.Progress+delta, 0), q.Target)
}

// AdvanceQuestsFor advances every unclaimed quest tied to the given
// deity by one step. Called by round orchestration on a net win.
func (s *State) AdvanceQuestsFor(god GodID) {
	for i := range s.Quests {
		if s.Quests[i].God == god {
			s.AdvanceQuest(s.Quests[i].ID, 1)
		}
	}
}

func (s *State) quest(id string) *Quest {
	for i := range s.Quests {
		if s.Quests[i].ID == id {
			return &s.Quests[i]
		}
	}

	return nil
}

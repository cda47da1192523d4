package engine

const (
	devotionWinStep  = 5
	devotionLossStep = 1
	devotionMax      = 100

	// One devotion level per 20 points, so levels run 0 through 5.
	devotionPerLevel = 20
)

// RecordOutcome updates a deity's devotion after a completed wager
// round. A net win (won > wagered) raises devotion by a fixed step and
// counts a game won; anything else lowers devotion by a smaller step.
// Devotion is clamped to [0, 100] and GamesWon never decreases.
func (s *State) RecordOutcome(god GodID, wagered, won int64) error {
	rec, ok := s.Devotion[god]
	if !ok {
		return ErrUnknownGod
	}

	if won > wagered {
		rec.Devotion = min(rec.Devotion+devotionWinStep, devotionMax)
		rec.GamesWon++
	} else {
		rec.Devotion = max(rec.Devotion-devotionLossStep, 0)
	}

	s.GamesPlayed++
	s.TotalWon += won
	s.emit(Event{Kind: EventOutcome, God: god, Amount: won - wagered})

	return nil
}

// JoinCult sets the player's cult affiliation. Switching is immediate
// and unconditional; joining the current cult is a no-op.
func (s *State) JoinCult(god GodID) error {
	if !s.KnownGod(god) {
		return ErrUnknownGod
	}

	if s.Cult == god {
		return nil
	}

	s.Cult = god
	s.emit(Event{Kind: EventCultJoined, God: god})

	return nil
}

// DevotionLevel derives the 0-5 display level for a deity. Unknown
// deities report level 0.
func (s *State) DevotionLevel(god GodID) int {
	rec, ok := s.Devotion[god]
	if !ok {
		return 0
	}

	return rec.Devotion / devotionPerLevel
}

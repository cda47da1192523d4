// Package engine implements the player progression and wagering state
// machine: the soul ledger, per-deity devotion, cult affiliation, timed
// boons, quest claims, the daily blessing gate and clash resolution.
//
// A State is a single-writer aggregate. Callers must ensure one mutation
// completes before the next begins; the engine itself does no locking.
// Every operation either fully applies or leaves the state untouched.
package engine

// GodID identifies a deity in the pantheon. The pantheon is closed: the
// set of valid IDs is fixed when the State is created and never grows.
type GodID string

// DevotionRecord tracks a player's standing with one deity.
type DevotionRecord struct {
	Devotion int   `json:"devotion"`
	GamesWon int64 `json:"gamesWon"`
}

// State is the aggregate root for one player's session.
type State struct {
	Balance          int64
	Devotion         map[GodID]*DevotionRecord
	Cult             GodID // empty means no affiliation
	Boons            []Boon
	Quests           []Quest
	LastBlessingDate string

	GamesPlayed   int64
	TotalWagered  int64
	TotalWon      int64
	CheaterPoints int64

	DisplayName string

	events []Event
}

// NewState creates a fresh player state: the given starting balance, a
// zeroed devotion record for every deity in the pantheon, no cult, no
// boons and the supplied quest set unclaimed.
func NewState(pantheon []GodID, quests []Quest, startingBalance int64) *State {
	devotion := make(map[GodID]*DevotionRecord, len(pantheon))
	for _, god := range pantheon {
		devotion[god] = &DevotionRecord{}
	}

	qs := make([]Quest, len(quests))
	copy(qs, quests)

	return &State{
		Balance:  startingBalance,
		Devotion: devotion,
		Boons:    []Boon{},
		Quests:   qs,
	}
}

// KnownGod reports whether the deity belongs to the pantheon this state
// was created with.
func (s *State) KnownGod(god GodID) bool {
	_, ok := s.Devotion[god]
	return ok
}

func (s *State) emit(ev Event) {
	s.events = append(s.events, ev)
}

// TakeEvents returns the events emitted since the last call and clears
// the buffer. The caller owns the returned slice.
func (s *State) TakeEvents() []Event {
	evs := s.events
	s.events = nil

	return evs
}

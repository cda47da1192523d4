package store

import (
	"encoding/json"

	"github.com/pantheonhq/soulengine/internal/engine"
)

// SchemaVersion tags encoded snapshots. Restore refuses documents from
// a different version and falls back to defaults instead of guessing.
const SchemaVersion = 1

// document is the persisted layout: the balance at top level next to
// the structured player record, under one version tag.
type document struct {
	Version int       `json:"version"`
	Balance int64     `json:"balance"`
	Player  playerDoc `json:"player"`
}

type playerDoc struct {
	Cult             string                                  `json:"cultId,omitempty"`
	Devotion         map[engine.GodID]*engine.DevotionRecord `json:"devotionByGod"`
	Boons            []engine.Boon                           `json:"activeBoons"`
	Quests           []engine.Quest                          `json:"quests"`
	LastBlessingDate string                                  `json:"lastBlessingDate,omitempty"`
	GamesPlayed      int64                                   `json:"gamesPlayed"`
	TotalWagered     int64                                   `json:"totalWagered"`
	TotalWon         int64                                   `json:"totalWon"`
	CheaterPoints    int64                                   `json:"cheaterPoints"`
	DisplayName      string                                  `json:"displayName,omitempty"`
}

// Encode serializes a player state into the versioned snapshot form.
func Encode(s *engine.State) ([]byte, error) {
	doc := document{
		Version: SchemaVersion,
		Balance: s.Balance,
		Player: playerDoc{
			Cult:             string(s.Cult),
			Devotion:         s.Devotion,
			Boons:            s.Boons,
			Quests:           s.Quests,
			LastBlessingDate: s.LastBlessingDate,
			GamesPlayed:      s.GamesPlayed,
			TotalWagered:     s.TotalWagered,
			TotalWon:         s.TotalWon,
			CheaterPoints:    s.CheaterPoints,
			DisplayName:      s.DisplayName,
		},
	}

	return json.Marshal(doc)
}

// Decode rebuilds a player state from a snapshot, overlaying it onto a
// fresh default state. Missing, malformed or wrong-version input yields
// the fresh state unchanged: a session always starts well-formed.
//
// Overlaying, rather than trusting the blob wholesale, also absorbs
// content drift: deities or quests added to the definitions since the
// snapshot was written appear at their defaults, and entries for
// removed ones are dropped.
func Decode(raw []byte, fresh func() *engine.State) *engine.State {
	s := fresh()

	if len(raw) == 0 {
		return s
	}

	var doc document

	err := json.Unmarshal(raw, &doc)
	if err != nil || doc.Version != SchemaVersion || doc.Balance < 0 {
		return fresh()
	}

	s.Balance = doc.Balance
	s.LastBlessingDate = doc.Player.LastBlessingDate
	s.GamesPlayed = doc.Player.GamesPlayed
	s.TotalWagered = doc.Player.TotalWagered
	s.TotalWon = doc.Player.TotalWon
	s.CheaterPoints = doc.Player.CheaterPoints
	s.DisplayName = doc.Player.DisplayName

	if cult := engine.GodID(doc.Player.Cult); cult != "" && s.KnownGod(cult) {
		s.Cult = cult
	}

	for god, rec := range doc.Player.Devotion {
		cur, ok := s.Devotion[god]
		if !ok || rec == nil {
			continue
		}

		cur.Devotion = min(max(rec.Devotion, 0), 100)
		cur.GamesWon = max(rec.GamesWon, 0)
	}

	for _, b := range doc.Player.Boons {
		if b.Kind != "" && b.Remaining > 0 && b.Potency > 0 {
			s.Boons = append(s.Boons, b)
		}
	}

	for _, saved := range doc.Player.Quests {
		for i := range s.Quests {
			if s.Quests[i].ID != saved.ID {
				continue
			}

			s.Quests[i].Progress = min(max(saved.Progress, 0), s.Quests[i].Target)
			s.Quests[i].Claimed = saved.Claimed
		}
	}

	return s
}

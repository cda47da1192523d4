package player

import (
	"errors"

	"github.com/pantheonhq/soulengine/internal/engine"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrUnknownBoonKind = errors.New("unknown boon kind")
)

// GodStanding is the per-deity projection renderers consume.
type GodStanding struct {
	God      engine.GodID `json:"godId"`
	Name     string       `json:"name"`
	Devotion int          `json:"devotion"`
	Level    int          `json:"level"`
	GamesWon int64        `json:"gamesWon"`
}

// View is the read-only projection of one player's state.
type View struct {
	ID               string         `json:"id"`
	Balance          int64          `json:"balance"`
	Cult             engine.GodID   `json:"cultId,omitempty"`
	Devotion         []GodStanding  `json:"devotion"`
	Boons            []engine.Boon  `json:"activeBoons"`
	Quests           []engine.Quest `json:"quests"`
	BlessingEligible bool           `json:"blessingEligible"`
	GamesPlayed      int64          `json:"gamesPlayed"`
	TotalWagered     int64          `json:"totalWagered"`
	TotalWon         int64          `json:"totalWon"`
	CheaterPoints    int64          `json:"cheaterPoints"`
}

// RoundResult reports one completed wager round.
type RoundResult struct {
	God      engine.GodID `json:"godId"`
	Wagered  int64        `json:"wagered"`
	Won      int64        `json:"won"`
	Balance  int64        `json:"balance"`
	Devotion int          `json:"devotion"`
	Level    int          `json:"level"`
}

// ClashResult reports a settled clash, including the rolled opponent.
type ClashResult struct {
	Outcome        engine.ClashOutcome `json:"outcome"`
	PlayerStance   engine.Stance       `json:"playerStance"`
	OpponentStance engine.Stance       `json:"opponentStance"`
	OpponentGod    engine.GodID        `json:"opponentGodId"`
	OpponentName   string              `json:"opponentName"`
	Wager          int64               `json:"wager"`
	Balance        int64               `json:"balance"`
}

// BlessingOutcome reports a daily blessing claim attempt.
type BlessingOutcome struct {
	Result  engine.BlessingResult `json:"result"`
	Amount  int64                 `json:"amount"`
	Day     string                `json:"day"`
	Balance int64                 `json:"balance"`
}

// Package content loads the game's static definitions: the pantheon,
// the quest set, the boon kinds and a few tunable amounts. Definitions
// are read once at process start; the pantheon is closed after that.
package content

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pantheonhq/soulengine/internal/engine"
)

//go:embed defaults.yaml
var defaultsYAML []byte

type GodDef struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Domain string `yaml:"domain"`
}

type QuestDef struct {
	ID          string `yaml:"id"`
	God         string `yaml:"god"`
	Description string `yaml:"description"`
	Target      int    `yaml:"target"`
	Reward      int64  `yaml:"reward"`
}

type Definitions struct {
	StartingBalance int64      `yaml:"starting_balance"`
	BlessingAmount  int64      `yaml:"blessing_amount"`
	Gods            []GodDef   `yaml:"gods"`
	Quests          []QuestDef `yaml:"quests"`
	BoonKinds       []string   `yaml:"boon_kinds"`
}

// Load reads definitions from path, or the embedded defaults when path
// is empty.
func Load(path string) (*Definitions, error) {
	raw := defaultsYAML

	if path != "" {
		var err error

		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content file: %w", err)
		}
	}

	var defs Definitions

	err := yaml.Unmarshal(raw, &defs)
	if err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}

	err = defs.validate()
	if err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}

	return &defs, nil
}

func (d *Definitions) validate() error {
	if len(d.Gods) == 0 {
		return fmt.Errorf("pantheon is empty")
	}

	if d.StartingBalance < 0 {
		return fmt.Errorf("starting_balance must not be negative")
	}

	if d.BlessingAmount < 0 {
		return fmt.Errorf("blessing_amount must not be negative")
	}

	gods := make(map[string]bool, len(d.Gods))
	for _, g := range d.Gods {
		if g.ID == "" {
			return fmt.Errorf("god with empty id")
		}

		if gods[g.ID] {
			return fmt.Errorf("duplicate god id %q", g.ID)
		}

		gods[g.ID] = true
	}

	quests := make(map[string]bool, len(d.Quests))
	for _, q := range d.Quests {
		if q.ID == "" {
			return fmt.Errorf("quest with empty id")
		}

		if quests[q.ID] {
			return fmt.Errorf("duplicate quest id %q", q.ID)
		}

		quests[q.ID] = true

		if !gods[q.God] {
			return fmt.Errorf("quest %q references unknown god %q", q.ID, q.God)
		}

		if q.Target <= 0 {
			return fmt.Errorf("quest %q target must be positive", q.ID)
		}

		if q.Reward < 0 {
			return fmt.Errorf("quest %q reward must not be negative", q.ID)
		}
	}

	kinds := make(map[string]bool, len(d.BoonKinds))
	for _, k := range d.BoonKinds {
		if k == "" {
			return fmt.Errorf("empty boon kind")
		}

		if kinds[k] {
			return fmt.Errorf("duplicate boon kind %q", k)
		}

		kinds[k] = true
	}

	return nil
}

// Pantheon returns the deity roster as engine IDs, in definition order.
func (d *Definitions) Pantheon() []engine.GodID {
	ids := make([]engine.GodID, len(d.Gods))
	for i, g := range d.Gods {
		ids[i] = engine.GodID(g.ID)
	}

	return ids
}

// GodName returns the display name for a deity, falling back to the ID.
func (d *Definitions) GodName(id engine.GodID) string {
	for _, g := range d.Gods {
		if g.ID == string(id) {
			return g.Name
		}
	}

	return string(id)
}

// NewQuests builds a fresh, unclaimed quest set for a new player.
func (d *Definitions) NewQuests() []engine.Quest {
	qs := make([]engine.Quest, len(d.Quests))
	for i, q := range d.Quests {
		qs[i] = engine.Quest{
			ID:          q.ID,
			God:         engine.GodID(q.God),
			Description: q.Description,
			Target:      q.Target,
			Reward:      q.Reward,
		}
	}

	return qs
}

// HasBoonKind reports whether the kind is one of the defined boons.
func (d *Definitions) HasBoonKind(kind engine.BoonKind) bool {
	for _, k := range d.BoonKinds {
		if k == string(kind) {
			return true
		}
	}

	return false
}

// NewState creates a default player state from these definitions.
func (d *Definitions) NewState() *engine.State {
	return engine.NewState(d.Pantheon(), d.NewQuests(), d.StartingBalance)
}

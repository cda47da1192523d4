package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantheonhq/soulengine/internal/engine"
)

func TestLoad_EmbeddedDefaults(t *testing.T) {
	defs, err := Load("")
	require.NoError(t, err)

	assert.NotEmpty(t, defs.Gods)
	assert.NotEmpty(t, defs.Quests)
	assert.NotEmpty(t, defs.BoonKinds)
	assert.Positive(t, defs.StartingBalance)
	assert.Positive(t, defs.BlessingAmount)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	doc := `
starting_balance: 500
blessing_amount: 25
gods:
  - id: anansi
    name: Anansi
    domain: stories
boon_kinds: [fervor]
quests:
  - id: spin
    god: anansi
    description: Spin a web
    target: 2
    reward: 10
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	defs, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []engine.GodID{"anansi"}, defs.Pantheon())
	assert.Equal(t, "Anansi", defs.GodName("anansi"))
	assert.Equal(t, "anansi", defs.GodName("unknown"))
	assert.True(t, defs.HasBoonKind("fervor"))
	assert.False(t, defs.HasBoonKind("insight"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":\t:"},
		{"empty pantheon", "starting_balance: 10"},
		{"duplicate god", "gods: [{id: a, name: A}, {id: a, name: A2}]"},
		{"quest unknown god", "gods: [{id: a, name: A}]\nquests: [{id: q, god: b, target: 1}]"},
		{"quest zero target", "gods: [{id: a, name: A}]\nquests: [{id: q, god: a, target: 0}]"},
		{"negative reward", "gods: [{id: a, name: A}]\nquests: [{id: q, god: a, target: 1, reward: -5}]"},
		{"duplicate quest", "gods: [{id: a, name: A}]\nquests: [{id: q, god: a, target: 1}, {id: q, god: a, target: 1}]"},
		{"duplicate boon kind", "gods: [{id: a, name: A}]\nboon_kinds: [fervor, fervor]"},
		{"negative balance", "starting_balance: -1\ngods: [{id: a, name: A}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "content.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.doc), 0o600))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestNewState_Defaults(t *testing.T) {
	defs, err := Load("")
	require.NoError(t, err)

	s := defs.NewState()

	assert.Equal(t, defs.StartingBalance, s.Balance)
	assert.Len(t, s.Devotion, len(defs.Gods))
	assert.Len(t, s.Quests, len(defs.Quests))
	assert.Empty(t, s.Cult)

	for _, god := range defs.Pantheon() {
		require.True(t, s.KnownGod(god))
		assert.Equal(t, 0, s.Devotion[god].Devotion)
	}

	for _, q := range s.Quests {
		assert.False(t, q.Claimed)
		assert.Equal(t, 0, q.Progress)
	}
}

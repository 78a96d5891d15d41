package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)
	require.Positive(t, c.Version)
	require.Len(t, c.Badges.IDs, 20)
	require.EqualValues(t, 50, c.Badges.BonusPoints)
	require.True(t, c.IsBadge("first_dare"))
	require.True(t, c.IsBadge("team_player"))
	require.False(t, c.IsBadge("free_money"))
	require.Len(t, c.Moderation.ExplicitPatterns, 7)
	require.Len(t, c.Moderation.DangerousPatterns, 6)
	require.NotEmpty(t, c.Moderation.Lexicon)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "version: 9\nbadges:\n  bonus_points: 10\n  ids: [a, b]\n"
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o600))

	c, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, 9, c.Version)
	require.True(t, c.IsBadge("b"))

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	for name, doc := range map[string]string{
		"syntax":     "version: [",
		"no version": "badges:\n  bonus_points: 1\n  ids: [a]\n",
		"no badges":  "version: 1\n",
		"no bonus":   "version: 1\nbadges:\n  ids: [a]\n",
	} {
		_, err := Parse([]byte(doc))
		require.Error(t, err, name)
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "Arryl's Team", cfg.Report.TeamName)
	assert.Equal(t, []string{"Arryl"}, cfg.Report.Members)
	assert.Equal(t, "keywords.json", cfg.Keywords.Path)
	assert.Equal(t, "submission.json", cfg.Output.JSONFilename)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestParseOverrides(t *testing.T) {
	yaml := `
report:
  team_name: "Desk B"
  members: [Ana, Ben]
keywords:
  path: /etc/dealrank/keywords.json
logging:
  level: debug
`
	cfg, err := parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "Desk B", cfg.Report.TeamName)
	assert.Equal(t, []string{"Ana", "Ben"}, cfg.Report.Members)
	assert.Equal(t, "/etc/dealrank/keywords.json", cfg.Keywords.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Untouched sections keep defaults.
	assert.Equal(t, "submission.json", cfg.Output.JSONFilename)
}

func TestParseRejectsInvalidLevel(t *testing.T) {
	_, err := parse([]byte("logging:\n  level: loud\n"))
	assert.Error(t, err)
}

func TestParseRejectsEmptyTeamName(t *testing.T) {
	_, err := parse([]byte("report:\n  team_name: \"\"\n"))
	assert.Error(t, err)
}

func TestEmbeddedDefaultMatchesParser(t *testing.T) {
	cfg, err := parse(DefaultConfigYAML)
	require.NoError(t, err)
	assert.Equal(t, "Arryl's Team", cfg.Report.TeamName)
	assert.Equal(t, "keywords.json", cfg.Keywords.Path)
}

package timers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `
id: kitchen
running: false
items:
  - name: pasta
    duration: 8m
  - name: eggs
    duration: 5m30s
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)
	require.Equal(t, "kitchen", cfg.ID)
	require.False(t, cfg.Running)
	require.Len(t, cfg.Items, 2)
}

func TestConfig_InitialState(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	require.NoError(t, err)

	state, err := cfg.InitialState()
	require.NoError(t, err)
	require.Equal(t, State{
		Items: []Item{
			{Name: "pasta", Duration: 8 * time.Minute},
			{Name: "eggs", Duration: 5*time.Minute + 30*time.Second},
		},
	}, state)
}

func TestConfig_ValidateRejectsEmptyName(t *testing.T) {
	cfg := Config{Items: []ItemConfig{{Name: "", Duration: "5s"}}}
	require.Error(t, cfg.Validate())
}

func TestConfig_ValidateRejectsBadDuration(t *testing.T) {
	cfg := Config{Items: []ItemConfig{{Name: "a", Duration: "soon"}}}
	require.Error(t, cfg.Validate())
}

func TestConfig_ValidateRejectsNegativeDuration(t *testing.T) {
	cfg := Config{Items: []ItemConfig{{Name: "a", Duration: "-5s"}}}
	require.Error(t, cfg.Validate())
}

func TestParseConfig_BadYAML(t *testing.T) {
	_, err := ParseConfig([]byte("items: [unclosed"))
	require.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "kitchen", cfg.ID)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

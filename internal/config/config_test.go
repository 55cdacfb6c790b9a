package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pedrohba/gradeplan/internal/app/models"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Planning.Horizon)
	assert.Equal(t, 32, cfg.Planning.MaxCreditsPerTerm)
	assert.Equal(t, "120s", cfg.Planning.SolveTimeLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
server:
  port: "9090"
planning:
  horizon: 8
  max_credits_per_term: 24
  term_one_parity: EVEN
  solve_time_limit: 30s
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 8, cfg.Planning.Horizon)
	assert.Equal(t, 24, cfg.Planning.MaxCreditsPerTerm)
	assert.Equal(t, "EVEN", cfg.Planning.TermOneParity)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PLANNING_HORIZON", "6")
	t.Setenv("SERVER_PORT", "7070")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Planning.Horizon)
	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestLoadConfig_MalformedEnvInteger(t *testing.T) {
	t.Setenv("PLANNING_HORIZON", "twelve")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PLANNING_HORIZON")
}

func TestLoadConfig_InvalidSolveTimeLimit(t *testing.T) {
	t.Setenv("PLANNING_SOLVE_TIME_LIMIT", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solve time limit")
}

func TestLoadConfig_InvalidHorizon(t *testing.T) {
	t.Setenv("PLANNING_HORIZON", "0")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestPlanningConfig_Conversion(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.Planning.TermOneParity = "even"
	cfg.Planning.TieBreak = "FRONT_LOAD"

	planning, err := cfg.PlanningConfig()
	require.NoError(t, err)

	assert.Equal(t, 12, planning.Horizon)
	assert.Equal(t, models.ParityEven, planning.TermOneParity)
	assert.Equal(t, models.TieBreakFrontLoad, planning.TieBreak)
	assert.Equal(t, 120*time.Second, planning.SolveTimeLimit)
}

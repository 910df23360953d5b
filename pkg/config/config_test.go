package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adrianliechti/wingman-research/pkg/personality"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"NEXT_PUBLIC_API_BASE_URL",
		"RESEARCH_API_URL",
		"RESEARCH_TIMEOUT",
		"RESEARCH_AGENT_NAME",
		"RESEARCH_PERSONALITY",
		"RESEARCH_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "missing.yaml"), dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultAgentName, cfg.AgentName)
	assert.Equal(t, personality.Helpful, cfg.Personality)
	assert.Equal(t, dir, cfg.WorkingDir)
	assert.NotEmpty(t, cfg.LogFile)
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "research.yaml")

	content := "base_url: http://backend:5000/\ntimeout: 30s\nagent_name: bot1\npersonality: formal\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:5000", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "bot1", cfg.AgentName)
	assert.Equal(t, personality.Formal, cfg.Personality)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "research.yaml")

	require.NoError(t, os.WriteFile(path, []byte("base_url: http://file:5000\n"), 0644))

	t.Setenv("NEXT_PUBLIC_API_BASE_URL", "http://legacy:5000")
	t.Setenv("RESEARCH_PERSONALITY", "Casual")

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "http://legacy:5000", cfg.BaseURL)
	assert.Equal(t, personality.Casual, cfg.Personality)

	t.Setenv("RESEARCH_API_URL", "http://env:5000")

	cfg, err = Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "http://env:5000", cfg.BaseURL)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad yaml", "base_url: [\n"},
		{"bad url", "base_url: not a url\n"},
		{"bad timeout", "timeout: soon\n"},
		{"negative timeout", "timeout: -1s\n"},
		{"bad personality", "personality: grumpy\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			dir := t.TempDir()
			path := filepath.Join(dir, "research.yaml")

			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path, dir)
			assert.Error(t, err)
		})
	}
}

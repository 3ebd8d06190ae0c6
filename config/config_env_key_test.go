package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl":    "",
			"pathPrefix": "/api",
		},
		"engine": map[string]any{
			"refreshInterval":  "60s",
			"calendarDayLimit": 8,
		},
		"env": map[string]any{
			"log": map[string]any{
				"maxSizeMB": 50,
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "API_PATHPREFIX", want: "api.pathPrefix"},
		{envKey: "ENGINE_CALENDARDAYLIMIT", want: "engine.calendarDayLimit"},
		{envKey: "ENV_LOG_MAXSIZEMB", want: "env.log.maxSizeMB"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := "api:\n  baseUrl: http://yaml.example\n  timeout: 5s\nengine:\n  calendarDayLimit: 4\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	t.Setenv("VGB_API_BASEURL", "http://env.example")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "http://env.example", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, 4, cfg.Engine.CalendarDayLimit)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")

	assert.Error(t, err)
}

func TestLoadWithEnv_IgnoresUnprefixedVariables(t *testing.T) {
	dir := t.TempDir()
	yaml := "api:\n  baseUrl: http://yaml.example\n  timeout: 5s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yaml), 0o600))

	pwd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(pwd, dir)
	require.NoError(t, err)

	t.Setenv("API_BASEURL", "http://stray.example")
	t.Setenv("API_TIMEOUT_MS", "250")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "http://yaml.example", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
}

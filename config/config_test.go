package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	cfg, err := New("config.json")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 1, cfg.OverdueCheck)
	assert.Equal(t, 7, cfg.DueSoonDays)
	assert.Equal(t, "requirements", cfg.Bucket.Requirements)
	assert.Contains(t, cfg.Bucket.All, "requirements")
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, "development", cfg.AI.Mode)
}

func TestNewMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestNewMissingBucket(t *testing.T) {
	loc := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(loc, []byte(`{"port": "8080"}`), 0600))

	_, err := New(loc)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

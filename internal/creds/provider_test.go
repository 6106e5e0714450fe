package creds

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pierson-davis/on-brand-ios-sub000/config"
)

const testKey = "sk-test1234567890abcdefghij"

func writeFile(t *testing.T, dir, name, content string) string {
	loc := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(loc, []byte(content), 0600))
	return loc
}

func TestValidKey(t *testing.T) {
	assert.True(t, ValidKey(testKey))
	assert.False(t, ValidKey("sk-short"))
	assert.False(t, ValidKey("pk-test1234567890abcdefghij"))
	assert.False(t, ValidKey(""))
}

func TestFromKeyFile(t *testing.T) {
	dir := t.TempDir()

	loc := writeFile(t, dir, "dev.txt", "# dev config\nOPENAI_API_KEY = "+testKey+"\n")
	key, ok := fromKeyFile(loc)
	require.True(t, ok)
	assert.Equal(t, testKey, key)

	// placeholder values are skipped
	loc = writeFile(t, dir, "placeholder.txt", "OPENAI_API_KEY = <your key here>\n")
	_, ok = fromKeyFile(loc)
	assert.False(t, ok)

	loc = writeFile(t, dir, "empty.txt", "SOMETHING_ELSE = x\n")
	_, ok = fromKeyFile(loc)
	assert.False(t, ok)

	_, ok = fromKeyFile(filepath.Join(dir, "missing.txt"))
	assert.False(t, ok)

	_, ok = fromKeyFile("")
	assert.False(t, ok)
}

func TestDevelopmentResolution(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.AI.Mode = "development"
	cfg.AI.DevKeyFile = writeFile(t, dir, "dev.txt", "OPENAI_API_KEY = "+testKey)

	p := New(cfg)
	assert.Equal(t, Development, p.Mode())
	assert.Equal(t, Configured, p.Status())
	require.True(t, p.IsReady())
	key, ok := p.Key()
	require.True(t, ok)
	assert.Equal(t, testKey, key)
}

func TestDevelopmentFallsBackToOverride(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.AI.Mode = "development"
	cfg.AI.DevKeyFile = filepath.Join(dir, "missing.txt")
	cfg.AI.OverrideFile = writeFile(t, dir, "override.txt", testKey+"\n")

	p := New(cfg)
	assert.True(t, p.IsReady())
}

func TestUnknownModeDefaultsToDevelopment(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Mode = "whatever"

	p := New(cfg)
	assert.Equal(t, Development, p.Mode())
	assert.Equal(t, NotConfigured, p.Status())
	assert.False(t, p.IsReady())
	_, ok := p.Key()
	assert.False(t, ok)
}

func TestStagingPrefersKeystore(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.AI.Mode = "staging"
	cfg.AI.KeystorePath = dir
	writeFile(t, dir, stagingAccount, testKey+"\n")
	cfg.AI.StagingFile = writeFile(t, dir, "staging.txt", "OPENAI_API_KEY = sk-other1234567890abcdefghij")

	p := New(cfg)
	require.True(t, p.IsReady())
	key, _ := p.Key()
	assert.Equal(t, testKey, key)
	assert.Equal(t, Configured, p.Status())
}

func TestProductionResolution(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.AI.Mode = "production"
	cfg.AI.EncryptedFile = writeFile(t, dir, "prod.enc",
		base64.StdEncoding.EncodeToString([]byte(testKey)))

	p := New(cfg)
	assert.Equal(t, ProductionReady, p.Status())
	require.True(t, p.IsReady())
	key, _ := p.Key()
	assert.Equal(t, testKey, key)
}

func TestInvalidKeyRejected(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{}
	cfg.AI.Mode = "development"
	cfg.AI.DevKeyFile = writeFile(t, dir, "dev.txt", "OPENAI_API_KEY = not-a-real-key-but-long-enough")

	p := New(cfg)
	assert.Equal(t, InvalidKey, p.Status())
	assert.False(t, p.IsReady())
	_, ok := p.Key()
	assert.False(t, ok)
}

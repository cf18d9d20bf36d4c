package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeJSON(t, `{
		"osu": {"client_id": "1234", "client_secret": "s", "max_concurrent_requests": 8, "request_timeout": "10s"},
		"discord": {"token": "bot", "application_id": "42", "register_commands": true},
		"storage": {"db": {"dsn": "file:x.db", "driver": "sqlite3"}},
		"server": {"http_address": ":9000", "interaction_deadline": 1000000000},
		"workers": {"mapfeed_interval": "10m", "group_interval": "2h", "error_backoff": "1m", "button_timeout": "1h"},
		"log_level": "debug"
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "1234", cfg.Osu.ClientID)
	assert.Equal(t, 8, cfg.Osu.MaxConcurrentRequests)
	assert.Equal(t, 10*time.Second, cfg.Osu.RequestTimeout)
	assert.Equal(t, "bot", cfg.Discord.BotToken)
	assert.True(t, cfg.Discord.RegisterCommands)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, time.Second, cfg.Server.InteractionDeadline)
	assert.Equal(t, 10*time.Minute, cfg.Workers.MapfeedInterval)
	assert.Equal(t, time.Hour, cfg.Workers.ButtonTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_BadDuration(t *testing.T) {
	_, err := parseJSON(writeJSON(t, `{"workers": {"group_interval": "later"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_NotJSON(t *testing.T) {
	_, err := parseJSON(writeJSON(t, `osu: yes`))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}

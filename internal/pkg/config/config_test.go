package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/chatsync/internal/pkg/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "chatsync", cfg.App.Name)
	assert.Equal(t, "test", cfg.App.Environment)
	assert.Equal(t, "http://localhost:8080", cfg.API.BaseURL)
	assert.Equal(t, "ws://localhost:8080", cfg.API.WSBaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, constants.DefaultFriendRequestLimit, cfg.Session.FriendRequestLimit)
	assert.Equal(t, constants.DefaultNoticeCapacity, cfg.Session.NoticeCapacity)
	assert.Equal(t, int64(0), cfg.Session.AutoOpenChatID)
}

func TestInitConfig_YAMLWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatsync.yaml")
	content := `
api:
  base_url: http://api.example.com/
  timeout: 3s
ws:
  base_url: wss://api.example.com
redis:
  enabled: true
  port: 6380
session:
  name: alice
  friend_request_limit: 7
  auto_open_chat_id: 42
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("SESSION_NAME", "bob")

	cfg := InitConfig(path)

	assert.Equal(t, "http://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "wss://api.example.com", cfg.API.WSBaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "bob", cfg.Session.Name)
	assert.Equal(t, 7, cfg.Session.FriendRequestLimit)
	assert.Equal(t, int64(42), cfg.Session.AutoOpenChatID)
}

func TestInitConfig_DotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chatsync.env")
	require.NoError(t, os.WriteFile(path, []byte("SESSION_NOTICE_CAPACITY=3\nSERVER_PORT=9000\n"), 0o600))
	t.Setenv("APP_ENV", "local")
	// godotenv does not override existing variables; register for cleanup
	t.Setenv("SESSION_NOTICE_CAPACITY", "")
	t.Setenv("SERVER_PORT", "")
	os.Unsetenv("SESSION_NOTICE_CAPACITY")
	os.Unsetenv("SERVER_PORT")

	cfg := InitConfig(path)

	assert.Equal(t, 3, cfg.Session.NoticeCapacity)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("CHATSYNC_INT", "12")
	t.Setenv("CHATSYNC_BAD_INT", "twelve")
	t.Setenv("CHATSYNC_BOOL", "true")

	assert.Equal(t, "fallback", GetEnv("CHATSYNC_MISSING", "fallback"))
	assert.Equal(t, 12, GetEnvAsInt("CHATSYNC_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("CHATSYNC_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("CHATSYNC_BOOL", false))
	assert.False(t, GetEnvAsBool("CHATSYNC_MISSING", false))
}

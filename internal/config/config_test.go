package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Reads yaml and fills defaults", func(t *testing.T) {
		// Given: a config file that only sets a few keys
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nsearch:\n  depth: 4\nredis:\n  enabled: true\n  host: cache\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading it
		conf := MustLoad(path)

		// Then: file values and defaults are both present
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 4, conf.Search.Depth)
		assert.True(t, conf.Search.Pruning)
		assert.Equal(t, "O", conf.Game.ComputerMark)
		assert.Equal(t, "X", conf.Game.PlayerMark)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.Expiration)
	})

	t.Run("Panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}

func TestMustLoadEnv(t *testing.T) {
	// Given: marks swapped through the environment
	t.Setenv("COMPUTER_MARK", "X")
	t.Setenv("PLAYER_MARK", "O")

	// When: loading without a file
	conf := MustLoadEnv()

	// Then: the environment wins over defaults
	assert.Equal(t, "X", conf.Game.ComputerMark)
	assert.Equal(t, "O", conf.Game.PlayerMark)
	assert.Equal(t, "info", conf.LogLevel)
}

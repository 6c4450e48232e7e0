package meta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without environment", func(t *testing.T) {
		cfg, err := LoadConfig()

		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), cfg, "Env defaults should match DefaultConfig")
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("REVERSI_GAMES", "12")
		t.Setenv("REVERSI_BOMBS", "0")
		t.Setenv("REVERSI_MCTS_DURATION", "1s")
		t.Setenv("REVERSI_SECOND", "mcts")

		cfg, err := LoadConfig()

		require.NoError(t, err)
		require.Equal(t, 12, cfg.Games)
		require.Equal(t, 0, cfg.Bombs)
		require.Equal(t, time.Second, cfg.Duration)
		require.Equal(t, "mcts", cfg.Second)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		t.Setenv("REVERSI_GAMES", "0")

		cfg, err := LoadConfig()

		require.Error(t, err)
		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("negative search duration", func(t *testing.T) {
		t.Setenv("REVERSI_MCTS_DURATION", "-1s")

		_, err := LoadConfig()

		require.ErrorContains(t, err, "duration")
	})

	t.Run("unparsable values", func(t *testing.T) {
		t.Setenv("REVERSI_BOMBS", "many")

		_, err := LoadConfig()

		require.Error(t, err)
	})
}

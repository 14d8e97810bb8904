package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitLevels(t *testing.T) {
	t.Run("development surfaces debug logs", func(t *testing.T) {
		Init("test", true)
		assert.Equal(t, zerolog.DebugLevel, Log.GetLevel())
	})

	t.Run("production stays at info", func(t *testing.T) {
		Init("test", false)
		assert.Equal(t, zerolog.InfoLevel, Log.GetLevel())
	})
}

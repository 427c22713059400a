package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-mazestats/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("writes name, level and message", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("ANALYZER", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("started")
		l.Warning("slow")
		l.Error("failed")

		out := buf.String()
		assert.Contains(t, out, config.ColorCyan+"[ANALYZER]"+config.ColorReset)
		assert.Contains(t, out, "[INFO]"+config.LogColorReset+" started")
		assert.Contains(t, out, "[WARNING]"+config.LogColorReset+" slow")
		assert.Contains(t, out, "[ERROR]"+config.LogColorReset+" failed")
	})

	t.Run("rejects missing arguments", func(t *testing.T) {
		_, err := New("", config.ColorCyan, &bytes.Buffer{})
		assert.Error(t, err)
		_, err = New("APP", config.ColorCyan, nil)
		assert.Error(t, err)
	})
}

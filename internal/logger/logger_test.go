package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Modes(t *testing.T) {
	dev, err := New(Options{})
	require.NoError(t, err)
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))

	prod, err := New(Options{Mode: "production"})
	require.NoError(t, err)
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))
	assert.True(t, prod.Core().Enabled(zap.InfoLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "toko.log")

	l, err := New(Options{Mode: "production", Filename: path})
	require.NoError(t, err)
	l.Info("product created", zap.String("sku", "ELE-LAPT-234567"))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"product created"`)
	assert.Contains(t, string(data), `"sku":"ELE-LAPT-234567"`)
}

func TestInit_ReplacesAndRestoresGlobal(t *testing.T) {
	before := zap.L()

	flush, err := Init(Options{Mode: "production"})
	require.NoError(t, err)
	assert.NotSame(t, before, zap.L())

	flush()
	assert.Same(t, before, zap.L())
}

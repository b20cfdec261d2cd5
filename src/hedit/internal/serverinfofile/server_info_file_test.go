package serverinfofile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func newProvider(t *testing.T, infofile string) config.Provider {
	t.Helper()
	data := map[string]interface{}{}
	if infofile != "" {
		data[_configKeyInfoFile] = infofile
	}
	cfg, err := config.NewStaticProvider(data)
	require.NoError(t, err)
	return cfg
}

func TestNew(t *testing.T) {
	lifecycle := fxtest.NewLifecycle(t)

	t.Run("all required params are present", func(t *testing.T) {
		_, err := New(Params{
			Lifecycle: lifecycle,
			Config:    newProvider(t, filepath.Join(t.TempDir(), "info.json")),
			Logger:    zap.NewNop().Sugar(),
		})
		assert.NoError(t, err)
	})

	t.Run("missing config key", func(t *testing.T) {
		_, err := New(Params{
			Lifecycle: lifecycle,
			Config:    newProvider(t, ""),
			Logger:    zap.NewNop().Sugar(),
		})
		assert.Error(t, err)
	})
}

func TestUpdateField(t *testing.T) {
	infofile := filepath.Join(t.TempDir(), "info.json")
	s, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    newProvider(t, infofile),
		Logger:    zap.NewNop().Sugar(),
	})
	require.NoError(t, err)

	require.NoError(t, s.UpdateField("jsonrpc-address", "127.0.0.1:27995"))
	require.NoError(t, s.UpdateField("pid", "12345"))

	raw, err := os.ReadFile(infofile)
	require.NoError(t, err)

	var contents map[string]string
	require.NoError(t, json.Unmarshal(raw, &contents))
	assert.Equal(t, "127.0.0.1:27995", contents["jsonrpc-address"])
	assert.Equal(t, "12345", contents["pid"])
}

func TestOnStop(t *testing.T) {
	infofile := filepath.Join(t.TempDir(), "info.json")
	s, err := New(Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    newProvider(t, infofile),
		Logger:    zap.NewNop().Sugar(),
	})
	require.NoError(t, err)
	require.NoError(t, s.UpdateField("pid", "1"))

	m := s.(*module)
	require.NoError(t, m.OnStop(context.Background()))

	_, statErr := os.Stat(infofile)
	assert.True(t, os.IsNotExist(statErr))
}

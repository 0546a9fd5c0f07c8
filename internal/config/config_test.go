package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, "float32", FloatX())
	assert.Equal(t, 1e-7, Epsilon())
	assert.Equal(t, "cpu", Backend())
}

func TestSetFloatX(t *testing.T) {
	defer func() { require.NoError(t, SetFloatX(DefaultFloatX)) }()

	for _, value := range []string{"bfloat16", "float16", "float32", "float64"} {
		require.NoError(t, SetFloatX(value))
		assert.Equal(t, value, FloatX())
	}

	err := SetFloatX("int32")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "int32")
	assert.Equal(t, "float64", FloatX(), "failed set must not change the value")
}

func TestSetEpsilonAndBackend(t *testing.T) {
	defer func() {
		SetEpsilon(DefaultEpsilon)
		SetBackend(DefaultBackend)
	}()

	SetEpsilon(1e-5)
	assert.Equal(t, 1e-5, Epsilon())

	SetBackend("webgpu")
	assert.Equal(t, "webgpu", Backend())
}

func TestSettingsRoundtrip(t *testing.T) {
	defer func() {
		require.NoError(t, SetFloatX(DefaultFloatX))
		SetEpsilon(DefaultEpsilon)
		SetBackend(DefaultBackend)
	}()

	require.NoError(t, SetFloatX("bfloat16"))
	SetEpsilon(1e-6)
	SetBackend("webgpu")

	path := filepath.Join(t.TempDir(), "loom.json")
	require.NoError(t, SaveFile(path))

	require.NoError(t, SetFloatX(DefaultFloatX))
	SetEpsilon(DefaultEpsilon)
	SetBackend(DefaultBackend)

	require.NoError(t, LoadFile(path))
	assert.Equal(t, Settings{FloatX: "bfloat16", Epsilon: 1e-6, Backend: "webgpu"}, Snapshot())
}

func TestLoadFilePartialSettings(t *testing.T) {
	defer func() { require.NoError(t, SetFloatX(DefaultFloatX)) }()

	path := filepath.Join(t.TempDir(), "loom.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"floatx": "float64"}`), 0o644))

	require.NoError(t, LoadFile(path))
	assert.Equal(t, "float64", FloatX())
	assert.Equal(t, DefaultEpsilon, Epsilon(), "missing fields keep their current values")
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loom.json")

	require.Error(t, LoadFile(path), "missing file")

	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	require.Error(t, LoadFile(path))

	require.NoError(t, os.WriteFile(path, []byte(`{"floatx": "int32"}`), 0o644))
	require.Error(t, LoadFile(path))
	assert.Equal(t, DefaultFloatX, FloatX())
}

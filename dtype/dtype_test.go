package dtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loom-ml/loom/dtype"
)

func TestResultTypePublicSurface(t *testing.T) {
	out, err := dtype.ResultType(dtype.Int32, "float32")
	require.NoError(t, err)
	assert.Equal(t, "float32", out)

	out, err = dtype.ResultType("bfloat16", dtype.WeakInt)
	require.NoError(t, err)
	assert.Equal(t, "bfloat16", out)

	out, err = dtype.ResultType()
	require.NoError(t, err)
	assert.Equal(t, dtype.FloatX(), out)
}

func TestSetFloatXChangesResultType(t *testing.T) {
	defer func() { require.NoError(t, dtype.SetFloatX("float32")) }()

	require.NoError(t, dtype.SetFloatX("float64"))
	out, err := dtype.ResultType(dtype.WeakFloat, dtype.WeakFloat)
	require.NoError(t, err)
	assert.Equal(t, "float64", out)
}

func TestParseDataTypePublic(t *testing.T) {
	dt, err := dtype.ParseDataType("complex128")
	require.NoError(t, err)
	assert.Equal(t, dtype.Complex128, dt)
	assert.Equal(t, 16, dt.Size())
}

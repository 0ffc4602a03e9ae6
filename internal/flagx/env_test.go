package flagx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvString(t *testing.T) {
	dst := "default"
	EnvString("ASSETKEEPER_TEST_STR", &dst)
	assert.Equal(t, "default", dst)

	t.Setenv("ASSETKEEPER_TEST_STR", "override")
	EnvString("ASSETKEEPER_TEST_STR", &dst)
	assert.Equal(t, "override", dst)
}

func TestEnvTyped(t *testing.T) {
	t.Setenv("ASSETKEEPER_TEST_INT", "12")
	t.Setenv("ASSETKEEPER_TEST_INT64", "52428800")
	t.Setenv("ASSETKEEPER_TEST_FLOAT", "1.75")
	t.Setenv("ASSETKEEPER_TEST_BOOL", "true")
	t.Setenv("ASSETKEEPER_TEST_DUR", "90s")

	var (
		i   int
		i64 int64
		f   float64
		b   bool
		d   time.Duration
	)
	require.NoError(t, EnvInt("ASSETKEEPER_TEST_INT", &i))
	require.NoError(t, EnvInt64("ASSETKEEPER_TEST_INT64", &i64))
	require.NoError(t, EnvFloat("ASSETKEEPER_TEST_FLOAT", &f))
	require.NoError(t, EnvBool("ASSETKEEPER_TEST_BOOL", &b))
	require.NoError(t, EnvDuration("ASSETKEEPER_TEST_DUR", &d))

	assert.Equal(t, 12, i)
	assert.Equal(t, int64(52428800), i64)
	assert.InDelta(t, 1.75, f, 1e-9)
	assert.True(t, b)
	assert.Equal(t, 90*time.Second, d)
}

func TestEnvTyped_MalformedKeepsValue(t *testing.T) {
	t.Setenv("ASSETKEEPER_TEST_INT", "twelve")
	t.Setenv("ASSETKEEPER_TEST_DUR", "later")

	i := 8
	d := time.Minute
	err := EnvInt("ASSETKEEPER_TEST_INT", &i)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ASSETKEEPER_TEST_INT")
	assert.Equal(t, 8, i)

	require.Error(t, EnvDuration("ASSETKEEPER_TEST_DUR", &d))
	assert.Equal(t, time.Minute, d)
}

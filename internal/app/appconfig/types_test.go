package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside.dev/backend/internal/app/appcontext"
)

func TestSeasonRangeDecode(t *testing.T) {
	var r SeasonRange
	require.NoError(t, r.Decode("2000-2024"))
	assert.Equal(t, SeasonRange{Min: 2000, Max: 2024}, r)
	assert.True(t, r.Contains(2000))
	assert.True(t, r.Contains(2024))
	assert.False(t, r.Contains(1999))
	assert.False(t, r.Contains(2025))

	require.NoError(t, r.Decode(" 2010 - 2012 "))
	assert.Equal(t, SeasonRange{Min: 2010, Max: 2012}, r)

	assert.Error(t, r.Decode("2024"))
	assert.Error(t, r.Decode("abc-2024"))
	assert.Error(t, r.Decode("2024-2000"))
}

func TestParseDefaults(t *testing.T) {
	t.Setenv("COURTSIDE_DATASET_SOURCE", "testdata/players.csv")

	conf, err := Parse(appcontext.Declare(appcontext.EnvServer))
	require.NoError(t, err)
	assert.Equal(t, "testdata/players.csv", conf.DatasetSource)
	assert.Equal(t, SeasonRange{Min: 2000, Max: 2024}, conf.SeasonRange)
	assert.Equal(t, []string{"otlp"}, conf.TracingExporters)
	assert.Empty(t, conf.RedisURL)
}

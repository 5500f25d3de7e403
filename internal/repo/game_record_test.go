package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/app/appcontext"
	"courtside.dev/backend/internal/model"
)

func TestNewGameRecordLoadsLocalFile(t *testing.T) {
	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			DatasetSource: "../dataset/testdata/players.csv",
		},
		AppContext: appcontext.Declare(appcontext.EnvServer),
	}

	r, err := NewGameRecord(conf, nil)
	require.NoError(t, err)
	assert.Len(t, r.Records(), 38)
	assert.False(t, r.LoadedAt().IsZero())
	assert.Equal(t, []int{2021, 2022}, r.Seasons(appconfig.SeasonRange{Min: 2000, Max: 2024}))
}

func TestNewGameRecordFailsOnMissingFile(t *testing.T) {
	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			DatasetSource: "../dataset/testdata/missing.csv",
		},
	}

	_, err := NewGameRecord(conf, nil)
	assert.Error(t, err)
}

func TestSeasonsRespectRange(t *testing.T) {
	records := []*model.GameRecord{
		{Player: "A", Season: 2023},
		{Player: "B", Season: 1998},
		{Player: "C", Season: 2010},
		{Player: "D", Season: 2023},
		{Player: "E", Season: 2025},
	}
	r := NewGameRecordFrom(records, time.Now())

	assert.Equal(t, []int{2010, 2023}, r.Seasons(appconfig.SeasonRange{Min: 2000, Max: 2024}))
	assert.Equal(t, []int{}, r.Seasons(appconfig.SeasonRange{Min: 2030, Max: 2040}))
}

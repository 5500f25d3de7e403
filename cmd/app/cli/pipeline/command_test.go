package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"courtside.dev/backend/internal/model"
)

func TestWriteTable(t *testing.T) {
	d := &model.Dashboard{
		Season: 2022,
		Metric: "win_rate",
		TopScorers: []*model.TopScorer{
			{Rank: 1, Player: "Avery Cole", PPG: 30, Games: 3},
			{Rank: 2, Player: "Blake Dawson", PPG: 28, Games: 3},
		},
		Scatter: []*model.ScatterPoint{
			{Player: "Avery Cole", PPG: null.FloatFrom(30), Value: 1.0 / 3},
			{Player: "Blake Dawson", Value: 0.5},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, d))

	out := buf.String()
	assert.Contains(t, out, "season 2022")
	assert.Contains(t, out, "Avery Cole")
	assert.Contains(t, out, "30.00")
	assert.Contains(t, out, "0.333")
	assert.Regexp(t, `Blake Dawson\s+-\s+0\.500`, out)
}

func TestWriteTableEmptySelection(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, &model.Dashboard{Season: 2022, Metric: "plus_minus"}))
	assert.Contains(t, buf.String(), "(no players selected)")
}

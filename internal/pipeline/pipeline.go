// Package pipeline turns per-game player records into the chart-ready tables of a season
// dashboard. Every function is pure and never mutates its input.
package pipeline

import (
	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
)

const (
	StageSeason     = "season"
	StageTopScorers = "top_scorers"
	StageSummary    = "summary"
	StageBox        = "box"
	StageScatter    = "scatter"
	StageTrend      = "trend"
)

// Stage runs fn as the named pipeline stage. It lets callers wrap stages with tracing or timing.
type Stage func(name string, fn func())

func direct(_ string, fn func()) {
	fn()
}

// Build runs the whole pipeline for q over records. stage may be nil.
func Build(records []*model.GameRecord, q model.DashboardQuery, stage Stage) *model.Dashboard {
	if stage == nil {
		stage = direct
	}

	d := &model.Dashboard{
		Season: q.Season,
		Metric: q.Metric,
	}

	var slice []*model.GameRecord
	stage(StageSeason, func() {
		slice = FilterSeason(records, q.Season)
	})
	stage(StageTopScorers, func() {
		d.TopScorers = TopScorers(slice, constant.TopScorerLimit)
		d.Players = SelectPlayers(d.TopScorers, q.Players)
	})
	stage(StageSummary, func() {
		d.Summary = Summarize(slice, q.Metric, d.Players)
	})
	stage(StageBox, func() {
		d.Box = Box(d.Summary)
	})
	stage(StageScatter, func() {
		d.Scatter = JoinScatter(d.Summary, slice)
	})
	stage(StageTrend, func() {
		d.Trend = Trend(slice, q.Metric, d.Players)
	})

	return d
}

package model

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

type TopScorer struct {
	Rank   int     `json:"rank" msgpack:"rank"`
	Player string  `json:"player" msgpack:"player"`
	PPG    float64 `json:"ppg" msgpack:"ppg"`
	Games  int     `json:"games" msgpack:"games"`
}

// MetricRow is a single row of a metric summary. In win_rate mode there is one row per player
// and Games counts the games that contributed to Value; in plus_minus mode there is one row per
// game and Date carries the game date.
type MetricRow struct {
	Player string    `json:"player" msgpack:"player"`
	Value  float64   `json:"value" msgpack:"value"`
	Games  int       `json:"games,omitempty" msgpack:"games"`
	Date   null.Time `json:"date" msgpack:"date"`
}

type MetricSummary struct {
	Metric string       `json:"metric" msgpack:"metric"`
	Rows   []*MetricRow `json:"rows" msgpack:"rows"`
}

type ScatterPoint struct {
	Player string     `json:"player" msgpack:"player"`
	PPG    null.Float `json:"ppg" msgpack:"ppg"`
	Value  float64    `json:"value" msgpack:"value"`
	Date   null.Time  `json:"date" msgpack:"date"`
}

type TrendPoint struct {
	Date    time.Time  `json:"date" msgpack:"date"`
	WinRate null.Float `json:"winRate" msgpack:"winRate"`
}

type TrendSeries struct {
	Player string        `json:"player" msgpack:"player"`
	Points []*TrendPoint `json:"points" msgpack:"points"`
}

// BoxStats is the five-number summary of one player's plus/minus values.
type BoxStats struct {
	Player string  `json:"player" msgpack:"player"`
	Count  int     `json:"count" msgpack:"count"`
	Min    float64 `json:"min" msgpack:"min"`
	Q1     float64 `json:"q1" msgpack:"q1"`
	Median float64 `json:"median" msgpack:"median"`
	Q3     float64 `json:"q3" msgpack:"q3"`
	Max    float64 `json:"max" msgpack:"max"`
}

// Dashboard bundles every chart-ready table computed for one (season, metric, players) query.
type Dashboard struct {
	Season     int             `json:"season" msgpack:"season"`
	Metric     string          `json:"metric" msgpack:"metric"`
	TopScorers []*TopScorer    `json:"topScorers" msgpack:"topScorers"`
	Players    []string        `json:"players" msgpack:"players"`
	Summary    *MetricSummary  `json:"summary" msgpack:"summary"`
	Box        []*BoxStats     `json:"box" msgpack:"box"`
	Scatter    []*ScatterPoint `json:"scatter" msgpack:"scatter"`
	Trend      []*TrendSeries  `json:"trend" msgpack:"trend"`
}

package service

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"go.opentelemetry.io/otel"

	"courtside.dev/backend/internal/app/appconfig"
	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/dataset"
	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/pipeline"
	"courtside.dev/backend/internal/pkg/cserr"
	"courtside.dev/backend/internal/render"
	"courtside.dev/backend/internal/repo"
)

type services struct {
	season    *Season
	dashboard *Dashboard
	selection *Selection
	chart     *Chart
	health    *Health
}

func newServices(t *testing.T) services {
	t.Helper()

	records, err := dataset.Load(context.Background(), "../dataset/testdata/players.csv", nil)
	require.NoError(t, err)

	conf := &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			SeasonRange:       appconfig.SeasonRange{Min: 2000, Max: 2024},
			DashboardCacheTTL: time.Minute,
		},
	}
	gameRecordRepo := repo.NewGameRecordFrom(records, time.Now())
	seasonService := NewSeason(conf, gameRecordRepo)
	dashboardService := NewDashboard(conf, gameRecordRepo, seasonService, otel.Tracer("test"), nil)

	return services{
		season:    seasonService,
		dashboard: dashboardService,
		selection: NewSelection(dashboardService),
		chart:     NewChart(dashboardService),
		health:    NewHealth(gameRecordRepo, nil),
	}
}

func TestSeasonList(t *testing.T) {
	s := newServices(t)

	assert.Equal(t, []int{2021, 2022}, s.season.List())
	assert.NoError(t, s.season.Validate(2023))

	var e *cserr.CourtsideError
	require.ErrorAs(t, s.season.Validate(1999), &e)
	assert.Equal(t, cserr.CodeInvalidRequest, e.ErrorCode)
	assert.ErrorAs(t, s.season.Validate(2025), &e)
}

func TestDashboardDefaultSelection(t *testing.T) {
	s := newServices(t)

	d, err := s.dashboard.Get(context.Background(), model.DashboardQuery{Season: 2022, Metric: constant.MetricWinRate})
	require.NoError(t, err)

	require.Len(t, d.TopScorers, 10)
	assert.Equal(t, "Avery Cole", d.TopScorers[0].Player)
	assert.InDelta(t, 30, d.TopScorers[0].PPG, 1e-9)
	assert.Equal(t, "Jalen Lowe", d.TopScorers[9].Player)
	assert.InDelta(t, 12, d.TopScorers[9].PPG, 1e-9)
	assert.NotContains(t, d.Players, "Kai Monroe")
	assert.NotContains(t, d.Players, "Logan Nash")
	assert.Len(t, d.Players, 10)

	require.Len(t, d.Summary.Rows, 10)
	assert.Equal(t, "Blake Dawson", d.Summary.Rows[1].Player)
	assert.InDelta(t, 0.5, d.Summary.Rows[1].Value, 1e-9)
	assert.Equal(t, 2, d.Summary.Rows[1].Games)

	assert.Len(t, d.Scatter, 10)
	assert.Len(t, d.Trend, 10)
}

func TestDashboardSelectionIsIntersectedAndOrdered(t *testing.T) {
	s := newServices(t)

	d, err := s.dashboard.Get(context.Background(), model.DashboardQuery{
		Season:  2022,
		Metric:  constant.MetricPlusMinus,
		Players: []string{"Carter Ellis", "Logan Nash", "Avery Cole", "Carter Ellis"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Avery Cole", "Carter Ellis"}, d.Players)
	// Carter Ellis has one game without a plus/minus value
	assert.Len(t, d.Summary.Rows, 5)
	assert.Empty(t, d.Trend)
	require.Len(t, d.Box, 2)
	assert.InDelta(t, 1, d.Box[0].Median, 1e-9)
}

func TestDashboardEmptySelection(t *testing.T) {
	s := newServices(t)

	d, err := s.dashboard.Get(context.Background(), model.DashboardQuery{Season: 2022, Metric: constant.MetricWinRate, Players: []string{}})
	require.NoError(t, err)

	assert.Len(t, d.TopScorers, 10)
	assert.Empty(t, d.Players)
	assert.Empty(t, d.Summary.Rows)
	assert.Empty(t, d.Scatter)
	assert.Empty(t, d.Trend)
}

func TestDashboardSeasonWithoutGames(t *testing.T) {
	s := newServices(t)

	d, err := s.dashboard.Get(context.Background(), model.DashboardQuery{Season: 2015, Metric: constant.MetricWinRate})
	require.NoError(t, err)
	assert.Empty(t, d.TopScorers)
	assert.Empty(t, d.Summary.Rows)
}

func TestDashboardRejectsInvalidQueries(t *testing.T) {
	s := newServices(t)

	_, err := s.dashboard.Get(context.Background(), model.DashboardQuery{Season: 2022, Metric: "assists"})
	var e *cserr.CourtsideError
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 400, e.StatusCode)

	_, err = s.dashboard.Get(context.Background(), model.DashboardQuery{Season: 1980, Metric: constant.MetricWinRate})
	assert.ErrorAs(t, err, &e)
}

func TestDashboardMemoizationIsTransparent(t *testing.T) {
	s := newServices(t)
	q := model.DashboardQuery{Season: 2022, Metric: constant.MetricWinRate}

	var wg sync.WaitGroup
	results := make([]*model.Dashboard, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d, err := s.dashboard.Get(context.Background(), q)
			assert.NoError(t, err)
			results[i] = d
		}(i)
	}
	wg.Wait()

	fresh := s.dashboard.Build(context.Background(), q)
	for _, d := range results {
		assert.Equal(t, fresh, d)
	}
	assert.Equal(t, 1, s.dashboard.local.Len())

	require.NoError(t, s.dashboard.Purge(context.Background()))
	assert.Equal(t, 0, s.dashboard.local.Len())
}

func TestCacheKeyDistinguishesSelections(t *testing.T) {
	base := model.DashboardQuery{Season: 2022, Metric: constant.MetricWinRate}
	empty := base
	empty.Players = []string{}
	some := base
	some.Players = []string{"Avery Cole"}

	assert.NotEqual(t, cacheKey(base), cacheKey(empty))
	assert.NotEqual(t, cacheKey(base), cacheKey(some))
	assert.Equal(t, cacheKey(some), cacheKey(model.DashboardQuery{Season: 2022, Metric: constant.MetricWinRate, Players: []string{"Avery Cole"}}))
}

func TestSelection(t *testing.T) {
	s := newServices(t)
	q := model.DashboardQuery{Season: 2022, Metric: constant.MetricWinRate}

	points, err := s.selection.Brush(context.Background(), q, model.Rect{XMin: 27, XMax: 31, YMin: 0, YMax: 1})
	require.NoError(t, err)
	assert.Len(t, points, 2)

	p, err := s.selection.Nearest(context.Background(), q, model.NearQuery{X: 28.1, Y: 0.5, Threshold: 1})
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Blake Dawson", p.Player)

	p, err = s.selection.Nearest(context.Background(), q, model.NearQuery{X: 100, Y: 100, Threshold: 1})
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestChartRender(t *testing.T) {
	s := newServices(t)
	q := model.DashboardQuery{Season: 2022, Metric: constant.MetricWinRate}

	for _, chart := range constant.Charts {
		var buf bytes.Buffer
		require.NoError(t, s.chart.Render(context.Background(), q, chart, render.Options{}, &buf), chart)
		assert.Contains(t, buf.String(), "<svg", chart)
	}

	var buf bytes.Buffer
	err := s.chart.Render(context.Background(), q, "pie", render.Options{}, &buf)
	var e *cserr.CourtsideError
	require.ErrorAs(t, err, &e)
	assert.Equal(t, 404, e.StatusCode)
}

func TestHealth(t *testing.T) {
	s := newServices(t)
	assert.NoError(t, s.health.Ping(context.Background()))

	assert.Error(t, NewHealth(nil, nil).Ping(context.Background()))
}

func TestSharedCacheEncodingPreservesDashboard(t *testing.T) {
	records, err := dataset.Read(strings.NewReader(
		"firstName,lastName,gameDate,gameType,points,win,plusMinusPoints\n" +
			"Jane,Doe,2021-02-01T10:00:00-05:00,Regular Season,20,1,4\n" +
			"Jane,Doe,2021-02-03T21:15:00+02:00,Regular Season,24,0,-2\n" +
			"Ravi,Shah,2021-02-02T18:00:00Z,Regular Season,18,1,\n" +
			"Ravi,Shah,2021-02-04 19:00:00,Regular Season,,1,6\n"))
	require.NoError(t, err)
	gameRecordRepo := repo.NewGameRecordFrom(records, time.Now())

	for _, metric := range constant.Metrics {
		t.Run(metric, func(t *testing.T) {
			fresh := pipeline.Build(gameRecordRepo.Records(), model.DashboardQuery{Season: 2020, Metric: metric}, nil)
			require.NotEmpty(t, fresh.Summary.Rows)

			// the shared cache stores dashboards as msgpack
			b, err := msgpack.Marshal(fresh)
			require.NoError(t, err)
			var cached model.Dashboard
			require.NoError(t, msgpack.Unmarshal(b, &cached))

			want, err := json.Marshal(fresh)
			require.NoError(t, err)
			got, err := json.Marshal(&cached)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

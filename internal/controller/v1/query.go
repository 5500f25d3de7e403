package v1

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"

	"courtside.dev/backend/internal/constant"
	"courtside.dev/backend/internal/model"
	"courtside.dev/backend/internal/pkg/cserr"
	"courtside.dev/backend/internal/util/rekuest"
)

// players reads the comma separated player selection. An absent parameter yields nil, the
// default selection; a present but empty one yields an empty, non-nil selection.
func players(ctx *fiber.Ctx) []string {
	args := ctx.Context().QueryArgs()
	if !args.Has(constant.QueryKeyPlayers) {
		return nil
	}
	return lo.Compact(lo.Map(
		strings.Split(string(args.Peek(constant.QueryKeyPlayers)), constant.PlayersSeparator),
		func(p string, _ int) string { return strings.TrimSpace(p) },
	))
}

func dashboardQuery(ctx *fiber.Ctx) (model.DashboardQuery, error) {
	season, err := ctx.ParamsInt("season")
	if err != nil {
		return model.DashboardQuery{}, cserr.ErrInvalidReq.Msg("season must be the year the season started in, e.g. 2022")
	}

	q := model.DashboardQuery{
		Season:  season,
		Metric:  ctx.Query(constant.QueryKeyMetric, constant.MetricWinRate),
		Players: players(ctx),
	}
	if err := rekuest.ValidStruct(&q); err != nil {
		return q, err
	}
	return q, nil
}

// requireQuery fails unless every key is present in the query string.
func requireQuery(ctx *fiber.Ctx, keys ...string) error {
	args := ctx.Context().QueryArgs()
	missing := lo.Filter(keys, func(k string, _ int) bool { return !args.Has(k) })
	if len(missing) > 0 {
		return cserr.ErrInvalidReq.Msg("missing required query parameters: %s", strings.Join(missing, ", "))
	}
	return nil
}

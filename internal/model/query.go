package model

import (
	"strconv"
	"strings"
)

// DashboardQuery selects a dashboard. A nil Players means the default selection, which is the
// whole top scorer set; a non-nil empty Players is an explicit empty selection.
type DashboardQuery struct {
	Season  int      `json:"season" validate:"required"`
	Metric  string   `json:"metric" validate:"required,oneof=win_rate plus_minus"`
	Players []string `json:"players"`
}

func (q DashboardQuery) String() string {
	var sb strings.Builder
	sb.WriteString("season:")
	sb.WriteString(strconv.Itoa(q.Season))
	sb.WriteString("|metric:")
	sb.WriteString(q.Metric)
	sb.WriteString("|players:")
	if q.Players == nil {
		sb.WriteString("*")
	} else {
		sb.WriteString(strings.Join(q.Players, ","))
	}
	return sb.String()
}

// Rect is an inclusive brush region on the (PPG, metric value) plane.
type Rect struct {
	XMin float64 `json:"xmin" query:"xmin"`
	XMax float64 `json:"xmax" query:"xmax"`
	YMin float64 `json:"ymin" query:"ymin"`
	YMax float64 `json:"ymax" query:"ymax"`
}

type NearQuery struct {
	X         float64 `json:"x" query:"x"`
	Y         float64 `json:"y" query:"y"`
	Threshold float64 `json:"threshold" query:"threshold" validate:"gte=0"`
}

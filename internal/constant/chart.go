package constant

const (
	ChartSummary = "summary"
	ChartScatter = "scatter"
	ChartTrend   = "trend"
)

var Charts = []string{ChartSummary, ChartScatter, ChartTrend}

const (
	ChartDefaultWidth  = 960
	ChartDefaultHeight = 480
)

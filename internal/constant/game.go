package constant

const (
	// GameTypeRegularSeason is the only game type the season pipeline considers.
	GameTypeRegularSeason = "Regular Season"

	// SeasonStartMonth is the first month of a season. Games before it belong to the previous season.
	SeasonStartMonth = 10

	// TopScorerLimit is the size of the top scorer set.
	TopScorerLimit = 10
)

const (
	MetricWinRate   = "win_rate"
	MetricPlusMinus = "plus_minus"
)

// Metrics lists every metric a dashboard can be computed for.
var Metrics = []string{MetricWinRate, MetricPlusMinus}

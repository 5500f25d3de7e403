package constant

const (
	QueryKeyMetric  = "metric"
	QueryKeyPlayers = "players"

	PlayersSeparator = ","
)

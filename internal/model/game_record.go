package model

import (
	"time"

	"gopkg.in/guregu/null.v3"
)

// GameRecord is one player's performance in one game. Records are never mutated after load.
type GameRecord struct {
	Player    string     `json:"player" msgpack:"player"`
	PersonID  string     `json:"personId,omitempty" msgpack:"personId"`
	Team      string     `json:"team,omitempty" msgpack:"team"`
	Opponent  string     `json:"opponent,omitempty" msgpack:"opponent"`
	Home      null.Bool  `json:"home" msgpack:"home"`
	GameDate  time.Time  `json:"gameDate" msgpack:"gameDate"`
	Season    int        `json:"season" msgpack:"season"`
	GameType  string     `json:"gameType" msgpack:"gameType"`
	Points    null.Float `json:"points" msgpack:"points"`
	Win       null.Float `json:"win" msgpack:"win"`
	PlusMinus null.Float `json:"plusMinus" msgpack:"plusMinus"`
}

// Package dataset loads the per-game player statistics table and normalizes it into game
// records.
package dataset

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/guregu/null.v3"

	"courtside.dev/backend/internal/model"
)

// Read parses a CSV table with a header row. The first malformed row aborts the load with a
// *ParseError; a header lacking a required column fails with a *MissingColumnError.
func Read(r io.Reader) ([]*model.GameRecord, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	names, err := reader.Read()
	if err == io.EOF {
		return nil, &MissingColumnError{Columns: requiredColumns}
	} else if err != nil {
		return nil, errors.Wrap(err, "dataset: failed to read header")
	}
	h, err := newHeader(names)
	if err != nil {
		return nil, err
	}

	records := []*model.GameRecord{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "dataset: failed to read row")
		}

		line, _ := reader.FieldPos(0)
		record, err := normalize(h, row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	log.Debug().
		Str("evt.name", "dataset.read").
		Int("records", len(records)).
		Msg("dataset parsed")

	return records, nil
}

func normalize(h header, row []string, line int) (*model.GameRecord, error) {
	cellErr := func(column string, err error) error {
		return &ParseError{
			Line:   line,
			Column: column,
			Value:  h.get(row, column),
			Err:    err,
		}
	}

	gameDate, err := parseTime(h.get(row, ColumnGameDate))
	if err != nil {
		return nil, cellErr(ColumnGameDate, err)
	}
	points, err := parseFloat(h.get(row, ColumnPoints))
	if err != nil {
		return nil, cellErr(ColumnPoints, err)
	}
	win, err := parseFlag(h.get(row, ColumnWin))
	if err != nil {
		return nil, cellErr(ColumnWin, err)
	}
	plusMinus, err := parseFloat(h.get(row, ColumnPlusMinus))
	if err != nil {
		return nil, cellErr(ColumnPlusMinus, err)
	}

	var home null.Bool
	if v, err := parseFlag(h.get(row, ColumnHome)); err == nil && v.Valid {
		home = null.BoolFrom(v.Float64 == 1)
	}

	return &model.GameRecord{
		Player:    strings.TrimSpace(h.get(row, ColumnFirstName)) + " " + strings.TrimSpace(h.get(row, ColumnLastName)),
		PersonID:  strings.TrimSpace(h.get(row, ColumnPersonID)),
		Team:      strings.TrimSpace(h.get(row, ColumnTeam)),
		Opponent:  strings.TrimSpace(h.get(row, ColumnOpponent)),
		Home:      home,
		GameDate:  gameDate.UTC(),
		Season:    SeasonOf(gameDate),
		GameType:  strings.TrimSpace(h.get(row, ColumnGameType)),
		Points:    points,
		Win:       win,
		PlusMinus: plusMinus,
	}, nil
}

package dataset

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/guregu/null.v3"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

var ErrNotFinite = errors.New("value is not a finite number")

var ErrUnknownTimeLayout = errors.New("no known timestamp layout matches")

// parseTime keeps the zone written in the cell so the season can be derived from the local
// calendar date; callers store the UTC instant.
func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnknownTimeLayout
}

func isMissing(s string) bool {
	switch s {
	case "", "NA", "NaN", "nan", "null", "NULL":
		return true
	}
	return false
}

func parseFloat(s string) (null.Float, error) {
	s = strings.TrimSpace(s)
	if isMissing(s) {
		return null.Float{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return null.Float{}, err
	}
	if math.IsInf(f, 0) {
		return null.Float{}, ErrNotFinite
	}
	return null.FloatFrom(f), nil
}

var ErrInvalidFlag = errors.New("expected one of 0, 1, true, false")

// parseFlag accepts numeric 0/1 flags, which some exports write as 1.0, and boolean words.
func parseFlag(s string) (null.Float, error) {
	s = strings.TrimSpace(s)
	if isMissing(s) {
		return null.Float{}, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return null.FloatFrom(1), nil
		}
		return null.FloatFrom(0), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || (f != 0 && f != 1) {
		return null.Float{}, ErrInvalidFlag
	}
	return null.FloatFrom(f), nil
}

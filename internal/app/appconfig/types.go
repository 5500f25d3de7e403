package appconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// SeasonRange is an inclusive range of season start years, decoded from "MIN-MAX".
type SeasonRange struct {
	Min int
	Max int
}

func (r *SeasonRange) Decode(value string) error {
	lo, hi, ok := strings.Cut(strings.TrimSpace(value), "-")
	if !ok {
		return fmt.Errorf("invalid season range: expect MIN-MAX, but got: %s", value)
	}
	lower, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return fmt.Errorf("invalid season range lower bound %q: %w", lo, err)
	}
	upper, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return fmt.Errorf("invalid season range upper bound %q: %w", hi, err)
	}
	if lower > upper {
		return fmt.Errorf("invalid season range: %d is after %d", lower, upper)
	}
	*r = SeasonRange{Min: lower, Max: upper}
	return nil
}

func (r SeasonRange) Contains(season int) bool {
	return season >= r.Min && season <= r.Max
}

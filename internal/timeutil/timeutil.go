package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// SeasonStartYear extracts the starting year from a season label like "2014-2015".
func SeasonStartYear(season string) (int, error) {
	head, _, _ := strings.Cut(season, "-")
	year, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("timeutil: season %q has no leading year: %w", season, err)
	}
	return year, nil
}

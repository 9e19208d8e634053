package config

import (
	"strings"
	"time"

	"github.com/rohankatakam/githours/internal/errors"
)

// Date keywords accepted by --since and --until
const (
	DateAlways    = "always"
	DateToday     = "today"
	DateYesterday = "yesterday"
	DateThisWeek  = "thisweek"
	DateLastWeek  = "lastweek"
)

const dateLayout = "2006-01-02"

// ParseDate resolves a date keyword or YYYY-MM-DD date relative to now.
// "always" and the empty string return the zero time (no bound).
// Weeks start on Sunday.
func ParseDate(value string, now time.Time) (time.Time, error) {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -int(now.Weekday()))

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", DateAlways:
		return time.Time{}, nil
	case DateToday:
		return startOfDay, nil
	case DateYesterday:
		return startOfDay.AddDate(0, 0, -1), nil
	case DateThisWeek:
		return startOfWeek, nil
	case DateLastWeek:
		return startOfWeek.AddDate(0, 0, -7), nil
	}

	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), now.Location())
	if err != nil {
		return time.Time{}, errors.ValidationErrorf(
			"invalid date %q: expected always|today|yesterday|thisweek|lastweek|YYYY-MM-DD", value).
			WithContext("value", value)
	}
	return date, nil
}

package transcript

import (
	"chat-lens/errors"
	"strconv"
	"strings"
	"time"
)

const (
	layout = "2/1/2006 15:04"
	// DefaultCenturyPivot maps yy < 50 to 20yy and the rest to 19yy.
	DefaultCenturyPivot = 50
)

// Normalizer resolves the local date and time of a transcript line to an instant.
type Normalizer struct {
	pivot    int
	location *time.Location
}

// NewNormalizer builds a Normalizer. A nil location means UTC.
func NewNormalizer(pivot int, location *time.Location) Normalizer {
	if location == nil {
		location = time.UTC
	}
	return Normalizer{pivot: pivot, location: location}
}

// Normalize tries day/month/four-digit-year first, then day/month/two-digit-year
// expanded with the century pivot.
func (n Normalizer) Normalize(date, clock string) (time.Time, error) {
	if t, err := time.ParseInLocation(layout, date+" "+clock, n.location); err == nil {
		return t, nil
	}
	expanded, ok := n.expandYear(date)
	if !ok {
		return time.Time{}, &errors.DateParseError{Date: date, Time: clock}
	}
	t, err := time.ParseInLocation(layout, expanded+" "+clock, n.location)
	if err != nil {
		return time.Time{}, &errors.DateParseError{Date: date, Time: clock}
	}
	return t, nil
}

// expandYear rewrites d/m/yy into d/m/yyyy.
func (n Normalizer) expandYear(date string) (string, bool) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 || len(parts[2]) != 2 {
		return "", false
	}
	yy, err := strconv.Atoi(parts[2])
	if err != nil {
		return "", false
	}
	year := 1900 + yy
	if yy < n.pivot {
		year = 2000 + yy
	}
	return parts[0] + "/" + parts[1] + "/" + strconv.Itoa(year), true
}

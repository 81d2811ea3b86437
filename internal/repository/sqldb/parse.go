package sqldb

import (
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339Nano,
	time.DateTime,
}

var clockLayouts = []string{
	"15:04:05",
	"15:04:05.999999999",
	"15:04",
	time.RFC3339Nano,
}

// parseDate accepts ISO dates as stored by sqlite and RFC3339 timestamps as returned
// by the postgres driver. The result is midnight UTC of the calendar date.
func parseDate(s sql.NullString) (time.Time, error) {
	v := strings.TrimSpace(s.String)
	if !s.Valid || v == "" {
		return time.Time{}, fmt.Errorf("missing")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			y, m, d := t.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", v)
}

// parseClock returns the offset from midnight. Besides HH:MM[:SS] it accepts the raw
// SWITRS HHMM integer form.
func parseClock(s sql.NullString) (time.Duration, error) {
	v := strings.TrimSpace(s.String)
	if !s.Valid || v == "" {
		return 0, fmt.Errorf("missing")
	}

	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}

	if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 2359 && n%100 < 60 {
		return time.Duration(n/100)*time.Hour + time.Duration(n%100)*time.Minute, nil
	}

	return 0, fmt.Errorf("unparseable time %q", v)
}

// parseCount treats NULL as zero and rejects negative or fractional values.
func parseCount(s sql.NullString) (int, error) {
	v := strings.TrimSpace(s.String)
	if !s.Valid || v == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative count %d", n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, fmt.Errorf("non-numeric count %q", v)
	}
	return int(f), nil
}

func parseOptionalFloat(s sql.NullString) (*float64, error) {
	v := strings.TrimSpace(s.String)
	if !s.Valid || v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("non-numeric coordinate %q", v)
	}
	return &f, nil
}

// parseFlag reads the 0/1, Y/N and true/false encodings used across SWITRS exports.
// NULL is false.
func parseFlag(s sql.NullString) (bool, error) {
	if !s.Valid {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(s.String)) {
	case "1", "true", "t", "y", "yes":
		return true, nil
	case "", "0", "false", "f", "n", "no":
		return false, nil
	}
	return false, fmt.Errorf("unrecognized flag %q", s.String)
}

// countyCode derives the two-digit county code from county_city_location. Integer
// storage drops the leading zero of codes 01-09, so short numeric values are padded.
func countyCode(s sql.NullString) string {
	v := strings.TrimSpace(s.String)
	if !s.Valid || v == "" {
		return ""
	}
	if _, err := strconv.Atoi(v); err == nil && len(v) < 4 {
		v = strings.Repeat("0", 4-len(v)) + v
	}
	if len(v) < 2 {
		return v
	}
	return v[:2]
}

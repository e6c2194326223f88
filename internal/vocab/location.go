package vocab

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimezone is returned when a timezone value cannot be parsed.
var ErrInvalidTimezone = errors.New("invalid timezone")

// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date")

// offsetRegex matches UTC offsets like "+9", "+09", "+09:00", "-0530", "utc+2".
var offsetRegex = regexp.MustCompile(`^(?i:UTC|GMT)?([+-])(\d{1,2})(?::?(\d{2}))?$`)

// ParseLocation parses a timezone value into a location.
// Accepts:
//   - "" or "local": the system timezone
//   - "UTC", "Z"
//   - Offsets: "+9", "+09:00", "-0530", "UTC+2"
//   - IANA names: "Asia/Tokyo"
func ParseLocation(value string) (*time.Location, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(value) {
	case "", "local":
		return time.Local, nil
	case "utc", "z", "gmt":
		return time.UTC, nil
	}

	if matches := offsetRegex.FindStringSubmatch(value); matches != nil {
		return parseOffset(value, matches[1], matches[2], matches[3])
	}

	loc, err := time.LoadLocation(value)
	if err != nil {
		return nil, fmt.Errorf("%w %q: use an offset (+09:00) or a zone name (Asia/Tokyo)", ErrInvalidTimezone, value)
	}
	return loc, nil
}

// parseOffset builds a fixed zone from the sign, hour, and minute parts.
func parseOffset(value, sign, hourStr, minStr string) (*time.Location, error) {
	hours, _ := strconv.Atoi(hourStr)
	minutes := 0
	if minStr != "" {
		minutes, _ = strconv.Atoi(minStr)
	}
	if hours > 23 || minutes > 59 {
		return nil, fmt.Errorf("%w %q: offset out of range", ErrInvalidTimezone, value)
	}

	seconds := hours*3600 + minutes*60
	if sign == "-" {
		seconds = -seconds
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
	return time.FixedZone(name, seconds), nil
}

// ParseDate parses a YYYY-MM-DD date as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, value)
	}
	return t, nil
}

// DayBounds returns the epoch seconds of the start of the day and the start
// of the following day in loc.
func DayBounds(date string, loc *time.Location) (start, end int64, err error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return 0, 0, err
	}
	return day.Unix(), day.AddDate(0, 0, 1).Unix(), nil
}

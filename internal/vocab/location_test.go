package vocab

import (
	"errors"
	"testing"
	"time"
)

func TestParseLocation_Offsets(t *testing.T) {
	tests := []struct {
		value      string
		wantOffset int
	}{
		{"UTC", 0},
		{"Z", 0},
		{"+9", 9 * 3600},
		{"+09", 9 * 3600},
		{"+09:00", 9 * 3600},
		{"-0530", -(5*3600 + 30*60)},
		{"-05:30", -(5*3600 + 30*60)},
		{"UTC+2", 2 * 3600},
		{"utc+2", 2 * 3600},
		{"gmt-03:00", -3 * 3600},
		{"utc", 0},
		{"+00:00", 0},
	}

	ref := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			loc, err := ParseLocation(tt.value)
			if err != nil {
				t.Fatalf("ParseLocation(%q) error = %v", tt.value, err)
			}
			_, offset := ref.In(loc).Zone()
			if offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", offset, tt.wantOffset)
			}
		})
	}
}

func TestParseLocation_Local(t *testing.T) {
	for _, value := range []string{"", "local", "Local"} {
		loc, err := ParseLocation(value)
		if err != nil {
			t.Fatalf("ParseLocation(%q) error = %v", value, err)
		}
		if loc != time.Local {
			t.Errorf("ParseLocation(%q) = %v, want time.Local", value, loc)
		}
	}
}

func TestParseLocation_Invalid(t *testing.T) {
	for _, value := range []string{"+25:00", "+09:75", "Mars/Olympus_Mons", "nine"} {
		t.Run(value, func(t *testing.T) {
			_, err := ParseLocation(value)
			if !errors.Is(err, ErrInvalidTimezone) {
				t.Errorf("ParseLocation(%q) error = %v, want ErrInvalidTimezone", value, err)
			}
		})
	}
}

func TestDayBounds(t *testing.T) {
	start, end, err := DayBounds("2024-01-01", time.UTC)
	if err != nil {
		t.Fatalf("DayBounds() error = %v", err)
	}
	if start != 1704067200 || end != 1704153600 {
		t.Errorf("DayBounds() = (%d, %d), want (1704067200, 1704153600)", start, end)
	}

	tokyo := time.FixedZone("UTC+09:00", 9*3600)
	start, end, err = DayBounds("2024-01-01", tokyo)
	if err != nil {
		t.Fatalf("DayBounds() error = %v", err)
	}
	if start != 1704067200-9*3600 || end-start != 86400 {
		t.Errorf("DayBounds(+9) = (%d, %d), want start %d and a 24h span", start, end, 1704067200-9*3600)
	}
}

func TestDayBounds_InvalidDate(t *testing.T) {
	for _, value := range []string{"2024/01/01", "01-01-2024", "2024-13-01", ""} {
		if _, _, err := DayBounds(value, time.UTC); !errors.Is(err, ErrInvalidDate) {
			t.Errorf("DayBounds(%q) error = %v, want ErrInvalidDate", value, err)
		}
	}
}

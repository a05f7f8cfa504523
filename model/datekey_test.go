package model

import (
	"testing"
	"time"
)

func TestFormatDateKey(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want DateKey
	}{
		{"mid year", time.Date(2025, 7, 9, 15, 30, 0, 0, time.Local), "20250709"},
		{"single digit month and day", time.Date(2025, 1, 2, 0, 0, 0, 0, time.Local), "20250102"},
		{"year end", time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local), "20241231"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatDateKey(tc.date); got != tc.want {
				t.Errorf("FormatDateKey = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseDateKeyRoundTrip(t *testing.T) {
	day := time.Date(2025, 7, 9, 0, 0, 0, 0, time.Local)
	key := FormatDateKey(day.Add(13 * time.Hour))

	parsed, err := ParseDateKey(key)
	if err != nil {
		t.Fatalf("ParseDateKey: %v", err)
	}
	if !parsed.Equal(day) {
		t.Errorf("parsed %v, want midnight %v", parsed, day)
	}
}

func TestDateKeyIsValid(t *testing.T) {
	tests := []struct {
		key  DateKey
		want bool
	}{
		{"20250709", true},
		{"20241231", true},
		{"20250230", false}, // February 30th
		{"20251301", false}, // month 13
		{"2025-07-09", false},
		{"202507", false},
		{"abcdefgh", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := tc.key.IsValid(); got != tc.want {
			t.Errorf("IsValid(%q) = %v, want %v", tc.key, got, tc.want)
		}
	}
}

func TestWeekDateKeys(t *testing.T) {
	// Wednesday 2025-07-09 sits in the Monday-start week 07-07 .. 07-13.
	wednesday := time.Date(2025, 7, 9, 10, 0, 0, 0, time.Local)

	tests := []struct {
		name   string
		base   time.Time
		offset int
		want   []DateKey
	}{
		{
			"midweek", wednesday, 0,
			[]DateKey{"20250707", "20250708", "20250709", "20250710", "20250711", "20250712", "20250713"},
		},
		{
			"previous week", wednesday, -1,
			[]DateKey{"20250630", "20250701", "20250702", "20250703", "20250704", "20250705", "20250706"},
		},
		{
			"sunday belongs to the ending week",
			time.Date(2025, 7, 13, 0, 0, 0, 0, time.Local), 0,
			[]DateKey{"20250707", "20250708", "20250709", "20250710", "20250711", "20250712", "20250713"},
		},
		{
			"monday starts its own week",
			time.Date(2025, 7, 14, 0, 0, 0, 0, time.Local), 0,
			[]DateKey{"20250714", "20250715", "20250716", "20250717", "20250718", "20250719", "20250720"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekDateKeys(tc.base, tc.offset)
			if len(got) != 7 {
				t.Fatalf("expected 7 keys, got %d", len(got))
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("day %d = %s, want %s", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestIsBuiltinCategory(t *testing.T) {
	for _, id := range BuiltinCategoryIDs {
		if !IsBuiltinCategory(id) {
			t.Errorf("%s not recognized as built-in", id)
		}
	}
	if IsBuiltinCategory("cat-custom") {
		t.Error("extra category recognized as built-in")
	}
}

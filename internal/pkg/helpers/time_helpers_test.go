package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback time.Duration
		want     time.Duration
	}{
		{"hours", "2h", time.Minute, 2 * time.Hour},
		{"minutes", "30m", time.Hour, 30 * time.Minute},
		{"compound", "1h30m", time.Hour, 90 * time.Minute},
		{"empty uses fallback", "", time.Hour, time.Hour},
		{"garbage uses fallback", "soon", 720 * time.Hour, 720 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDuration(tt.input, tt.fallback); got != tt.want {
				t.Errorf("ParseDuration(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2004-06-15")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	if got.Year() != 2004 || got.Month() != time.June || got.Day() != 15 {
		t.Errorf("ParseDate() = %v, want 2004-06-15", got)
	}

	invalid := []string{"15-06-2004", "2004/06/15", "not-a-date", ""}
	for _, input := range invalid {
		if _, err := ParseDate(input); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", input)
		}
	}
}

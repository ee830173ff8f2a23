package utils

import (
	"testing"
	"time"
)

func TestParseDateAny(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		formats []string
		want    string
		wantOK  bool
	}{
		{"iso", "2024-06-15", nil, "2024-06-15", true},
		{"us slash", "06/15/2024", nil, "2024-06-15", true},
		{"single digit us", "6/5/2024", nil, "2024-06-05", true},
		{"explicit format list", "15-06-2024", []string{"02-01-2006"}, "2024-06-15", true},
		{"format not in list", "2024-06-15", []string{"01/02/2006"}, "", false},
		{"empty string", "", nil, "", false},
		{"garbage", "not a date", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDateAny(tt.input, tt.formats)
			if ok != tt.wantOK {
				t.Fatalf("ParseDateAny(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok {
				if formatted := got.Format(ISODateFormat); formatted != tt.want {
					t.Errorf("ParseDateAny(%q) = %s, want %s", tt.input, formatted, tt.want)
				}
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(nil); got != "" {
		t.Errorf("FormatDate(nil) = %q, want empty", got)
	}
	d := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(&d); got != "2024-06-15" {
		t.Errorf("FormatDate = %q, want 2024-06-15", got)
	}
}

func TestRoundCurrency(t *testing.T) {
	tests := []struct{ input, want float64 }{
		{10.005, 10.01},
		{10.004, 10.00},
		{-45.1, -45.1},
		{0, 0},
		{1234.5, 1234.5},
	}
	for _, tt := range tests {
		if got := RoundCurrency(tt.input); got != tt.want {
			t.Errorf("RoundCurrency(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

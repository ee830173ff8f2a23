package utils

import (
	"fmt"
	"path"
	"strings"
	"time"
)

// PeriodFromFilename extracts the commission period from a carrier export
// filename of the form "<Carrier> MM.YYYY Commission.xlsx".
//
//	"Centene 06.2024 Commission.xlsx" -> "2024-06"
func PeriodFromFilename(filename string) (string, error) {
	parts := strings.Split(path.Base(filename), " ")
	if len(parts) < 2 {
		return "", fmt.Errorf("filename %q does not contain a MM.YYYY period segment", filename)
	}
	monthYear := strings.SplitN(parts[1], ".", 2)
	if len(monthYear) != 2 {
		return "", fmt.Errorf("filename %q does not contain a MM.YYYY period segment", filename)
	}
	month, year := monthYear[0], monthYear[1]
	if len(month) == 1 {
		month = "0" + month
	}
	period := year + "-" + month
	if err := ValidatePeriod(period); err != nil {
		return "", fmt.Errorf("filename %q: %w", filename, err)
	}
	return period, nil
}

// ValidatePeriod checks that a commission period resolves to a calendar
// month in YYYY-MM form.
func ValidatePeriod(period string) error {
	if _, err := time.Parse("2006-01", period); err != nil {
		return fmt.Errorf("invalid commission period %q, want YYYY-MM", period)
	}
	return nil
}

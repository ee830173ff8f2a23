package utils

import "time"

// ISODateFormat is the canonical date representation of the output schema.
const ISODateFormat = "2006-01-02"

// CommonDateFormats are tried, in order, when a carrier does not declare its
// own format list.
var CommonDateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"1/2/2006",
}

// ParseDateAny tries each format in order and returns the first match.
// Exhausting all formats reports ok=false; callers treat that as a field
// defect, not an abort.
func ParseDateAny(dateStr string, formats []string) (time.Time, bool) {
	if dateStr == "" {
		return time.Time{}, false
	}
	if len(formats) == 0 {
		formats = CommonDateFormats
	}
	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate renders a nullable date in the canonical ISO form, empty when
// the date is absent.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(ISODateFormat)
}

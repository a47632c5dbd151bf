package models

import "time"

// Wire time formats. Every date-only field across the payload uses
// DateLayout and every timestamp field uses RFC3339 — one format each,
// the backend rejects mixed representations.
const (
	DateLayout      = "2006-01-02"
	TimestampLayout = time.RFC3339
)

// FormatDate renders t as a wire calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatTimestamp renders t as a wire timestamp.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

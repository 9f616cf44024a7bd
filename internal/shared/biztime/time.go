// Package biztime centralizes time handling. All storage and transport use
// UTC; local timezones are never implicit.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTimestampSuffix renders t as a compact numeric suffix suitable for
// disambiguating CMS slugs.
func FormatTimestampSuffix(t time.Time) string {
	return t.UTC().Format("20060102150405")
}

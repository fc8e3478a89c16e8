package handlers

import "time"

// parseDate parses a YYYY-MM-DD calendar date as midnight in the shop
// timezone. The layout is strict, so anything that is not a syntactically
// valid calendar date is rejected.
func parseDate(loc *time.Location, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, loc)
}

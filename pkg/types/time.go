package types

import "time"

// TimeLayout is the fixed timestamp format stored in data files.
const TimeLayout = "2006-01-02 15:04:05 UTC"

// DueLayout is the only due-date format treated as valid when sorting.
const DueLayout = "2006-01-02"

// Now returns the current UTC time in the stored timestamp format.
func Now() string {
	return time.Now().UTC().Format(TimeLayout)
}

// ValidDue reports whether due parses as a YYYY-MM-DD date. Empty strings
// and free-form text are not valid; validity is only ever checked at sort
// time, never at write time.
func ValidDue(due string) bool {
	if due == "" {
		return false
	}
	_, err := time.Parse(DueLayout, due)
	return err == nil
}

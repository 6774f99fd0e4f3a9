package nijiero

import (
	"strings"
	"time"
)

// uploadDateLayout matches the datetime attribute WordPress renders on posts,
// e.g. 2023-05-01T12:34:56+09:00.
const uploadDateLayout = "2006-01-02T15:04:05Z07:00"

// parseDate returns the upload date in Unix milliseconds, or 0 when the
// value is missing or malformed.
func parseDate(value string) int64 {
	t, err := time.Parse(uploadDateLayout, strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return t.UnixMilli()
}

package repository

import "time"

// SQLite column formats. Values are bound as formatted strings so that SQL
// date functions (strftime) and CURRENT_TIMESTAMP defaults all see one
// consistent text representation.
const (
	dateFormat     = "2006-01-02"
	dateTimeFormat = "2006-01-02 15:04:05"
)

// formatDate renders a time for a DATE column.
func formatDate(t time.Time) string {
	return t.Format(dateFormat)
}

// formatDateTime renders a time for a DATETIME column in UTC.
func formatDateTime(t time.Time) string {
	return t.UTC().Format(dateTimeFormat)
}

// nullableDate renders an optional time for a DATE column, binding NULL when
// absent.
func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatDate(*t)
}

// Package weekwindow provides Monday–Sunday calendar windows.
package weekwindow

import (
	"time"

	errorvalues "github.com/TereBts/studystar/internal/error_values"
)

// Containing returns the Monday and Sunday of the week holding d, truncated
// to dates in d's location. Weekday numbering treats Monday as day zero, so
// monday = d minus its weekday offset.
func Containing(d time.Time) (monday, sunday time.Time, err error) {
	if d.IsZero() {
		return time.Time{}, time.Time{}, errorvalues.ErrInvalidDate
	}
	day := truncateToDate(d)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		// Sunday
		offset = 6
	}
	monday = day.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday, nil
}

// Previous returns the window containing the date one week before d.
func Previous(d time.Time) (monday, sunday time.Time, err error) {
	if d.IsZero() {
		return time.Time{}, time.Time{}, errorvalues.ErrInvalidDate
	}
	return Containing(d.AddDate(0, 0, -7))
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Package dates provides the display-only date metrics used by the
// task list: calendar-date formatting and whole-day difference labels.
// All arithmetic uses plain 24-hour buckets; calendar rules such as
// DST are intentionally ignored.
package dates

import (
	"fmt"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// SameDayLabel is reported when start and end fall within the same
// 24-hour bucket.
const SameDayLabel = "Same day"

// Formatter renders epoch-millisecond timestamps as calendar dates.
type Formatter struct {
	layout string
}

// NewFormatter creates a formatter with the given date layout.
func NewFormatter(layout string) *Formatter {
	return &Formatter{layout: layout}
}

// FormatDate renders the date portion of a millisecond timestamp,
// discarding time-of-day.
func (f *Formatter) FormatDate(millis int64) string {
	return time.UnixMilli(millis).Format(f.layout)
}

// DayDifference computes the floored whole-day count between two
// millisecond timestamps and renders it as a label. A zero difference
// yields SameDayLabel; anything else yields "<N> days", including
// negative N. Validation normally prevents end < start, but legacy data
// may still carry it, so the negative case passes through rather than
// erroring.
func DayDifference(start, end int64) string {
	days := floorDiv(end-start, millisPerDay)
	if days == 0 {
		return SameDayLabel
	}
	return fmt.Sprintf("%d days", days)
}

// floorDiv divides rounding toward negative infinity, so negative
// spans floor downward instead of truncating toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

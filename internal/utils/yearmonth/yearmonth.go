// Package yearmonth parses the "YYYY-MM" month keys used to address monthly
// budget plans and aggregation windows.
package yearmonth

import (
	"fmt"
	"time"

	"github.com/planwise/budget_planner_app/internal/apperrors"
)

// YearMonth identifies one calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Parse parses a strict zero-padded "YYYY-MM" key.
func Parse(key string) (YearMonth, error) {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: invalid month key %q, expected YYYY-MM", apperrors.ErrValidation, key)
	}
	// time.Parse accepts "2006-1"; require the canonical zero-padded form.
	ym := YearMonth{Year: t.Year(), Month: t.Month()}
	if ym.String() != key {
		return YearMonth{}, fmt.Errorf("%w: invalid month key %q, expected YYYY-MM", apperrors.ErrValidation, key)
	}
	return ym, nil
}

// String returns the canonical "YYYY-MM" form.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// Bounds returns the calendar month window as [start, end): the first instant
// of the month inclusive and the first instant of the next month exclusive,
// both in UTC. A timestamp on the month's last instant is inside the window; a
// timestamp one instant into the next month is not.
func (ym YearMonth) Bounds() (time.Time, time.Time) {
	start := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Next returns the month following ym.
func (ym YearMonth) Next() YearMonth {
	start := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return YearMonth{Year: start.Year(), Month: start.Month()}
}

package payroll

import (
	"time"
)

// =============================================================================
// DATE - Calendar date, day granularity, UTC
// =============================================================================

// Date is a calendar date normalized to midnight UTC. Join dates and
// years-of-service anchors never need finer granularity.
type Date struct {
	t time.Time
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string, the format of the persisted file.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) Year() int         { return d.t.Year() }
func (d Date) Month() time.Month { return d.t.Month() }
func (d Date) Day() int          { return d.t.Day() }
func (d Date) IsZero() bool      { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

func (d Date) AddDays(n int) Date  { t := d.t.AddDate(0, 0, n); return NewDate(t.Year(), t.Month(), t.Day()) }
func (d Date) AddYears(n int) Date { t := d.t.AddDate(n, 0, 0); return NewDate(t.Year(), t.Month(), t.Day()) }

func (d Date) String() string { return d.t.Format(dateLayout) }

// YearsBetween returns whole years from join to asOf. A year is not complete
// until the anniversary month/day has been reached, so one day short of an
// anniversary still counts the previous year.
func YearsBetween(join, asOf Date) int {
	years := asOf.Year() - join.Year()
	if asOf.Month() < join.Month() ||
		(asOf.Month() == join.Month() && asOf.Day() < join.Day()) {
		years--
	}
	return years
}

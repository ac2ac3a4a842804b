package recurrence

import (
	"time"

	"github.com/dutyrota/dutyrota/internal/domain"
	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/dutyrota/dutyrota/internal/domain/entity"
)

// maxScanDays bounds the forward scan in NextOccurrence. It comfortably
// covers MONTHLY cadences with multi-month intervals.
const maxScanDays = 1600

// Evaluator implements contract.RecurrenceEvaluator for the fixed cadence
// model: every N days, weeks, fortnights or months from a start date, with
// an optional weekdays-only filter.
type Evaluator struct{}

func New() *Evaluator {
	return &Evaluator{}
}

var _ contract.RecurrenceEvaluator = (*Evaluator)(nil)

func (e *Evaluator) IsValid(rec entity.Recurrence) bool {
	if !domain.ValidFrequencies[rec.Frequency] {
		return false
	}
	if rec.Interval < 1 {
		return false
	}
	return !rec.StartDate.IsZero()
}

// NextOccurrence returns the first occurrence date at or after the calendar
// day of after. The returned value is date-only (UTC midnight).
func (e *Evaluator) NextOccurrence(rec entity.Recurrence, after time.Time) (time.Time, bool) {
	if !e.IsValid(rec) {
		return time.Time{}, false
	}

	start := entity.Day(rec.StartDate)
	day := entity.Day(after)
	if day.Before(start) {
		day = start
	}

	for i := 0; i < maxScanDays; i++ {
		candidate := day.AddDate(0, 0, i)
		if e.matches(rec, start, candidate) {
			return candidate, true
		}
	}

	return time.Time{}, false
}

func (e *Evaluator) matches(rec entity.Recurrence, start, day time.Time) bool {
	if rec.WeekdaysOnly {
		wd := day.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			return false
		}
	}

	switch rec.Frequency {
	case domain.FrequencyDaily:
		return daysBetween(start, day)%rec.Interval == 0
	case domain.FrequencyWeekly:
		return daysBetween(start, day)%(7*rec.Interval) == 0
	case domain.FrequencyBiweekly:
		return daysBetween(start, day)%(14*rec.Interval) == 0
	case domain.FrequencyMonthly:
		return e.matchesMonthly(rec, start, day)
	}
	return false
}

// matchesMonthly fires on the start date's day-of-month every Interval
// months, clamping to the last day of shorter months (a rotation starting
// on the 31st fires on Feb 28th/29th).
func (e *Evaluator) matchesMonthly(rec entity.Recurrence, start, day time.Time) bool {
	months := monthsBetween(start, day)
	if months < 0 || months%rec.Interval != 0 {
		return false
	}

	wanted := start.Day()
	if last := lastDayOfMonth(day); wanted > last {
		wanted = last
	}
	return day.Day() == wanted
}

func daysBetween(start, day time.Time) int {
	return int(day.Sub(start).Hours() / 24)
}

func monthsBetween(start, day time.Time) int {
	return (day.Year()-start.Year())*12 + int(day.Month()) - int(start.Month())
}

func lastDayOfMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1).Day()
}

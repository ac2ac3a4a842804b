package contract

import (
	"time"

	"github.com/dutyrota/dutyrota/internal/domain/entity"
)

// RecurrenceEvaluator answers when a recurrence next fires. Implementations
// are trusted: the engine treats them as a black box and fails closed on
// anything they reject.
type RecurrenceEvaluator interface {
	// NextOccurrence returns the first occurrence date at or after the
	// calendar day of after, or false if there is none.
	NextOccurrence(rec entity.Recurrence, after time.Time) (time.Time, bool)

	// IsValid reports whether the recurrence specification is well formed.
	IsValid(rec entity.Recurrence) bool
}

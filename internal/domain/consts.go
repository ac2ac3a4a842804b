package domain

// Recurrence frequencies supported by the rotation engine
const (
	FrequencyDaily    = "DAILY"
	FrequencyWeekly   = "WEEKLY"
	FrequencyBiweekly = "BIWEEKLY"
	FrequencyMonthly  = "MONTHLY"
)

// ValidFrequencies maps frequency names to their validity
var ValidFrequencies = map[string]bool{
	FrequencyDaily:    true,
	FrequencyWeekly:   true,
	FrequencyBiweekly: true,
	FrequencyMonthly:  true,
}

// Assignment delivery states
const (
	AssignmentPending   = "pending"
	AssignmentDelivered = "delivered"
)

// ValidNotificationMinutes are the minute values a notification time may use
var ValidNotificationMinutes = map[int]bool{
	0:  true,
	15: true,
	30: true,
	45: true,
}

// DefaultNotificationTime is used when a rotation is auto-created
const DefaultNotificationTime = "09:00"

// DefaultTimezone is the timezone assigned to new rotations
const DefaultTimezone = "UTC"

// Delivery retry budgets for the scheduling cycle and the retry sweep
const (
	CycleDeliveryAttempts = 3
	SweepDeliveryAttempts = 2
)

// SweepWindow is how far back the retry sweep looks for pending assignments.
// Pending records older than this are never retried again.
const SweepWindowHours = 24

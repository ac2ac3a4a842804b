package entity

import (
	"database/sql"
	"time"
)

// Recurrence describes when a rotation fires. It is a fixed cadence from a
// start date, not a general recurrence rule.
type Recurrence struct {
	Frequency    string    // DAILY, WEEKLY, BIWEEKLY, MONTHLY
	Interval     int       // every N days/weeks/months (BIWEEKLY: N fortnights)
	StartDate    time.Time // date-only, UTC midnight
	WeekdaysOnly bool      // suppress occurrences falling on Saturday/Sunday
}

// Rotation is one duty rotation configured for a Slack channel.
type Rotation struct {
	ID               int64
	SlackTeamID      string
	SlackChannelID   string
	Name             string
	Members          []string // ordered Slack user IDs, join order
	Recurrence       Recurrence
	NotificationTime string // HH:MM, interpreted in Timezone
	Timezone         string // IANA zone name
	Cursor           int    // index of the member who most recently took a turn
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Assignment is the per-day record of who was (or will be) notified for a
// rotation. Records are never deleted; skips chain them via ReplacedByID.
type Assignment struct {
	ID             int64
	RotationID     int64
	SlackTeamID    string
	SlackChannelID string
	AssignedDate   time.Time // calendar day, UTC midnight
	SlackUserID    string
	Status         string // pending, delivered
	DeliveredAt    sql.NullTime
	SlackMessageTS string // Slack message timestamp, used to edit the message later
	Skipped        bool
	SkippedBy      string
	SkippedAt      sql.NullTime
	SkipReason     string
	ReplacedByID   sql.NullInt64
	CreatedAt      time.Time
}

// Day normalizes t to a date-only value: the calendar day of t in its own
// location, pinned to UTC midnight so date comparisons are location-free.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

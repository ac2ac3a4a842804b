package contract

import (
	"context"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain/entity"
)

// CycleError is one failed rotation inside an otherwise completed cycle.
type CycleError struct {
	RotationID   int64
	RotationName string
	Err          string
}

// CycleResult aggregates the outcome of one scheduling cycle pass.
type CycleResult struct {
	RunID     string
	Total     int
	Processed int
	Skipped   int
	Failed    int
	Errors    []CycleError
}

// SweepResult aggregates the outcome of one retry sweep pass.
type SweepResult struct {
	RunID     string
	Scanned   int
	Delivered int
	Failed    int
	// Abandoned counts pending records older than the sweep window, which
	// are never retried again.
	Abandoned int
}

// SkipResult describes a successful skip: a new assignment was created and
// the original marked skipped.
type SkipResult struct {
	NewAssignmentID int64
	NewMemberID     string
	// Delivered reports whether the replacement notification went out; when
	// false the new assignment stays pending for the retry sweep.
	Delivered bool
}

// RotationStatus is a read-only snapshot used by the status command.
type RotationStatus struct {
	Rotation       *entity.Rotation
	OpenAssignment *entity.Assignment // today's most recent non-skipped record, nil if none
	NextOccurrence time.Time
	HasOccurrence  bool
	EligibleNow    bool
}

// SchedulerService drives the rotation engine: the periodic cycle, the retry
// sweep, and the eligibility/cursor primitives shared with status tooling.
type SchedulerService interface {
	// RunCycle processes every active rotation once. The bool is false when
	// another cycle was already in flight and this invocation was dropped.
	RunCycle(ctx context.Context, now time.Time) (CycleResult, bool)
	RunRetrySweep(ctx context.Context, now time.Time) (SweepResult, error)
	ShouldRun(rotation *entity.Rotation, now time.Time) bool
	NextAvailable(rotation *entity.Rotation, day time.Time) (string, int, error)
}

// SkipService executes the mid-cycle "skip current person" override.
type SkipService interface {
	Skip(ctx context.Context, assignmentID int64, actorID, reason string) (*SkipResult, error)
	// SkipCurrent resolves the channel's rotation and today's open assignment
	// before delegating to Skip.
	SkipCurrent(ctx context.Context, slackChannelID, actorID, reason string) (*SkipResult, error)
}

// RotaService manages rotation definitions on behalf of the slash-command
// surface. The core engine never deletes rotations; pause/resume toggles the
// active flag.
type RotaService interface {
	SetupRotation(slackChannelID, channelName, teamID string) (*entity.Rotation, bool, error)
	AddMember(rotationID int64, slackUserID string) error
	RemoveMember(rotationID int64, slackUserID string) error
	ListMembers(rotationID int64) ([]string, error)
	UpdateConfig(rotationID int64, configType, value string) error
	Pause(rotationID int64) error
	Resume(rotationID int64) error
	Status(rotationID int64, now time.Time) (*RotationStatus, error)
	History(rotationID int64, limit int) ([]*entity.Assignment, error)
}

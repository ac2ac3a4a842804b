package contract

import (
	"context"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Rotation() RotationRepo
	Assignment() AssignmentRepo
}

// RotationRepo defines the contract for the rotation definition store
type RotationRepo interface {
	Create(rotation *entity.Rotation) error
	GetByID(id int64) (*entity.Rotation, error)
	GetBySlackChannelID(slackChannelID string) (*entity.Rotation, error)
	Update(rotation *entity.Rotation) error
	ListActive() ([]*entity.Rotation, error)
	SetActive(id int64, active bool) error
}

// AssignmentRepo defines the contract for the assignment ledger store
type AssignmentRepo interface {
	Create(assignment *entity.Assignment) error
	GetByID(id int64) (*entity.Assignment, error)
	// ListForDay returns the assignment chain for (rotation, day) ordered by
	// creation time, oldest first.
	ListForDay(rotationID int64, day time.Time) ([]*entity.Assignment, error)
	MarkDelivered(id int64, messageTS string, at time.Time) error
	MarkSkipped(id int64, actorID, reason string, replacementID int64, at time.Time) error
	// ListPendingCreatedBetween returns undelivered assignments created in
	// (from, to], oldest first.
	ListPendingCreatedBetween(from, to time.Time) ([]*entity.Assignment, error)
	CountPendingOlderThan(cutoff time.Time) (int, error)
	ListRecent(rotationID int64, limit int) ([]*entity.Assignment, error)
}

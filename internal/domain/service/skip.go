package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain"
	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/dutyrota/dutyrota/internal/domain/entity"
	"github.com/dutyrota/dutyrota/internal/notifier"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

type skipService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	scheduler   *scheduler
	locks       *rotationLocks
	log         *logrus.Logger
	now         func() time.Time
}

func newSkip(dm contract.DataManager, slackClient contract.SlackClient, sched *scheduler, locks *rotationLocks, log *logrus.Logger) *skipService {
	return &skipService{
		dm:          dm,
		slackClient: slackClient,
		scheduler:   sched,
		locks:       locks,
		log:         log,
		now:         time.Now,
	}
}

var _ contract.SkipService = (*skipService)(nil)

// Skip marks the assignment as skipped and hands the duty to the next
// member in the rotation. It fails when there is nobody to hand it to:
// a single-member rotation, or a day where the skip chain already
// touched every other member.
func (s *skipService) Skip(ctx context.Context, assignmentID int64, actorID, reason string) (*contract.SkipResult, error) {
	assignment, err := s.dm.Assignment().GetByID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment: %w", err)
	}
	if assignment == nil {
		return nil, domain.ErrAssignmentNotFound
	}

	lock := s.locks.Get(assignment.RotationID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock: a concurrent skip may have landed between
	// the first read and acquiring the lock.
	assignment, err = s.dm.Assignment().GetByID(assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload assignment: %w", err)
	}
	if assignment == nil {
		return nil, domain.ErrAssignmentNotFound
	}
	if assignment.Skipped {
		return nil, domain.ErrAlreadySkipped
	}

	rotation, err := s.dm.Rotation().GetByID(assignment.RotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rotation: %w", err)
	}
	if rotation == nil {
		return nil, domain.ErrRotationNotFound
	}

	if len(rotation.Members) <= 1 {
		return nil, &domain.SkipNotAllowedError{Reason: "the rotation has no other member to take over"}
	}

	chain, err := s.dm.Assignment().ListForDay(rotation.ID, assignment.AssignedDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's assignments: %w", err)
	}

	if consecutiveSkips(chain) >= len(rotation.Members)-1 {
		return nil, &domain.SkipNotAllowedError{Reason: "every other member was already skipped over today"}
	}

	newMemberID, newCursor, err := s.scheduler.nextFromRecords(rotation, chain)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	replacement := &entity.Assignment{
		RotationID:     rotation.ID,
		SlackTeamID:    rotation.SlackTeamID,
		SlackChannelID: rotation.SlackChannelID,
		AssignedDate:   assignment.AssignedDate,
		SlackUserID:    newMemberID,
		Status:         domain.AssignmentPending,
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Assignment().Create(replacement); err != nil {
			return fmt.Errorf("failed to create replacement assignment: %w", err)
		}

		if err := tx.Assignment().MarkSkipped(assignment.ID, actorID, reason, replacement.ID, now); err != nil {
			return fmt.Errorf("failed to mark assignment skipped: %w", err)
		}

		rotation.Cursor = newCursor
		if err := tx.Rotation().Update(rotation); err != nil {
			return fmt.Errorf("failed to advance cursor: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Edit the original notification so the channel sees the handover.
	// Best effort: a failed edit never undoes the skip.
	if assignment.SlackMessageTS != "" {
		edited := notifier.SkippedMessage(rotation.Name, assignment.SlackUserID, actorID, now.Format("15:04 MST"), newMemberID)
		_, _, _, err := s.slackClient.UpdateMessage(
			assignment.SlackChannelID,
			assignment.SlackMessageTS,
			slack.MsgOptionText(edited, false),
		)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"assignment_id": assignment.ID,
				"message_ts":    assignment.SlackMessageTS,
			}).Warnf("failed to edit skipped notification: %v", err)
		}
	}

	result := &contract.SkipResult{
		NewAssignmentID: replacement.ID,
		NewMemberID:     newMemberID,
	}

	log := s.log.WithFields(logrus.Fields{
		"rotation_id":   rotation.ID,
		"assignment_id": replacement.ID,
	})

	text := notifier.ReplacementMessage(rotation.Name, newMemberID)
	messageTS, err := s.scheduler.deliverWithRetry(ctx, log, rotation.SlackChannelID, replacement.ID, text, domain.CycleDeliveryAttempts)
	if err != nil {
		// The skip itself stands; the replacement record stays pending for
		// the retry sweep.
		log.Warnf("failed to deliver replacement notification: %v", err)
		return result, nil
	}

	if err := s.dm.Assignment().MarkDelivered(replacement.ID, messageTS, now); err != nil {
		log.Errorf("failed to mark replacement delivered: %v", err)
		return result, nil
	}

	result.Delivered = true
	return result, nil
}

// SkipCurrent resolves today's open assignment for the channel's rotation
// and skips it.
func (s *skipService) SkipCurrent(ctx context.Context, slackChannelID, actorID, reason string) (*contract.SkipResult, error) {
	rotation, err := s.dm.Rotation().GetBySlackChannelID(slackChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rotation: %w", err)
	}
	if rotation == nil {
		return nil, domain.ErrRotationNotFound
	}

	loc, err := time.LoadLocation(rotation.Timezone)
	if err != nil {
		return nil, &domain.ValidationError{Field: "timezone", Msg: fmt.Sprintf("invalid timezone %q", rotation.Timezone)}
	}

	day := entity.Day(s.now().In(loc))

	chain, err := s.dm.Assignment().ListForDay(rotation.ID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's assignments: %w", err)
	}

	// The open assignment is the newest record that has not been skipped.
	for i := len(chain) - 1; i >= 0; i-- {
		if !chain[i].Skipped {
			return s.Skip(ctx, chain[i].ID, actorID, reason)
		}
	}

	return nil, domain.ErrAssignmentNotFound
}

// consecutiveSkips counts how many members in a row were skipped over to
// reach the currently open assignment. The chain is ordered oldest first,
// so the open record sits at the tail behind the skipped ones.
func consecutiveSkips(chain []*entity.Assignment) int {
	i := len(chain) - 1
	for i >= 0 && !chain[i].Skipped {
		i--
	}

	count := 0
	for i >= 0 && chain[i].Skipped {
		count++
		i--
	}

	return count
}

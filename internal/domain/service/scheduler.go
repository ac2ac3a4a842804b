package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain"
	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/dutyrota/dutyrota/internal/domain/entity"
	"github.com/dutyrota/dutyrota/internal/notifier"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

type cycleOutcome int

const (
	outcomeProcessed cycleOutcome = iota
	outcomeSkipped
	outcomeFailed
)

type scheduler struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	recurrence  contract.RecurrenceEvaluator
	locks       *rotationLocks
	log         *logrus.Logger

	// cycleMu makes RunCycle single-flight: a trigger arriving while a
	// cycle is in progress is dropped, not queued.
	cycleMu sync.Mutex

	sleep func(ctx context.Context, d time.Duration) error
}

func newScheduler(dm contract.DataManager, slackClient contract.SlackClient, evaluator contract.RecurrenceEvaluator, locks *rotationLocks, log *logrus.Logger) *scheduler {
	return &scheduler{
		dm:          dm,
		slackClient: slackClient,
		recurrence:  evaluator,
		locks:       locks,
		log:         log,
		sleep:       sleepContext,
	}
}

var _ contract.SchedulerService = (*scheduler)(nil)

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// ShouldRun reports whether the rotation is due on this pass: the recurrence
// matches today in the rotation's timezone and the configured notification
// time has passed. There is deliberately no upper bound, so a missed run is
// caught up on any later pass the same day. Duplicate suppression is the
// cycle's job, not this predicate's, which keeps it reusable for previews.
func (s *scheduler) ShouldRun(rotation *entity.Rotation, now time.Time) bool {
	if !s.recurrence.IsValid(rotation.Recurrence) {
		s.log.WithField("rotation_id", rotation.ID).Warn("invalid recurrence, treating rotation as not eligible")
		return false
	}

	loc, err := time.LoadLocation(rotation.Timezone)
	if err != nil {
		s.log.WithField("rotation_id", rotation.ID).Warnf("invalid timezone %q, treating rotation as not eligible", rotation.Timezone)
		return false
	}

	local := now.In(loc)

	occurrence, ok := s.recurrence.NextOccurrence(rotation.Recurrence, local)
	if !ok || !entity.SameDay(occurrence, local) {
		return false
	}

	hour, minute, err := parseNotificationTime(rotation.NotificationTime)
	if err != nil {
		s.log.WithField("rotation_id", rotation.ID).Warnf("invalid notification time %q, treating rotation as not eligible", rotation.NotificationTime)
		return false
	}

	return local.Hour()*60+local.Minute() >= hour*60+minute
}

func parseNotificationTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("notification time must be HH:MM, got %q", value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in notification time %q", value)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in notification time %q", value)
	}

	return hour, minute, nil
}

// NextAvailable returns the next member to assign for the given day and the
// cursor position of that member. It is the single cursor implementation
// shared by the scheduling cycle and the skip engine.
func (s *scheduler) NextAvailable(rotation *entity.Rotation, day time.Time) (string, int, error) {
	records, err := s.dm.Assignment().ListForDay(rotation.ID, entity.Day(day))
	if err != nil {
		return "", 0, fmt.Errorf("failed to list today's assignments: %w", err)
	}

	return s.nextFromRecords(rotation, records)
}

func (s *scheduler) nextFromRecords(rotation *entity.Rotation, records []*entity.Assignment) (string, int, error) {
	memberCount := len(rotation.Members)
	if memberCount == 0 {
		return "", 0, &domain.ValidationError{Field: "members", Msg: "rotation has no members"}
	}

	// Anyone assigned today counts as used, skipped or not: the slot has
	// already moved past them.
	used := make(map[string]bool, len(records))
	for _, record := range records {
		used[record.SlackUserID] = true
	}

	// Tolerate an out-of-range cursor left behind by member edits.
	cursor := ((rotation.Cursor % memberCount) + memberCount) % memberCount

	for i := 1; i <= memberCount; i++ {
		idx := (cursor + i) % memberCount
		if !used[rotation.Members[idx]] {
			return rotation.Members[idx], idx, nil
		}
	}

	// Everyone was used today. The skip limit should prevent this; degrade
	// to a plain advance rather than failing.
	idx := (cursor + 1) % memberCount
	return rotation.Members[idx], idx, nil
}

// RunCycle processes every active rotation once. The returned bool is false
// when another cycle was already in flight and this trigger was dropped.
func (s *scheduler) RunCycle(ctx context.Context, now time.Time) (contract.CycleResult, bool) {
	if !s.cycleMu.TryLock() {
		s.log.Warn("scheduling cycle already in progress, dropping trigger")
		return contract.CycleResult{}, false
	}
	defer s.cycleMu.Unlock()

	result := contract.CycleResult{RunID: uuid.NewString()}
	log := s.log.WithField("run_id", result.RunID)

	rotations, err := s.dm.Rotation().ListActive()
	if err != nil {
		log.Errorf("failed to list active rotations: %v", err)
		return result, true
	}

	result.Total = len(rotations)

	for _, rotation := range rotations {
		outcome, err := s.processRotation(ctx, log, rotation, now)
		switch outcome {
		case outcomeProcessed:
			result.Processed++
		case outcomeSkipped:
			result.Skipped++
		case outcomeFailed:
			result.Failed++
			result.Errors = append(result.Errors, contract.CycleError{
				RotationID:   rotation.ID,
				RotationName: rotation.Name,
				Err:          err.Error(),
			})
		}
	}

	log.WithFields(logrus.Fields{
		"total":     result.Total,
		"processed": result.Processed,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
	}).Info("scheduling cycle finished")

	return result, true
}

func (s *scheduler) processRotation(ctx context.Context, log *logrus.Entry, rotation *entity.Rotation, now time.Time) (outcome cycleOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			outcome = outcomeFailed
			err = fmt.Errorf("panic while processing rotation %d: %v", rotation.ID, r)
			log.WithFields(logrus.Fields{
				"rotation_id":   rotation.ID,
				"rotation_name": rotation.Name,
			}).Errorf("panic while processing rotation: %v\n%s", r, debug.Stack())
		}
	}()

	lock := s.locks.Get(rotation.ID)
	lock.Lock()
	defer lock.Unlock()

	if !s.ShouldRun(rotation, now) {
		return outcomeSkipped, nil
	}

	// Timezone was validated inside ShouldRun.
	loc, _ := time.LoadLocation(rotation.Timezone)
	day := entity.Day(now.In(loc))

	existing, err := s.dm.Assignment().ListForDay(rotation.ID, day)
	if err != nil {
		return outcomeFailed, fmt.Errorf("failed to check today's assignments: %w", err)
	}
	if len(existing) > 0 {
		// Already ran today. This is what makes 15-minute polling safe.
		return outcomeSkipped, nil
	}

	memberID, newCursor, err := s.nextFromRecords(rotation, existing)
	if err != nil {
		return outcomeFailed, err
	}

	assignment := &entity.Assignment{
		RotationID:     rotation.ID,
		SlackTeamID:    rotation.SlackTeamID,
		SlackChannelID: rotation.SlackChannelID,
		AssignedDate:   day,
		SlackUserID:    memberID,
		Status:         domain.AssignmentPending,
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Assignment().Create(assignment); err != nil {
			return fmt.Errorf("failed to create assignment: %w", err)
		}

		rotation.Cursor = newCursor
		if err := tx.Rotation().Update(rotation); err != nil {
			return fmt.Errorf("failed to advance cursor: %w", err)
		}

		return nil
	})
	if err != nil {
		return outcomeFailed, err
	}

	log.WithFields(logrus.Fields{
		"rotation_id":   rotation.ID,
		"assignment_id": assignment.ID,
		"member":        memberID,
	}).Info("assignment created")

	text := notifier.DutyMessage(rotation.Name, memberID)
	messageTS, err := s.deliverWithRetry(ctx, log, rotation.SlackChannelID, assignment.ID, text, domain.CycleDeliveryAttempts)
	if err != nil {
		// The record stays pending so the retry sweep can pick it up; we do
		// not create a second record for the same day.
		return outcomeFailed, err
	}

	if err := s.dm.Assignment().MarkDelivered(assignment.ID, messageTS, now); err != nil {
		return outcomeFailed, fmt.Errorf("failed to mark assignment delivered: %w", err)
	}

	return outcomeProcessed, nil
}

// deliverWithRetry posts a notification with exponential backoff: attempt N
// failing waits 2^N seconds before attempt N+1. After the budget is
// exhausted it returns a DeliveryFailedError carrying the last error.
func (s *scheduler) deliverWithRetry(ctx context.Context, log *logrus.Entry, channelID string, assignmentID int64, text string, maxAttempts int) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		_, messageTS, err := s.slackClient.PostMessage(
			channelID,
			slack.MsgOptionText(text, false),
			slack.MsgOptionAsUser(false),
		)
		if err == nil {
			if attempt > 1 {
				log.WithFields(logrus.Fields{
					"assignment_id": assignmentID,
					"attempt":       attempt,
				}).Info("delivery succeeded after retry")
			}
			return messageTS, nil
		}

		lastErr = err
		log.WithFields(logrus.Fields{
			"assignment_id": assignmentID,
			"channel":       channelID,
			"attempt":       attempt,
		}).Warnf("delivery attempt failed: %v", err)

		if attempt == maxAttempts {
			break
		}

		if serr := s.sleep(ctx, time.Duration(1<<uint(attempt))*time.Second); serr != nil {
			return "", &domain.DeliveryFailedError{Attempts: attempt, Err: serr}
		}
	}

	return "", &domain.DeliveryFailedError{Attempts: maxAttempts, Err: lastErr}
}

// RunRetrySweep retries delivery for pending assignments created within the
// sweep window, with a smaller attempt budget than the cycle. Older pending
// records are counted but never retried again.
func (s *scheduler) RunRetrySweep(ctx context.Context, now time.Time) (contract.SweepResult, error) {
	result := contract.SweepResult{RunID: uuid.NewString()}
	log := s.log.WithField("run_id", result.RunID)

	cutoff := now.Add(-domain.SweepWindowHours * time.Hour)

	abandoned, err := s.dm.Assignment().CountPendingOlderThan(cutoff)
	if err != nil {
		log.Warnf("failed to count abandoned assignments: %v", err)
	} else {
		result.Abandoned = abandoned
		if abandoned > 0 {
			log.WithField("abandoned", abandoned).Warn("pending assignments beyond the retry window will not be retried")
		}
	}

	pending, err := s.dm.Assignment().ListPendingCreatedBetween(cutoff, now)
	if err != nil {
		return result, fmt.Errorf("failed to list pending assignments: %w", err)
	}

	result.Scanned = len(pending)

	for _, assignment := range pending {
		rotation, err := s.dm.Rotation().GetByID(assignment.RotationID)
		if err != nil {
			result.Failed++
			log.WithField("assignment_id", assignment.ID).Errorf("failed to load rotation for pending assignment: %v", err)
			continue
		}
		if rotation == nil {
			result.Failed++
			log.WithField("assignment_id", assignment.ID).Warn("rotation for pending assignment no longer exists")
			continue
		}

		text := notifier.DutyMessage(rotation.Name, assignment.SlackUserID)
		messageTS, err := s.deliverWithRetry(ctx, log, assignment.SlackChannelID, assignment.ID, text, domain.SweepDeliveryAttempts)
		if err != nil {
			result.Failed++
			continue
		}

		if err := s.dm.Assignment().MarkDelivered(assignment.ID, messageTS, now); err != nil {
			result.Failed++
			log.WithField("assignment_id", assignment.ID).Errorf("failed to mark assignment delivered: %v", err)
			continue
		}

		result.Delivered++
	}

	log.WithFields(logrus.Fields{
		"scanned":   result.Scanned,
		"delivered": result.Delivered,
		"failed":    result.Failed,
		"abandoned": result.Abandoned,
	}).Info("retry sweep finished")

	return result, nil
}

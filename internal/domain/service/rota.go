package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain"
	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/dutyrota/dutyrota/internal/domain/entity"
	"github.com/sirupsen/logrus"
)

type rotaService struct {
	dm          contract.DataManager
	slackClient contract.SlackClient
	recurrence  contract.RecurrenceEvaluator
	scheduler   *scheduler
	locks       *rotationLocks
	log         *logrus.Logger
	now         func() time.Time
}

func newRota(dm contract.DataManager, slackClient contract.SlackClient, evaluator contract.RecurrenceEvaluator, sched *scheduler, locks *rotationLocks, log *logrus.Logger) *rotaService {
	return &rotaService{
		dm:          dm,
		slackClient: slackClient,
		recurrence:  evaluator,
		scheduler:   sched,
		locks:       locks,
		log:         log,
		now:         time.Now,
	}
}

var _ contract.RotaService = (*rotaService)(nil)

// SetupRotation returns the channel's rotation, creating it with defaults on
// first use. The bool reports whether a new rotation was created.
func (s *rotaService) SetupRotation(slackChannelID, channelName, teamID string) (*entity.Rotation, bool, error) {
	rotation, err := s.dm.Rotation().GetBySlackChannelID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up rotation: %w", err)
	}
	if rotation != nil {
		return rotation, false, nil
	}

	rotation = &entity.Rotation{
		SlackTeamID:    teamID,
		SlackChannelID: slackChannelID,
		Name:           channelName,
		Members:        []string{},
		Recurrence: entity.Recurrence{
			Frequency:    domain.FrequencyDaily,
			Interval:     1,
			StartDate:    entity.Day(s.now().UTC()),
			WeekdaysOnly: true,
		},
		NotificationTime: domain.DefaultNotificationTime,
		Timezone:         domain.DefaultTimezone,
		IsActive:         true,
	}

	if err := s.dm.Rotation().Create(rotation); err != nil {
		return nil, false, fmt.Errorf("failed to create rotation: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"rotation_id": rotation.ID,
		"channel":     slackChannelID,
	}).Info("rotation created")

	return rotation, true, nil
}

func (s *rotaService) getRotation(rotationID int64) (*entity.Rotation, error) {
	rotation, err := s.dm.Rotation().GetByID(rotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rotation: %w", err)
	}
	if rotation == nil {
		return nil, domain.ErrRotationNotFound
	}
	return rotation, nil
}

func (s *rotaService) AddMember(rotationID int64, slackUserID string) error {
	user, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		return &domain.ValidationError{Field: "member", Msg: fmt.Sprintf("could not find Slack user %s", slackUserID)}
	}
	if user.IsBot || user.Deleted {
		return &domain.ValidationError{Field: "member", Msg: "bots and deactivated users cannot join a rotation"}
	}

	lock := s.locks.Get(rotationID)
	lock.Lock()
	defer lock.Unlock()

	rotation, err := s.getRotation(rotationID)
	if err != nil {
		return err
	}

	for _, memberID := range rotation.Members {
		if memberID == slackUserID {
			return &domain.ValidationError{Field: "member", Msg: "user is already in the rotation"}
		}
	}

	rotation.Members = append(rotation.Members, slackUserID)

	// While the rotation has never assigned anyone, keep the cursor parked
	// on the last member so the first member added gets the first duty.
	recent, err := s.dm.Assignment().ListRecent(rotation.ID, 1)
	if err != nil {
		return fmt.Errorf("failed to check assignment history: %w", err)
	}
	if len(recent) == 0 {
		rotation.Cursor = len(rotation.Members) - 1
	}

	if err := s.dm.Rotation().Update(rotation); err != nil {
		return fmt.Errorf("failed to save rotation: %w", err)
	}

	return nil
}

func (s *rotaService) RemoveMember(rotationID int64, slackUserID string) error {
	lock := s.locks.Get(rotationID)
	lock.Lock()
	defer lock.Unlock()

	rotation, err := s.getRotation(rotationID)
	if err != nil {
		return err
	}

	idx := -1
	for i, memberID := range rotation.Members {
		if memberID == slackUserID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return &domain.ValidationError{Field: "member", Msg: "user is not in the rotation"}
	}

	rotation.Members = append(rotation.Members[:idx], rotation.Members[idx+1:]...)

	// Keep the cursor pointing at the member who most recently took a turn.
	if idx <= rotation.Cursor {
		rotation.Cursor--
	}
	if rotation.Cursor < 0 || rotation.Cursor >= len(rotation.Members) {
		rotation.Cursor = 0
	}

	if err := s.dm.Rotation().Update(rotation); err != nil {
		return fmt.Errorf("failed to save rotation: %w", err)
	}

	return nil
}

func (s *rotaService) ListMembers(rotationID int64) ([]string, error) {
	rotation, err := s.getRotation(rotationID)
	if err != nil {
		return nil, err
	}
	return rotation.Members, nil
}

// UpdateConfig applies one configuration change. configType is one of
// time, freq, tz, start, weekdays.
func (s *rotaService) UpdateConfig(rotationID int64, configType, value string) error {
	lock := s.locks.Get(rotationID)
	lock.Lock()
	defer lock.Unlock()

	rotation, err := s.getRotation(rotationID)
	if err != nil {
		return err
	}

	switch configType {
	case "time":
		if err := validateNotificationTime(value); err != nil {
			return err
		}
		rotation.NotificationTime = value

	case "freq":
		frequency, interval, err := parseFrequency(value)
		if err != nil {
			return err
		}
		rotation.Recurrence.Frequency = frequency
		rotation.Recurrence.Interval = interval

	case "tz":
		if _, err := time.LoadLocation(value); err != nil {
			return &domain.ValidationError{Field: "tz", Msg: fmt.Sprintf("unknown timezone %q, use an IANA name like America/Sao_Paulo", value)}
		}
		rotation.Timezone = value

	case "start":
		startDate, err := time.Parse("2006-01-02", value)
		if err != nil {
			return &domain.ValidationError{Field: "start", Msg: "start date must be YYYY-MM-DD"}
		}
		rotation.Recurrence.StartDate = startDate

	case "weekdays":
		switch strings.ToLower(value) {
		case "on", "true", "yes":
			rotation.Recurrence.WeekdaysOnly = true
		case "off", "false", "no":
			rotation.Recurrence.WeekdaysOnly = false
		default:
			return &domain.ValidationError{Field: "weekdays", Msg: "use on or off"}
		}

	default:
		return &domain.ValidationError{Field: "config", Msg: fmt.Sprintf("unknown setting %q, use time, freq, tz, start or weekdays", configType)}
	}

	if err := s.dm.Rotation().Update(rotation); err != nil {
		return fmt.Errorf("failed to save rotation: %w", err)
	}

	return nil
}

func validateNotificationTime(value string) error {
	_, minute, err := parseNotificationTime(value)
	if err != nil {
		return &domain.ValidationError{Field: "time", Msg: "time must be HH:MM in 24h format"}
	}

	if !domain.ValidNotificationMinutes[minute] {
		return &domain.ValidationError{Field: "time", Msg: "minutes must be 00, 15, 30 or 45 to line up with the scheduler"}
	}

	return nil
}

// parseFrequency accepts either a bare frequency ("weekly") or a frequency
// with an interval ("daily 3").
func parseFrequency(value string) (string, int, error) {
	fields := strings.Fields(strings.ToUpper(value))
	if len(fields) == 0 || len(fields) > 2 {
		return "", 0, &domain.ValidationError{Field: "freq", Msg: "use daily, weekly, biweekly or monthly, optionally with an interval"}
	}

	frequency := fields[0]
	if !domain.ValidFrequencies[frequency] {
		return "", 0, &domain.ValidationError{Field: "freq", Msg: fmt.Sprintf("unknown frequency %q", strings.ToLower(frequency))}
	}

	interval := 1
	if len(fields) == 2 {
		parsed, err := strconv.Atoi(fields[1])
		if err != nil || parsed < 1 {
			return "", 0, &domain.ValidationError{Field: "freq", Msg: "interval must be a positive number"}
		}
		interval = parsed
	}

	return frequency, interval, nil
}

func (s *rotaService) Pause(rotationID int64) error {
	return s.setActive(rotationID, false)
}

func (s *rotaService) Resume(rotationID int64) error {
	return s.setActive(rotationID, true)
}

func (s *rotaService) setActive(rotationID int64, active bool) error {
	rotation, err := s.getRotation(rotationID)
	if err != nil {
		return err
	}

	if rotation.IsActive == active {
		return nil
	}

	if err := s.dm.Rotation().SetActive(rotationID, active); err != nil {
		return fmt.Errorf("failed to update rotation state: %w", err)
	}

	return nil
}

func (s *rotaService) Status(rotationID int64, now time.Time) (*contract.RotationStatus, error) {
	rotation, err := s.getRotation(rotationID)
	if err != nil {
		return nil, err
	}

	status := &contract.RotationStatus{
		Rotation:    rotation,
		EligibleNow: rotation.IsActive && s.scheduler.ShouldRun(rotation, now),
	}

	loc, err := time.LoadLocation(rotation.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)

	if occurrence, ok := s.recurrence.NextOccurrence(rotation.Recurrence, local); ok {
		status.NextOccurrence = occurrence
		status.HasOccurrence = true
	}

	chain, err := s.dm.Assignment().ListForDay(rotation.ID, entity.Day(local))
	if err != nil {
		return nil, fmt.Errorf("failed to load today's assignments: %w", err)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		if !chain[i].Skipped {
			status.OpenAssignment = chain[i]
			break
		}
	}

	return status, nil
}

func (s *rotaService) History(rotationID int64, limit int) ([]*entity.Assignment, error) {
	if _, err := s.getRotation(rotationID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = 10
	}

	records, err := s.dm.Assignment().ListRecent(rotationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignment history: %w", err)
	}

	return records, nil
}

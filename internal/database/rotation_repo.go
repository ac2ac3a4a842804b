package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/dutyrota/dutyrota/internal/domain/entity"
)

type rotationRepo struct {
	db dbConn
}

func newRotationRepo(db dbConn) contract.RotationRepo {
	return &rotationRepo{db: db}
}

const rotationColumns = `id, slack_team_id, slack_channel_id, name, members,
		frequency, recurrence_interval, start_date, weekdays_only,
		notification_time, timezone, cursor, is_active, created_at, updated_at`

func (r *rotationRepo) Create(rotation *entity.Rotation) error {
	query := `
		INSERT INTO rotations (slack_team_id, slack_channel_id, name, members,
			frequency, recurrence_interval, start_date, weekdays_only,
			notification_time, timezone, cursor, is_active)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	membersJSON, err := json.Marshal(rotation.Members)
	if err != nil {
		return fmt.Errorf("failed to marshal members: %w", err)
	}

	result, err := r.db.Exec(query,
		rotation.SlackTeamID,
		rotation.SlackChannelID,
		rotation.Name,
		string(membersJSON),
		rotation.Recurrence.Frequency,
		rotation.Recurrence.Interval,
		rotation.Recurrence.StartDate.Format("2006-01-02"),
		rotation.Recurrence.WeekdaysOnly,
		rotation.NotificationTime,
		rotation.Timezone,
		rotation.Cursor,
		rotation.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create rotation: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	rotation.ID = id
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRotation(row rowScanner) (*entity.Rotation, error) {
	rotation := &entity.Rotation{}
	var membersJSON string

	err := row.Scan(
		&rotation.ID,
		&rotation.SlackTeamID,
		&rotation.SlackChannelID,
		&rotation.Name,
		&membersJSON,
		&rotation.Recurrence.Frequency,
		&rotation.Recurrence.Interval,
		&rotation.Recurrence.StartDate,
		&rotation.Recurrence.WeekdaysOnly,
		&rotation.NotificationTime,
		&rotation.Timezone,
		&rotation.Cursor,
		&rotation.IsActive,
		&rotation.CreatedAt,
		&rotation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(membersJSON), &rotation.Members); err != nil {
		return nil, fmt.Errorf("failed to unmarshal members: %w", err)
	}

	return rotation, nil
}

func (r *rotationRepo) GetByID(id int64) (*entity.Rotation, error) {
	query := `SELECT ` + rotationColumns + ` FROM rotations WHERE id = ?`

	rotation, err := scanRotation(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation: %w", err)
	}

	return rotation, nil
}

func (r *rotationRepo) GetBySlackChannelID(slackChannelID string) (*entity.Rotation, error) {
	query := `SELECT ` + rotationColumns + ` FROM rotations WHERE slack_channel_id = ?`

	rotation, err := scanRotation(r.db.QueryRow(query, slackChannelID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation by channel: %w", err)
	}

	return rotation, nil
}

func (r *rotationRepo) Update(rotation *entity.Rotation) error {
	query := `
		UPDATE rotations SET
			name = ?,
			members = ?,
			frequency = ?,
			recurrence_interval = ?,
			start_date = ?,
			weekdays_only = ?,
			notification_time = ?,
			timezone = ?,
			cursor = ?,
			is_active = ?,
			updated_at = ?
		WHERE id = ?
	`

	membersJSON, err := json.Marshal(rotation.Members)
	if err != nil {
		return fmt.Errorf("failed to marshal members: %w", err)
	}

	_, err = r.db.Exec(query,
		rotation.Name,
		string(membersJSON),
		rotation.Recurrence.Frequency,
		rotation.Recurrence.Interval,
		rotation.Recurrence.StartDate.Format("2006-01-02"),
		rotation.Recurrence.WeekdaysOnly,
		rotation.NotificationTime,
		rotation.Timezone,
		rotation.Cursor,
		rotation.IsActive,
		time.Now(),
		rotation.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update rotation: %w", err)
	}

	return nil
}

func (r *rotationRepo) ListActive() ([]*entity.Rotation, error) {
	query := `SELECT ` + rotationColumns + ` FROM rotations WHERE is_active = 1 ORDER BY id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rotations: %w", err)
	}
	defer rows.Close()

	var rotations []*entity.Rotation
	for rows.Next() {
		rotation, err := scanRotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rotation: %w", err)
		}
		rotations = append(rotations, rotation)
	}

	return rotations, rows.Err()
}

func (r *rotationRepo) SetActive(id int64, active bool) error {
	query := `UPDATE rotations SET is_active = ?, updated_at = ? WHERE id = ?`

	_, err := r.db.Exec(query, active, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set rotation active flag: %w", err)
	}

	return nil
}

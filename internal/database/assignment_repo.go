package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dutyrota/dutyrota/internal/domain/contract"
	"github.com/dutyrota/dutyrota/internal/domain/entity"
)

type assignmentRepo struct {
	db dbConn
}

func newAssignmentRepo(db dbConn) contract.AssignmentRepo {
	return &assignmentRepo{db: db}
}

const assignmentColumns = `id, rotation_id, slack_team_id, slack_channel_id,
		assigned_date, slack_user_id, status, delivered_at, slack_message_ts,
		skipped, skipped_by, skipped_at, skip_reason, replaced_by_id, created_at`

func (r *assignmentRepo) Create(assignment *entity.Assignment) error {
	query := `
		INSERT INTO assignments (rotation_id, slack_team_id, slack_channel_id,
			assigned_date, slack_user_id, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	// created_at is set here instead of relying on the column default so
	// the chain ordering and the sweep window see one consistent format.
	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}
	if assignment.Status == "" {
		assignment.Status = "pending"
	}

	result, err := r.db.Exec(query,
		assignment.RotationID,
		assignment.SlackTeamID,
		assignment.SlackChannelID,
		assignment.AssignedDate.Format("2006-01-02"),
		assignment.SlackUserID,
		assignment.Status,
		assignment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	assignment.ID = id
	return nil
}

func scanAssignment(row rowScanner) (*entity.Assignment, error) {
	assignment := &entity.Assignment{}

	err := row.Scan(
		&assignment.ID,
		&assignment.RotationID,
		&assignment.SlackTeamID,
		&assignment.SlackChannelID,
		&assignment.AssignedDate,
		&assignment.SlackUserID,
		&assignment.Status,
		&assignment.DeliveredAt,
		&assignment.SlackMessageTS,
		&assignment.Skipped,
		&assignment.SkippedBy,
		&assignment.SkippedAt,
		&assignment.SkipReason,
		&assignment.ReplacedByID,
		&assignment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

func (r *assignmentRepo) GetByID(id int64) (*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`

	assignment, err := scanAssignment(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return assignment, nil
}

func (r *assignmentRepo) ListForDay(rotationID int64, day time.Time) ([]*entity.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE rotation_id = ? AND assigned_date = ?
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, rotationID, day.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments for day: %w", err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *assignmentRepo) MarkDelivered(id int64, messageTS string, at time.Time) error {
	query := `
		UPDATE assignments SET
			status = 'delivered',
			delivered_at = ?,
			slack_message_ts = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, at, messageTS, id)
	if err != nil {
		return fmt.Errorf("failed to mark assignment delivered: %w", err)
	}

	return nil
}

func (r *assignmentRepo) MarkSkipped(id int64, actorID, reason string, replacementID int64, at time.Time) error {
	query := `
		UPDATE assignments SET
			skipped = 1,
			skipped_by = ?,
			skipped_at = ?,
			skip_reason = ?,
			replaced_by_id = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, actorID, at, reason, replacementID, id)
	if err != nil {
		return fmt.Errorf("failed to mark assignment skipped: %w", err)
	}

	return nil
}

func (r *assignmentRepo) ListPendingCreatedBetween(from, to time.Time) ([]*entity.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE status = 'pending'
			AND datetime(created_at) > datetime(?)
			AND datetime(created_at) <= datetime(?)
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending assignments: %w", err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func (r *assignmentRepo) CountPendingOlderThan(cutoff time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM assignments
		WHERE status = 'pending' AND datetime(created_at) <= datetime(?)
	`

	var count int
	if err := r.db.QueryRow(query, cutoff).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pending assignments: %w", err)
	}

	return count, nil
}

func (r *assignmentRepo) ListRecent(rotationID int64, limit int) ([]*entity.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE rotation_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, rotationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent assignments: %w", err)
	}
	defer rows.Close()

	return collectAssignments(rows)
}

func collectAssignments(rows *sql.Rows) ([]*entity.Assignment, error) {
	var assignments []*entity.Assignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}

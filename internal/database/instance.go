package database

import (
	"context"
	"fmt"

	"github.com/dutyrota/dutyrota/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	rotationRepo   contract.RotationRepo
	assignmentRepo contract.AssignmentRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	instance := &instance{
		db: db,
	}
	instance.repoInstances()
	return instance
}

// repoInstances initializes all repositories
func (i *instance) repoInstances() {
	i.rotationRepo = newRotationRepo(i.db.conn)
	i.assignmentRepo = newAssignmentRepo(i.db.conn)
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		rotationRepo:   newRotationRepo(db),
		assignmentRepo: newAssignmentRepo(db),
	}
}

// Rotation returns the rotation repository
func (i *instance) Rotation() contract.RotationRepo {
	return i.rotationRepo
}

// Assignment returns the assignment repository
func (i *instance) Assignment() contract.AssignmentRepo {
	return i.assignmentRepo
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}

package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mrlokans/bookery/internal/entities"
)

// Store failure kinds. Callers match them with errors.Is through *StoreError.
var (
	ErrNotFound   = errors.New("record not found")
	ErrConstraint = errors.New("constraint violation")
	ErrCorrupt    = errors.New("corrupt persisted data")
	ErrBackend    = errors.New("database backend failure")
)

// StoreError is returned by every repository operation that fails.
type StoreError struct {
	Op   string // e.g. "authors.update"
	Kind error
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NotFound reports a mutation or probe that matched no row.
func NotFound(op string) error {
	return &StoreError{Op: op, Kind: ErrNotFound}
}

// Constraint reports a violated integrity rule detected by the application.
func Constraint(op string, err error) error {
	return &StoreError{Op: op, Kind: ErrConstraint, Err: err}
}

// Wrap classifies a driver or gorm error. It returns nil for nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	var serr *StoreError
	if errors.As(err, &serr) {
		return err
	}
	return &StoreError{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) error {
	if errors.Is(err, entities.ErrCorruptValue) {
		return ErrCorrupt
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConstraint
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "23" {
		return ErrConstraint
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return ErrConstraint
	}

	return ErrBackend
}

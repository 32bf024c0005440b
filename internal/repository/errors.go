// Package repository contains the data access components of the service.
// Every component translates calls into parameterized SQL against MySQL
// and maps rows back into model records.
//
// Errors leaving this package fall into two kinds: ErrNotFound when a
// single-row lookup matched nothing, and *DataAccessError for everything
// the store rejected (constraint violations, connectivity, bad SQL).
// Handlers translate both into HTTP responses.
package repository

import (
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// ErrNotFound is returned when a lookup that requires exactly one row
// found none.
var ErrNotFound = errors.New("not found")

// Codes carried by DataAccessError.
const (
	CodeDuplicateKey = "duplicate_key"
	CodeForeignKey   = "foreign_key"
)

// DataAccessError is the single "data access failed" error kind.  Err
// keeps the driver error as its cause so callers can still inspect it
// with errors.As.
type DataAccessError struct {
	Op   string // repository operation, e.g. "category.create"
	Code string // CodeDuplicateKey, CodeForeignKey, mysql_<n> or empty
	Err  error
}

func (e *DataAccessError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: data access failed (%s): %v", e.Op, e.Code, e.Err)
	}
	return fmt.Sprintf("%s: data access failed: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

// IsConstraint reports whether the store rejected the statement because
// of a key constraint.
func (e *DataAccessError) IsConstraint() bool {
	return e.Code == CodeDuplicateKey || e.Code == CodeForeignKey
}

// IsDuplicate reports whether err is a DataAccessError caused by a
// unique key violation.
func IsDuplicate(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae) && dae.Code == CodeDuplicateKey
}

// wrap translates a store error.  sql.ErrNoRows becomes ErrNotFound;
// anything else becomes a *DataAccessError tagged with op.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return &DataAccessError{Op: op, Code: codeOf(err), Err: errors.WithStack(err)}
}

func codeOf(err error) string {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return ""
	}
	switch me.Number {
	case 1062:
		return CodeDuplicateKey
	case 1451, 1452:
		return CodeForeignKey
	default:
		return fmt.Sprintf("mysql_%d", me.Number)
	}
}

package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
)

// errRowMissing aborts an inTx callback whose target row does not exist.
var errRowMissing = errors.New("row missing")

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryList runs q and maps every row with scan.  The result is never
// nil so an empty table serialises as [].
func queryList[T any](ctx context.Context, db *sql.DB, op, q string, scan func(rowScanner) (T, error), args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, wrap(op, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, wrap(op, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(op, err)
	}
	return out, nil
}

// insert runs an INSERT and returns the store-assigned id.
func insert(ctx context.Context, db *sql.DB, op, q string, args ...any) (int64, error) {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return 0, wrap(op, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrap(op, err)
	}
	return id, nil
}

// execAffected runs an UPDATE/DELETE and reports whether any row was
// touched.
func execAffected(ctx context.Context, db *sql.DB, op, q string, args ...any) (bool, error) {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, wrap(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, wrap(op, err)
	}
	return n > 0, nil
}

// inTx runs fn in a transaction and commits when fn succeeds. A callback
// returning errRowMissing rolls back and yields (false, nil).
func inTx(ctx context.Context, db *sql.DB, op string, fn func(*sql.Tx) error) (bool, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, wrap(op, err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, errRowMissing) {
			return false, nil
		}
		return false, err
	}
	if err := tx.Commit(); err != nil {
		return false, wrap(op, err)
	}
	return true, nil
}

// nullableID converts an optional foreign key into a driver argument.
func nullableID(id *int64) any {
	if id == nil {
		return nil
	}
	return *id
}

// idPtr converts a scanned nullable column back into an optional id.
func idPtr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}

package db

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrNoReferencedRow = 1452
)

func mysqlErrorNumber(err error) uint16 {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number
	}
	return 0
}

var foreignKeyPattern = regexp.MustCompile("CONSTRAINT `([^`]+)`")

// foreignKeyName returns the constraint named in a MySQL 1452 error, or "".
func foreignKeyName(err error) string {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) || mysqlErr.Number != mysqlErrNoReferencedRow {
		return ""
	}
	match := foreignKeyPattern.FindStringSubmatch(mysqlErr.Message)
	if match == nil {
		return ""
	}
	return match[1]
}

// withTx runs fn inside a transaction that is committed when fn returns nil
// and rolled back otherwise.
func withTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				zap.L().Warn("failed to rollback transaction", zap.Error(rbErr))
			}
			return
		}
		if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit transaction: %w", err)
		}
	}()

	return fn(tx)
}

func nullable[T any](value *T) any {
	if value == nil {
		return nil
	}
	return *value
}

func ptrFromNullInt(valid bool, value int64) *uint64 {
	if !valid {
		return nil
	}
	id := uint64(value)
	return &id
}

func ptrFromNullString(valid bool, value string) *string {
	if !valid {
		return nil
	}
	return &value
}

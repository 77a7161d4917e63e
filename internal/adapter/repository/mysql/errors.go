package mysql

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/adriangcodes/dev1004-assessment-3/internal/domain/uow"
)

// MySQL server error numbers that mean "try the whole unit again".
const (
	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
)

const mysqlErrDuplicateEntry = 1062

// isDuplicateKey reports whether err is a unique-constraint violation, from
// either gorm's translated sentinel or the raw MySQL error number.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *gomysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrDuplicateEntry
	}
	return false
}

// translate maps store-level failures onto the domain taxonomy: missing rows
// become the aggregate's not-found sentinel, timeouts and lock contention
// become retryable uow.ErrTransientStore, everything else passes through.
func translate(err, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case isTransient(err):
		return fmt.Errorf("%w: %v", uow.ErrTransientStore, err)
	default:
		return err
	}
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var me *gomysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == mysqlErrLockWaitTimeout || me.Number == mysqlErrDeadlock
	}
	return false
}

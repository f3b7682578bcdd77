package db

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

// ErrConnection reports that the record store could not be reached.
var ErrConnection = errors.New("record store unreachable")

// SchemaError reports a table lacking a required column.
type SchemaError struct {
	Table  string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %s: missing column %s", e.Table, e.Column)
}

func connectionError(msg string, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", msg, ErrConnection)
	}
	return fmt.Errorf("%s: %w: %w", msg, ErrConnection, cause)
}

// isConnectionFailure reports whether a query error came from a broken connection.
func isConnectionFailure(err error) bool {
	return errors.Is(err, driver.ErrBadConn) || errors.Is(err, mysql.ErrInvalidConn)
}

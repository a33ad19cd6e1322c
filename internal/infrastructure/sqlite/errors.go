package sqlite

import (
	"errors"
	"strings"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// uniqueViolation reports whether err is a SQLite unique-constraint failure
// and, if so, which column the failing constraint names. The driver formats
// the message as "constraint failed: UNIQUE constraint failed: table.column
// (2067)", with the extended result code appended (primary keys use a
// distinct code, same shape).
func uniqueViolation(err error) (column string, ok bool) {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return "", false
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
	default:
		return "", false
	}
	msg := serr.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		msg = msg[i+2:]
	}
	// Drop the trailing " (code)" suffix so only table.column remains.
	if k := strings.IndexByte(msg, ' '); k >= 0 {
		msg = msg[:k]
	}
	if j := strings.LastIndex(msg, "."); j >= 0 {
		return msg[j+1:], true
	}
	return msg, true
}

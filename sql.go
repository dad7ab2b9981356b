// Package ksuid - sql.go integrates KSUID with database/sql.

package ksuid

import (
	"database/sql/driver"
	"fmt"
)

// Value implements driver.Valuer.
//
// A KSUID is stored as its 27-character text form so that ORDER BY on a TEXT
// or VARCHAR column is chronological. Nil is stored as NULL.
//
// Recommended schema:
//
//	-- PostgreSQL / MySQL
//	CREATE TABLE events (id CHAR(27) PRIMARY KEY, ...);
//
//	-- SQLite
//	CREATE TABLE events (id TEXT PRIMARY KEY, ...);
func (i KSUID) Value() (driver.Value, error) {
	if i.IsNil() {
		return nil, nil
	}
	return i.String(), nil
}

// Scan implements sql.Scanner.
//
// Supported types:
//   - string: 27-character text form
//   - []byte: 20 raw bytes (BLOB/BYTEA columns) or 27-character text
//   - nil: Nil
//
// Malformed values are reported as *CorruptedError.
func (i *KSUID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*i = Nil
		return nil
	case string:
		return i.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == byteLength {
			return i.UnmarshalBinary(v)
		}
		return i.UnmarshalText(v)
	default:
		return fmt.Errorf("ksuid: cannot scan %T into KSUID", src)
	}
}

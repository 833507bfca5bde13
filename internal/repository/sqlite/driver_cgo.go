//go:build cgo

package sqlite

import (
	_ "github.com/mattn/go-sqlite3"
)

func init() {
	// mattn/go-sqlite3 registers itself as "sqlite3".
	availableDrivers["sqlite3"] = true
}

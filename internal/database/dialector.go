package database

import (
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Dialector picks a GORM driver from the shape of the connection string, so a
// single CONNECTION_STRING value selects the backend:
//
//   - "user:pass@tcp(host:3306)/db" or key-value DSNs with Port=3306 → MySQL
//   - URLs starting with postgres:// (or key-value "host=" DSNs)     → Postgres
//   - anything ending in .db, file: URIs, or :memory:                → SQLite
//
// SQLite is the fallback, matching the zero-configuration default DSN.
func Dialector(dsn string) gorm.Dialector {
	switch {
	case isMySQLDSN(dsn):
		return mysql.Open(dsn)
	case isPostgresDSN(dsn):
		return postgres.Open(dsn)
	default:
		return sqlite.Open(dsn)
	}
}

func isMySQLDSN(dsn string) bool {
	if strings.Contains(dsn, "@tcp(") {
		return true
	}
	return strings.Contains(dsn, "Port=3306") ||
		(strings.Contains(dsn, "User=") && strings.Contains(dsn, "Password="))
}

func isPostgresDSN(dsn string) bool {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return true
	}
	return strings.Contains(dsn, "host=") && !strings.Contains(dsn, "file:")
}

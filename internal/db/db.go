package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Pragmas applied to every connection Open returns.
var pragmas = []struct {
	name string
	sql  string
}{
	{"enable foreign keys", `PRAGMA foreign_keys = ON;`},
	{"set busy timeout", `PRAGMA busy_timeout = 5000;`},
}

// Open opens the kcal database at path on a single connection.
func Open(path string) (*sql.DB, error) {
	sqldb, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	sqldb.SetMaxOpenConns(1)
	if err := sqldb.Ping(); err != nil {
		sqldb.Close()
		return nil, fmt.Errorf("ping sqlite database %s: %w", path, err)
	}
	for _, p := range pragmas {
		if _, err := sqldb.Exec(p.sql); err != nil {
			sqldb.Close()
			return nil, fmt.Errorf("%s: %w", p.name, err)
		}
	}
	return sqldb, nil
}

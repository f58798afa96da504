package misslog

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteLog stores misses in a SQLite table ordered by insertion id.
type SQLiteLog struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// one writer at a time
	db.SetMaxOpenConns(1)

	l := &SQLiteLog{db: db}
	if err := l.init(); err != nil {
		db.Close()
		return nil, err
	}

	return l, nil
}

func (l *SQLiteLog) init() error {
	_, err := l.db.Exec(`
		CREATE TABLE IF NOT EXISTS misses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			unit1 TEXT NOT NULL,
			unit2 TEXT NOT NULL,
			unit3 TEXT NOT NULL,
			created_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	return nil
}

func (l *SQLiteLog) Record(ctx context.Context, e Entry) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT INTO misses (unit1, unit2, unit3, created_at) VALUES (?, ?, ?, ?)`,
		e[0], e[1], e[2], time.Now().Unix())
	if err != nil {
		return fmt.Errorf("insert miss: %w", err)
	}

	return nil
}

func (l *SQLiteLog) List(ctx context.Context) (string, error) {
	rows, err := l.db.QueryContext(ctx, `SELECT unit1, unit2, unit3 FROM misses ORDER BY id`)
	if err != nil {
		return "", fmt.Errorf("query misses: %w", err)
	}
	defer rows.Close()

	var lines []string

	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e[0], &e[1], &e[2]); err != nil {
			return "", fmt.Errorf("scan miss: %w", err)
		}

		lines = append(lines, e.String())
	}

	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("iterate misses: %w", err)
	}

	return strings.Join(lines, "\n"), nil
}

func (l *SQLiteLog) Clear(ctx context.Context) error {
	if _, err := l.db.ExecContext(ctx, `DELETE FROM misses`); err != nil {
		return fmt.Errorf("clear misses: %w", err)
	}

	return nil
}

func (l *SQLiteLog) Close() error {
	return l.db.Close()
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/saadjs/kcal-tui/internal/app"
	"github.com/saadjs/kcal-tui/internal/calendar"
	"github.com/saadjs/kcal-tui/internal/db"
	"github.com/saadjs/kcal-tui/internal/model"
)

type SQLiteBackend struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database at path and applies
// pending migrations.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	if err := app.EnsureDir(path); err != nil {
		return nil, err
	}
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		_ = sqldb.Close()
		return nil, err
	}
	return &SQLiteBackend{db: sqldb, path: path}, nil
}

// NewSQLiteBackend wraps an already migrated database.
func NewSQLiteBackend(sqldb *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: sqldb}
}

func (b *SQLiteBackend) DB() *sql.DB  { return b.db }
func (b *SQLiteBackend) Path() string { return b.path }
func (b *SQLiteBackend) Close() error { return b.db.Close() }

func (b *SQLiteBackend) Load(ctx context.Context) (Snapshot, bool, error) {
	snap := Snapshot{Goals: model.DefaultGoals}
	firstRun := false

	err := b.db.QueryRowContext(ctx, `SELECT calories, carbs, protein, fat FROM goals WHERE id = 1`).
		Scan(&snap.Goals.Calories, &snap.Goals.Carbs, &snap.Goals.Protein, &snap.Goals.Fat)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		firstRun = true
	case err != nil:
		return Snapshot{}, false, fmt.Errorf("query goals: %w", err)
	}

	rows, err := b.db.QueryContext(ctx, `SELECT id, record_date FROM daily_records ORDER BY id ASC`)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("query daily records: %w", err)
	}
	byID := map[int64]*model.DailyRecord{}
	for rows.Next() {
		var id int64
		var raw string
		if err := rows.Scan(&id, &raw); err != nil {
			_ = rows.Close()
			return Snapshot{}, false, fmt.Errorf("scan daily record: %w", err)
		}
		d, err := calendar.Parse(raw)
		if err != nil {
			_ = rows.Close()
			return Snapshot{}, false, fmt.Errorf("daily record %d: %w", id, err)
		}
		r := &model.DailyRecord{Date: d}
		byID[id] = r
		snap.Records = append(snap.Records, r)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return Snapshot{}, false, fmt.Errorf("iterate daily records: %w", err)
	}
	_ = rows.Close()

	rows, err = b.db.QueryContext(ctx, `
SELECT record_id, name, calories, carbs, protein, fat, grams
FROM food_entries
ORDER BY record_id ASC, position ASC
`)
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("query food entries: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var recordID int64
		var f model.FoodEntry
		if err := rows.Scan(&recordID, &f.Name, &f.Calories, &f.Carbs, &f.Protein, &f.Fat, &f.Grams); err != nil {
			return Snapshot{}, false, fmt.Errorf("scan food entry: %w", err)
		}
		if r, ok := byID[recordID]; ok {
			r.Foods = append(r.Foods, f)
		}
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, false, fmt.Errorf("iterate food entries: %w", err)
	}
	return snap, firstRun, nil
}

// Save rewrites every row in one transaction.
func (b *SQLiteBackend) Save(ctx context.Context, snap Snapshot) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	if err := saveTx(ctx, tx, snap); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func saveTx(ctx context.Context, tx *sql.Tx, snap Snapshot) error {
	g := snap.Goals
	if _, err := tx.ExecContext(ctx, `
INSERT INTO goals(id, calories, carbs, protein, fat, updated_at)
VALUES(1, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
  calories=excluded.calories, carbs=excluded.carbs, protein=excluded.protein,
  fat=excluded.fat, updated_at=excluded.updated_at
`, g.Calories, g.Carbs, g.Protein, g.Fat); err != nil {
		return fmt.Errorf("save goals: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM food_entries`); err != nil {
		return fmt.Errorf("clear food entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_records`); err != nil {
		return fmt.Errorf("clear daily records: %w", err)
	}

	for _, r := range snap.Records {
		res, err := tx.ExecContext(ctx, `INSERT INTO daily_records(record_date) VALUES(?)`, r.Date.ISO())
		if err != nil {
			return fmt.Errorf("insert daily record %s: %w", r.Date, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("daily record id %s: %w", r.Date, err)
		}
		for pos, f := range r.Foods {
			if _, err := tx.ExecContext(ctx, `
INSERT INTO food_entries(record_id, position, name, calories, carbs, protein, fat, grams)
VALUES(?, ?, ?, ?, ?, ?, ?, ?)
`, id, pos, f.Name, f.Calories, f.Carbs, f.Protein, f.Fat, f.Grams); err != nil {
				return fmt.Errorf("insert food entry %s #%d: %w", r.Date, pos, err)
			}
		}
	}
	return nil
}

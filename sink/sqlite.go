package sink

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/tsawler/rollcall/model"
)

//go:embed schema.sql
var Schema string

const (
	deleteTerm = `DELETE FROM officeholder_terms WHERE state = ? AND name = ? AND start_year IS ?`
	insertTerm = `INSERT INTO officeholder_terms
    (state, name, party, start_year, end_year, start_date, end_date, is_acting, is_incumbent, end_reason)
    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	selectTerms = `SELECT state, name, party, start_year, end_year, start_date, end_date, is_acting, is_incumbent, end_reason
    FROM officeholder_terms WHERE state = ? ORDER BY start_year, name`
)

// SQLite writes records to a SQLite database. A record replaces any stored
// record with the same state, name and start year.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at path and applies
// the schema. Use ":memory:" for a private in-memory database.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// One connection: writes are serialized and ":memory:" stays one database.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Write upserts records in one transaction
func (s *SQLite) Write(ctx context.Context, records []model.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	del, err := tx.PrepareContext(ctx, deleteTerm)
	if err != nil {
		return err
	}
	defer del.Close()
	ins, err := tx.PrepareContext(ctx, insertTerm)
	if err != nil {
		return err
	}
	defer ins.Close()

	for _, r := range records {
		if _, err := del.ExecContext(ctx, r.State, r.Name, nullInt(r.StartYear)); err != nil {
			return fmt.Errorf("replacing %q: %w", r.Name, err)
		}
		_, err := ins.ExecContext(ctx,
			r.State, r.Name, nullString(r.Party), nullInt(r.StartYear), nullInt(r.EndYear),
			nullString(r.StartDate), nullString(r.EndDate), boolInt(r.IsActing), boolInt(r.IsIncumbent), r.EndReason)
		if err != nil {
			return fmt.Errorf("inserting %q: %w", r.Name, err)
		}
	}
	return tx.Commit()
}

// Records returns the stored records of one jurisdiction ordered by start
// year and name.
func (s *SQLite) Records(ctx context.Context, state string) ([]model.Record, error) {
	rows, err := s.db.QueryContext(ctx, selectTerms, state)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		var r model.Record
		err := rows.Scan(&r.State, &r.Name, &r.Party, &r.StartYear, &r.EndYear,
			&r.StartDate, &r.EndDate, &r.IsActing, &r.IsIncumbent, &r.EndReason)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

func nullInt(p *int) any {
	if p == nil {
		return nil
	}
	return int64(*p)
}

func nullString(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

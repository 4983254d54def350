package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"jobsift-engine/internal/domain"
)

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	// Key fields are real columns for querying; everything else rides in the
	// JSON payload so the schema doesn't chase the posting struct.
	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS postings (
  rowid_pk INTEGER PRIMARY KEY AUTOINCREMENT,
  id TEXT NOT NULL DEFAULT '',
  site TEXT NOT NULL DEFAULT '',
  title TEXT NOT NULL DEFAULT '',
  company TEXT NOT NULL DEFAULT '',
  job_url_direct TEXT NOT NULL DEFAULT '',
  date_posted TEXT NOT NULL DEFAULT '',
  payload TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS snapshots (
  rowid_pk INTEGER PRIMARY KEY AUTOINCREMENT,
  run_at TEXT NOT NULL,
  count INTEGER NOT NULL,
  payload TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_postings_date
ON postings(date_posted);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// LoadAll returns every archived posting, newest first.
func (a *Archive) LoadAll(ctx context.Context) ([]domain.Posting, error) {
	rows, err := a.Pool.QueryContext(ctx, `
SELECT payload FROM postings
ORDER BY date_posted DESC, rowid_pk ASC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Posting
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, err
		}
		var p domain.Posting
		if err := json.Unmarshal([]byte(payload), &p); err != nil {
			return nil, fmt.Errorf("decode archived posting: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ReplaceAll overwrites the archive with the merged posting set, optionally
// recording the set as a snapshot in the same transaction. This is the only
// write path; callers merge in memory and hand over the full result.
func (a *Archive) ReplaceAll(ctx context.Context, ps []domain.Posting, snapshot bool) error {
	tx, err := a.Pool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM postings;`); err != nil {
		return fmt.Errorf("clear archive: %w", err)
	}

	for _, p := range ps {
		payload, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("encode posting %q: %w", p.ID, err)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO postings (id, site, title, company, job_url_direct, date_posted, payload)
VALUES (?, ?, ?, ?, ?, ?, ?);`,
			p.ID, p.Site, p.Title, p.Company, p.JobURLDirect, p.DateString(), string(payload),
		); err != nil {
			return fmt.Errorf("insert posting %q: %w", p.ID, err)
		}
	}

	if snapshot {
		payload, err := json.Marshal(ps)
		if err != nil {
			return fmt.Errorf("encode snapshot: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO snapshots (run_at, count, payload)
VALUES (?, ?, ?);`,
			time.Now().UTC().Format(time.RFC3339), len(ps), string(payload),
		); err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
	}

	return tx.Commit()
}

// CleanupOld deletes postings older than the given number of days and
// returns how many went. Zero days means keep everything.
func (a *Archive) CleanupOld(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, nil
	}
	res, err := a.Pool.ExecContext(ctx, `
DELETE FROM postings
WHERE date_posted != '' AND date_posted < ?;
`, time.Now().UTC().AddDate(0, 0, -days).Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("cleanup old postings: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Snapshots lists snapshot metadata, newest first.
func (a *Archive) Snapshots(ctx context.Context) ([]Snapshot, error) {
	rows, err := a.Pool.QueryContext(ctx, `
SELECT rowid_pk, run_at, count FROM snapshots
ORDER BY rowid_pk DESC;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Snapshot
	for rows.Next() {
		var s Snapshot
		if err := rows.Scan(&s.ID, &s.RunAt, &s.Count); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

type Snapshot struct {
	ID    int64  `json:"id"`
	RunAt string `json:"run_at"`
	Count int    `json:"count"`
}

// Package store persists the posting archive: one global accumulator table
// plus per-run snapshots, in a sqlite file. Writes replace the whole archive
// rather than upserting rows; the archive contract is single-writer, so Open
// takes a sidecar file lock and a second engine pointed at the same data dir
// fails fast instead of interleaving writes.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

type Archive struct {
	Pool *sql.DB
	lock *flock.Flock
}

func Open(path string) (*Archive, error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock archive: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("archive %s is locked by another process", path)
	}

	// modernc sqlite DSN: file:foo.db?_pragma=busy_timeout(5000)
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	pool, err := sql.Open("sqlite", dsn)
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	pool.SetMaxOpenConns(1) // sqlite wants a single writer
	pool.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		_ = pool.Close()
		_ = lock.Unlock()
		return nil, err
	}

	if err := Migrate(pool); err != nil {
		_ = pool.Close()
		_ = lock.Unlock()
		return nil, err
	}

	return &Archive{Pool: pool, lock: lock}, nil
}

func (a *Archive) Close() error {
	if a == nil {
		return nil
	}
	var err error
	if a.Pool != nil {
		err = a.Pool.Close()
	}
	if a.lock != nil {
		if uerr := a.lock.Unlock(); err == nil {
			err = uerr
		}
	}
	return err
}

package database

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Process-wide database handle. Connection setup is expensive, so every
// caller in the process shares one lazily-established pool instead of
// opening its own.
var (
	sharedMu   sync.Mutex
	sharedDB   *PostgresDB
	sharedWait chan struct{} // non-nil while a connect attempt is in flight
	sharedErr  error
)

// Shared returns the cached database handle, connecting lazily on first
// use. Concurrent first callers wait on the single in-flight connect
// attempt instead of racing to create pools of their own. A failed
// attempt clears the cached state so the next call retries cleanly.
func Shared(ctx context.Context, cfg *DBConfig) (*PostgresDB, error) {
	sharedMu.Lock()

	if sharedDB != nil {
		db := sharedDB
		sharedMu.Unlock()
		return db, nil
	}

	if sharedWait != nil {
		// Another goroutine is connecting; wait for its outcome.
		wait := sharedWait
		sharedMu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		sharedMu.Lock()
		db, err := sharedDB, sharedErr
		sharedMu.Unlock()
		if db != nil {
			return db, nil
		}
		return nil, err
	}

	// This goroutine owns the connect attempt.
	wait := make(chan struct{})
	sharedWait = wait
	sharedMu.Unlock()

	db := NewPostgresDB(cfg)
	err := db.Connect(ctx)

	sharedMu.Lock()
	if err != nil {
		log.Error().Err(err).Msg("[DATABASE] Shared connection attempt failed")
		sharedDB = nil
		sharedErr = err
	} else {
		sharedDB = db
		sharedErr = nil
	}
	sharedWait = nil
	close(wait)
	sharedMu.Unlock()

	if err != nil {
		return nil, err
	}
	return db, nil
}

// ResetShared drops the cached handle. Used after a fatal pool error and
// by tests; the next Shared call reconnects.
func ResetShared() {
	sharedMu.Lock()
	defer sharedMu.Unlock()

	if sharedDB != nil {
		sharedDB.Close()
	}
	sharedDB = nil
	sharedErr = nil
}

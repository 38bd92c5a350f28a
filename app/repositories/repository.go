package repositories

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Storage drivers accepted by Open.
const (
	DriverMemory = "memory"
	DriverBadger = "badger"
)

// UnknownDriverError is returned by Open for an unsupported driver name.
type UnknownDriverError struct {
	Driver string
}

func (err UnknownDriverError) Error() string {
	return fmt.Sprintf("unknown storage driver %q", err.Driver)
}

// Open builds the post repository for the given driver. Both drivers keep
// data in process memory only; nothing survives a restart.
func Open(driver string) (PostRepository, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryPostRepository(), nil
	case DriverBadger:
		db, err := OpenInMemoryBadger()
		if err != nil {
			return nil, err
		}
		return NewBadgerPostRepository(db), nil
	default:
		return nil, UnknownDriverError{Driver: driver}
	}
}

// OpenInMemoryBadger opens a badger instance that never touches the disk.
func OpenInMemoryBadger() (*badger.DB, error) {
	opts := badger.DefaultOptions("").
		WithInMemory(true).
		WithLogger(nil).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory badger: %w", err)
	}
	return db, nil
}

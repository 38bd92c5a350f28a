package repositories

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix = "post:"

	// Sequence keys for auto-incrementing IDs
	PostSeqKey = "seq:post"
)

// postKey zero-pads the id so badger's lexical key order matches id order,
// which is also insertion order.
func postKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%020d", PostKeyPrefix, id))
}

// getNextID gets the next available ID for a given sequence key. The counter
// lives under its own key, so deleting the highest post never frees its ID.
func getNextID(txn *badger.Txn, seqKey string) (int, error) {
	var id uint64

	item, err := txn.Get([]byte(seqKey))
	switch {
	case errors.Is(err, badger.ErrKeyNotFound):
		id = 1
	case err != nil:
		return 0, fmt.Errorf("failed to read sequence %q: %w", seqKey, err)
	default:
		err = item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("corrupt sequence value of %d bytes", len(val))
			}
			id = binary.BigEndian.Uint64(val) + 1
			return nil
		})
		if err != nil {
			return 0, err
		}
	}

	idBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(idBytes, id)
	if err := txn.Set([]byte(seqKey), idBytes); err != nil {
		return 0, fmt.Errorf("failed to store sequence %q: %w", seqKey, err)
	}

	return int(id), nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity any) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity any) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}

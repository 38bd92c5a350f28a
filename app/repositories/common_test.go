package repositories

import (
	"testing"

	"blogpress/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *badger.DB {
	t.Helper()

	db, err := OpenInMemoryBadger()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestGetNextID(t *testing.T) {
	db := setupTestDB(t)

	t.Run("first ID", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, PostSeqKey)
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("sequential IDs", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			for i := 2; i <= 5; i++ {
				id, err := getNextID(txn, PostSeqKey)
				assert.NoError(t, err)
				assert.Equal(t, i, id)
			}
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("different sequence keys", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, "seq:other")
			assert.NoError(t, err)
			assert.Equal(t, 1, id, "other sequence should start from 1")
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("persists across transactions", func(t *testing.T) {
		err := db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, "test:seq")
			assert.NoError(t, err)
			assert.Equal(t, 1, id)
			return nil
		})
		assert.NoError(t, err)

		err = db.Update(func(txn *badger.Txn) error {
			id, err := getNextID(txn, "test:seq")
			assert.NoError(t, err)
			assert.Equal(t, 2, id)
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("corrupt value", func(t *testing.T) {
		require.NoError(t, db.Update(func(txn *badger.Txn) error {
			return txn.Set([]byte("seq:broken"), []byte{1, 2, 3})
		}))

		err := db.Update(func(txn *badger.Txn) error {
			_, err := getNextID(txn, "seq:broken")
			return err
		})
		assert.Error(t, err)
	})
}

func TestPostKeyOrdering(t *testing.T) {
	assert.Less(t, string(postKey(9)), string(postKey(10)))
	assert.Less(t, string(postKey(99)), string(postKey(100)))
	assert.Equal(t, "post:00000000000000000042", string(postKey(42)))
}

func TestMarshalEntity(t *testing.T) {
	post := models.NewPost(models.PostInput{Title: "Test Post", Content: "Test Content", Tags: "a,b"})
	post.ID = 7
	require.NoError(t, post.AddComment(&models.Comment{Name: "Bob", Text: "Nice!"}))

	data, err := marshalEntity(post)
	require.NoError(t, err)

	var decoded models.Post
	require.NoError(t, unmarshalEntity(data, &decoded))
	assert.Equal(t, post.ID, decoded.ID)
	assert.Equal(t, post.Tags, decoded.Tags)
	require.Len(t, decoded.Comments, 1)
	assert.Equal(t, "Bob", decoded.Comments[0].Name)

	assert.Error(t, unmarshalEntity([]byte("{not json"), &decoded))
}

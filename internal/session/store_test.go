package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetOrCreate(t *testing.T) {
	store := NewStore()

	assert.Nil(t, store.Get(1))

	sess := store.GetOrCreate(1, "alice", StateChoosingCategory)
	assert.Equal(t, StateChoosingCategory, sess.State)
	assert.Equal(t, "alice", sess.Username)
	assert.False(t, sess.UpdatedAt.IsZero())

	sess.State = StateSelectingDates
	again := store.GetOrCreate(1, "alice", StateChoosingCategory)
	assert.Same(t, sess, again)
	assert.Equal(t, StateSelectingDates, again.State)
	assert.Equal(t, 1, store.Len())
}

func TestStore_Reset(t *testing.T) {
	store := NewStore()

	old := store.GetOrCreate(1, "alice", StateChoosingCategory)
	old.Contact = "+56 9 1234 5678"

	fresh := store.Reset(1, "alice", StateSelectingRating)
	assert.NotSame(t, old, fresh)
	assert.Equal(t, StateSelectingRating, fresh.State)
	assert.Empty(t, fresh.Contact)
}

func TestStore_Delete(t *testing.T) {
	store := NewStore()
	store.GetOrCreate(1, "alice", StateChoosingCategory)

	store.Delete(1)
	assert.Nil(t, store.Get(1))
	assert.Equal(t, 0, store.Len())

	// deleting an absent session is a no-op
	store.Delete(42)
}

func TestStore_Reap(t *testing.T) {
	store := NewStore()
	current := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.GetOrCreate(1, "alice", StateChoosingCategory)
	current = current.Add(10 * time.Minute)
	store.GetOrCreate(2, "bob", StateChoosingCategory)
	current = current.Add(25 * time.Minute)

	removed := store.Reap(30 * time.Minute)
	assert.Equal(t, 1, removed)
	assert.Nil(t, store.Get(1))
	assert.NotNil(t, store.Get(2))
}

package service

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spaceai/internal/model"
	"spaceai/internal/seed"
)

func newTestSessionStore() *SessionStore {
	return NewSessionStore(func() *Session {
		return &Session{Active: seed.Corpus()}
	})
}

func TestSessionStore_GetCreatesFresh(t *testing.T) {
	store := newTestSessionStore()

	sess := store.Get("a")
	require.NotNil(t, sess)
	assert.Len(t, sess.Active, len(seed.Corpus()))
	assert.Empty(t, sess.Conversation.Utterances)

	// Same id returns the same session.
	assert.Same(t, sess, store.Get("a"))
	// Different ids are independent.
	assert.NotSame(t, sess, store.Get("b"))
}

func TestSessionStore_Reset(t *testing.T) {
	store := newTestSessionStore()

	sess := store.Get("a")
	sess.Conversation = model.Conversation{
		Utterances: []string{"cozy house in portland"},
		Location:   &model.Location{City: "Portland", State: "OR"},
	}
	sess.Active = sess.Active[:1]
	store.Put("a", sess)

	fresh := store.Reset("a")
	assert.NotSame(t, sess, fresh)
	assert.Empty(t, fresh.Conversation.Utterances)
	assert.Nil(t, fresh.Conversation.Location)
	assert.Len(t, fresh.Active, len(seed.Corpus()))
	assert.Same(t, fresh, store.Get("a"))
}

func TestSessionStore_ConcurrentGet(t *testing.T) {
	store := newTestSessionStore()

	var wg sync.WaitGroup
	sessions := make([]*Session, 16)
	for i := range sessions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessions[i] = store.Get("shared")
		}(i)
	}
	wg.Wait()

	for _, sess := range sessions[1:] {
		assert.Same(t, sessions[0], sess)
	}
}

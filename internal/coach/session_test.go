package coach

import (
	"context"
	"testing"
	"time"

	"github.com/rittik987/alex.ai/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionKeyString(t *testing.T) {
	key := SessionKey{UserID: "u1", Topic: "reactjs-deep-dive"}
	assert.Equal(t, "u1:reactjs-deep-dive", key.String())
}

func TestMemoryStoreGetAbsent(t *testing.T) {
	store := NewMemoryStore()

	state, err := store.Get(context.Background(), SessionKey{UserID: "u1", Topic: "t1"})
	require.NoError(t, err)
	assert.Nil(t, state)
}

func TestMemoryStorePutGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := SessionKey{UserID: "u1", Topic: "t1"}

	in := &model.SessionState{
		Topic:                "t1",
		CurrentQuestionIndex: 2,
		Turns: []model.ConversationTurn{
			{Role: model.TurnUser, Content: "hello", QuestionIndex: 2, Timestamp: time.Now()},
		},
	}
	require.NoError(t, store.Put(ctx, key, in))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.CurrentQuestionIndex)
	assert.Len(t, got.Turns, 1)

	require.NoError(t, store.Delete(ctx, key))
	got, err = store.Get(ctx, key)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreRejectsNilState(t *testing.T) {
	store := NewMemoryStore()
	err := store.Put(context.Background(), SessionKey{UserID: "u1", Topic: "t1"}, nil)
	assert.Error(t, err)
}

func TestMemoryStoreCopiesState(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	key := SessionKey{UserID: "u1", Topic: "t1"}

	in := &model.SessionState{
		Topic: "t1",
		Turns: []model.ConversationTurn{{Role: model.TurnUser, Content: "original"}},
	}
	require.NoError(t, store.Put(ctx, key, in))

	// Mutating the caller's copy must not reach the stored state.
	in.Turns[0].Content = "mutated"
	in.CurrentQuestionIndex = 9

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Turns[0].Content)
	assert.Zero(t, got.CurrentQuestionIndex)

	// And mutating a returned copy must not reach the store either.
	got.Turns[0].Content = "mutated again"
	again, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Turns[0].Content)
}

func TestMemoryStoreKeyIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	keyA := SessionKey{UserID: "alice", Topic: "problem-solving-dsa"}
	keyB := SessionKey{UserID: "bob", Topic: "problem-solving-dsa"}
	keyC := SessionKey{UserID: "alice", Topic: "reactjs-deep-dive"}

	require.NoError(t, store.Put(ctx, keyA, &model.SessionState{CurrentQuestionIndex: 3}))
	require.NoError(t, store.Put(ctx, keyB, &model.SessionState{CurrentQuestionIndex: 1}))

	a, err := store.Get(ctx, keyA)
	require.NoError(t, err)
	assert.Equal(t, 3, a.CurrentQuestionIndex)

	b, err := store.Get(ctx, keyB)
	require.NoError(t, err)
	assert.Equal(t, 1, b.CurrentQuestionIndex)

	c, err := store.Get(ctx, keyC)
	require.NoError(t, err)
	assert.Nil(t, c)
}

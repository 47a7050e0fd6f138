package sessionstore

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/session"
)

func TestMemoryStoreSessions(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetSession(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)

	sess := session.New([]question.Question{{
		ID:            "q1",
		Prompt:        "Say yes.",
		Type:          question.TypeShortAnswer,
		CorrectAnswer: "yes",
		Points:        1,
	}})
	require.NoError(t, sess.Start())

	state := sess.Snapshot()
	require.NoError(t, store.SaveSession(ctx, state))

	got, err := store.GetSession(ctx, sess.ID())
	require.NoError(t, err)
	assert.Equal(t, state.ID, got.ID)
	assert.Equal(t, state.Status, got.Status)
	assert.Len(t, got.Questions, 1)
}

func TestMemoryStoreSets(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.GetSet(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrSetNotFound)

	id := uuid.New()
	set := question.Set{
		Title: "Sample",
		Questions: []question.Question{{
			ID:            "q1",
			Prompt:        "2+2?",
			Type:          question.TypeShortAnswer,
			CorrectAnswer: "4",
			Points:        1,
			Category:      question.DefaultCategory,
		}},
	}
	require.NoError(t, store.SaveSet(ctx, id, set))

	got, err := store.GetSet(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Sample", got.Title)
	assert.Len(t, got.Questions, 1)
}

// Package sessionstore carries serialized test-session and question-set
// state between HTTP requests. State is ephemeral: entries expire and an
// abandoned session is simply garbage.
package sessionstore

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/session"
)

var (
	// ErrSessionNotFound indicates an unknown or expired session ID.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSetNotFound indicates an unknown or expired question-set ID.
	ErrSetNotFound = errors.New("question set not found")
)

// Store persists session snapshots and uploaded question sets.
type Store interface {
	SaveSession(ctx context.Context, state session.State) error
	GetSession(ctx context.Context, id uuid.UUID) (session.State, error)
	SaveSet(ctx context.Context, id uuid.UUID, set question.Set) error
	GetSet(ctx context.Context, id uuid.UUID) (question.Set, error)
}

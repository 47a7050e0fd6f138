package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quizdesk/quizdesk/internal/question"
)

// State is the serializable form of a session. The web front-end stores it
// between requests so both front-ends exercise the same state machine and
// scoring path.
type State struct {
	ID         uuid.UUID           `json:"id"`
	Questions  []question.Question `json:"questions"`
	Results    []Answer            `json:"results"`
	Index      int                 `json:"index"`
	Status     string              `json:"status"`
	Randomized bool                `json:"randomized"`
	StartedAt  time.Time           `json:"started_at"`
	FinishedAt time.Time           `json:"finished_at,omitzero"`
	Title      string              `json:"title,omitempty"`
}

// Snapshot captures the session for serialization.
func (s *Session) Snapshot() State {
	return State{
		ID:         s.id,
		Questions:  append([]question.Question(nil), s.questions...),
		Results:    append([]Answer(nil), s.results...),
		Index:      s.index,
		Status:     s.status,
		Randomized: s.randomized,
		StartedAt:  s.startedAt,
		FinishedAt: s.finishedAt,
	}
}

// Restore rebuilds a session from a snapshot.
func Restore(state State) (*Session, error) {
	switch state.Status {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
	default:
		return nil, fmt.Errorf("unknown session status %q", state.Status)
	}
	if state.Index < 0 || state.Index > len(state.Questions) {
		return nil, fmt.Errorf("index %d outside question range", state.Index)
	}
	return &Session{
		id:         state.ID,
		questions:  append([]question.Question(nil), state.Questions...),
		results:    append([]Answer(nil), state.Results...),
		index:      state.Index,
		status:     state.Status,
		randomized: state.Randomized,
		startedAt:  state.StartedAt,
		finishedAt: state.FinishedAt,
	}, nil
}

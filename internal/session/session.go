// Package session implements the test-session state machine: a linear walk
// over a fixed question sequence that scores each submitted answer and
// aggregates the final result.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/scoring"
)

// Lifecycle statuses. Transitions are linear with no re-entry:
// NotStarted -> InProgress -> Completed.
const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

var (
	// ErrAlreadyStarted is returned by Start on a session past NotStarted.
	ErrAlreadyStarted = errors.New("session already started")
	// ErrOutOfSequence is returned when an operation arrives outside its
	// valid lifecycle window: submitting before Start, submitting past the
	// last question, or finishing a session that never started.
	ErrOutOfSequence = errors.New("operation out of sequence")
	// ErrAlreadyFinished is returned by Finish on a completed session.
	ErrAlreadyFinished = errors.New("session already finished")
)

// Session is one user's attempt at a question set. It is owned exclusively
// by its caller; there is no shared state between sessions.
type Session struct {
	id         uuid.UUID
	questions  []question.Question
	results    []Answer
	index      int
	status     string
	randomized bool
	startedAt  time.Time
	finishedAt time.Time
}

// New builds a session over the given question order. Callers wanting a
// random order shuffle before construction.
func New(questions []question.Question) *Session {
	return &Session{
		id:        uuid.New(),
		questions: questions,
		results:   make([]Answer, 0, len(questions)),
		status:    StatusNotStarted,
	}
}

// NewRandomized shuffles the questions and marks the resulting session so
// exports record that the order was permuted.
func NewRandomized(questions []question.Question) *Session {
	s := New(question.Shuffle(questions))
	s.randomized = true
	return s
}

// ID identifies the session across serialized snapshots.
func (s *Session) ID() uuid.UUID { return s.id }

// Status reports the current lifecycle status.
func (s *Session) Status() string { return s.status }

// Start records the start timestamp and moves the session in progress.
func (s *Session) Start() error {
	if s.status != StatusNotStarted {
		return ErrAlreadyStarted
	}
	s.status = StatusInProgress
	s.startedAt = time.Now().UTC()
	return nil
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (question.Question, error) {
	if s.status != StatusInProgress || s.index >= len(s.questions) {
		return question.Question{}, ErrOutOfSequence
	}
	return s.questions[s.index], nil
}

// SubmitAnswer scores raw against the current question, appends the result
// and advances. The second return reports whether questions remain.
func (s *Session) SubmitAnswer(raw string) (Answer, bool, error) {
	if s.status != StatusInProgress || s.index >= len(s.questions) {
		return Answer{}, false, ErrOutOfSequence
	}

	q := s.questions[s.index]
	correct, points := scoring.Score(q, raw)
	result := Answer{
		QuestionID:    q.ID,
		Question:      q.Prompt,
		UserAnswer:    raw,
		CorrectAnswer: q.CorrectAnswer,
		IsCorrect:     correct,
		PointsEarned:  points,
		MaxPoints:     q.Points,
		Explanation:   q.Explanation,
	}
	s.results = append(s.results, result)
	s.index++
	return result, s.index < len(s.questions), nil
}

// Finish records the end timestamp, completes the session and computes the
// aggregate summary. Valid exactly once, after Start.
func (s *Session) Finish() (Summary, error) {
	switch s.status {
	case StatusCompleted:
		return Summary{}, ErrAlreadyFinished
	case StatusNotStarted:
		return Summary{}, ErrOutOfSequence
	}
	s.status = StatusCompleted
	s.finishedAt = time.Now().UTC()
	return s.summarize(), nil
}

// Summary recomputes the aggregate for a completed session.
func (s *Session) Summary() (Summary, error) {
	if s.status != StatusCompleted {
		return Summary{}, ErrOutOfSequence
	}
	return s.summarize(), nil
}

func (s *Session) summarize() Summary {
	totalPoints := 0
	for _, r := range s.results {
		totalPoints += r.PointsEarned
	}
	// Max points reflect the session's own question slice; a sampled
	// subset counts only what was actually asked.
	maxPoints := 0
	for _, q := range s.questions {
		maxPoints += q.Points
	}
	percentage := 0.0
	if maxPoints > 0 {
		percentage = float64(totalPoints) / float64(maxPoints) * 100
	}
	return Summary{
		TotalPoints: totalPoints,
		MaxPoints:   maxPoints,
		Percentage:  percentage,
		Duration:    s.finishedAt.Sub(s.startedAt),
		Randomized:  s.randomized,
		Results:     append([]Answer(nil), s.results...),
	}
}

// Remaining reports how many questions are still unanswered.
func (s *Session) Remaining() int {
	return len(s.questions) - s.index
}

// Progress returns the 0-based position and the question count.
func (s *Session) Progress() (int, int) {
	return s.index, len(s.questions)
}

// Results returns the answers recorded so far, in submission order.
func (s *Session) Results() []Answer {
	return append([]Answer(nil), s.results...)
}

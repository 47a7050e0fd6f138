package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quizdesk/quizdesk/internal/metrics"
	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/session"
	"github.com/quizdesk/quizdesk/internal/sessionstore"
	httperrors "github.com/quizdesk/quizdesk/pkg/http/errors"
)

// Handlers exposes the testing flow over HTTP. All per-request session
// state lives in the store as serialized session snapshots, so the web
// flow runs through the same state machine as the terminal flow.
type Handlers struct {
	store    sessionstore.Store
	metrics  *metrics.Metrics
	logger   zerolog.Logger
	maxBytes int64
}

// NewHandlers creates the HTTP handler set.
func NewHandlers(store sessionstore.Store, m *metrics.Metrics, logger zerolog.Logger, maxBytes int64) *Handlers {
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	return &Handlers{
		store:    store,
		metrics:  m,
		logger:   logger.With().Str("component", "http_handlers").Logger(),
		maxBytes: maxBytes,
	}
}

// questionView is a question as shown during an active test: the correct
// answer and explanation are withheld.
type questionView struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Points   int      `json:"points"`
	Category string   `json:"category"`
}

func viewOf(q question.Question) questionView {
	return questionView{
		ID:       q.ID,
		Question: q.Prompt,
		Type:     q.Type,
		Options:  q.Options,
		Points:   q.Points,
		Category: q.Category,
	}
}

// UploadSet handles POST /v1/sets: a multipart upload of a JSON question
// set. Load failures come back as 4xx so the client can re-prompt.
func (h *Handlers) UploadSet(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		httperrors.RespondError(w, http.StatusRequestEntityTooLarge, httperrors.ErrCodeUploadTooLarge, "upload exceeds size limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeMissingField, "no file selected", "file")
		return
	}
	defer file.Close()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".json") {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "only .json question sets are accepted")
		return
	}

	set, err := question.Parse(file)
	if err != nil {
		if errors.Is(err, question.ErrMalformed) {
			httperrors.RespondError(w, http.StatusUnprocessableEntity, httperrors.ErrCodeSetMalformed, err.Error())
			return
		}
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("question set read failed")
		httperrors.RespondInternalError(w, "failed to read question set")
		return
	}

	setID := uuid.New()
	if err := h.store.SaveSet(r.Context(), setID, *set); err != nil {
		h.logger.Error().Err(err).Msg("store question set failed")
		httperrors.RespondInternalError(w, "failed to store question set")
		return
	}
	h.metrics.SetsLoaded.Inc()

	h.respondJSON(w, http.StatusCreated, map[string]any{
		"set_id":  setID.String(),
		"summary": set.Summarize(),
	})
}

// GetSetSummary handles GET /v1/sets/{id}.
func (h *Handlers) GetSetSummary(w http.ResponseWriter, r *http.Request) {
	setID, ok := h.pathID(w, r)
	if !ok {
		return
	}
	set, err := h.store.GetSet(r.Context(), setID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSetNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeSetNotFound, "question set not found")
			return
		}
		h.logger.Error().Err(err).Msg("fetch question set failed")
		httperrors.RespondInternalError(w, "failed to fetch question set")
		return
	}
	h.respondJSON(w, http.StatusOK, set.Summarize())
}

type createSessionRequest struct {
	SetID     string `json:"set_id"`
	Randomize bool   `json:"randomize"`
	Sample    int    `json:"sample,omitempty"`
}

// CreateSession handles POST /v1/sessions: builds a session over a loaded
// set, starts it and persists the first snapshot.
func (h *Handlers) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	setID, err := uuid.Parse(req.SetID)
	if err != nil {
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "set_id must be a UUID", "set_id")
		return
	}

	set, err := h.store.GetSet(r.Context(), setID)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSetNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeSetNotFound, "question set not found")
			return
		}
		h.logger.Error().Err(err).Msg("fetch question set failed")
		httperrors.RespondInternalError(w, "failed to fetch question set")
		return
	}

	questions := set.Questions
	if req.Sample > 0 && req.Sample < len(questions) {
		questions = question.Sample(questions, req.Sample)
	}

	var sess *session.Session
	if req.Randomize {
		sess = session.NewRandomized(questions)
	} else {
		sess = session.New(questions)
	}
	if err := sess.Start(); err != nil {
		h.logger.Error().Err(err).Msg("session start failed")
		httperrors.RespondInternalError(w, "failed to start session")
		return
	}

	state := sess.Snapshot()
	state.Title = set.Title
	if err := h.store.SaveSession(r.Context(), state); err != nil {
		h.logger.Error().Err(err).Msg("save session failed")
		httperrors.RespondInternalError(w, "failed to save session")
		return
	}
	h.metrics.SessionsStarted.Inc()

	_, total := sess.Progress()
	h.respondJSON(w, http.StatusCreated, map[string]any{
		"session_id":      sess.ID().String(),
		"title":           set.Title,
		"total_questions": total,
		"randomized":      req.Randomize,
	})
}

// GetCurrentQuestion handles GET /v1/sessions/{id}/question.
func (h *Handlers) GetCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	sess, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	q, err := sess.Current()
	if err != nil {
		httperrors.RespondConflict(w, httperrors.ErrCodeOutOfSequence, "no question awaiting an answer")
		return
	}
	index, total := sess.Progress()
	h.respondJSON(w, http.StatusOK, map[string]any{
		"title":    state.Title,
		"question": viewOf(q),
		"progress": index + 1,
		"total":    total,
	})
}

type submitAnswerRequest struct {
	Answer string `json:"answer"`
}

// SubmitAnswer handles POST /v1/sessions/{id}/answers: scores the current
// question, persists the advanced snapshot and returns feedback.
func (h *Handlers) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sess, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	var req submitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	result, hasMore, err := sess.SubmitAnswer(req.Answer)
	if err != nil {
		httperrors.RespondConflict(w, httperrors.ErrCodeOutOfSequence, "session accepts no further answers")
		return
	}
	h.metrics.ObserveAnswer(result.IsCorrect)

	next := sess.Snapshot()
	next.Title = state.Title
	if err := h.store.SaveSession(r.Context(), next); err != nil {
		h.logger.Error().Err(err).Msg("save session failed")
		httperrors.RespondInternalError(w, "failed to save session")
		return
	}

	index, total := sess.Progress()
	h.respondJSON(w, http.StatusOK, map[string]any{
		"is_correct":    result.IsCorrect,
		"points_earned": result.PointsEarned,
		"explanation":   result.Explanation,
		"has_more":      hasMore,
		"progress":      index,
		"total":         total,
	})
}

// FinishSession handles POST /v1/sessions/{id}/finish.
func (h *Handlers) FinishSession(w http.ResponseWriter, r *http.Request) {
	sess, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}

	summary, err := sess.Finish()
	switch {
	case errors.Is(err, session.ErrAlreadyFinished):
		httperrors.RespondConflict(w, httperrors.ErrCodeAlreadyFinished, "session already finished")
		return
	case errors.Is(err, session.ErrOutOfSequence):
		httperrors.RespondConflict(w, httperrors.ErrCodeOutOfSequence, "session never started")
		return
	case err != nil:
		h.logger.Error().Err(err).Msg("finish session failed")
		httperrors.RespondInternalError(w, "failed to finish session")
		return
	}
	h.metrics.SessionsCompleted.Inc()

	next := sess.Snapshot()
	next.Title = state.Title
	if err := h.store.SaveSession(r.Context(), next); err != nil {
		h.logger.Error().Err(err).Msg("save session failed")
		httperrors.RespondInternalError(w, "failed to save session")
		return
	}

	h.respondJSON(w, http.StatusOK, session.NewExport(state.Title, summary))
}

// GetResults handles GET /v1/sessions/{id}/results: the flat export
// document for a completed session.
func (h *Handlers) GetResults(w http.ResponseWriter, r *http.Request) {
	sess, state, ok := h.loadSession(w, r)
	if !ok {
		return
	}
	summary, err := sess.Summary()
	if err != nil {
		httperrors.RespondConflict(w, httperrors.ErrCodeNotFinished, "session is not finished")
		return
	}
	h.respondJSON(w, http.StatusOK, session.NewExport(state.Title, summary))
}

func (h *Handlers) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidSessionID, "id must be a UUID")
		return uuid.UUID{}, false
	}
	return id, true
}

func (h *Handlers) loadSession(w http.ResponseWriter, r *http.Request) (*session.Session, session.State, bool) {
	id, ok := h.pathID(w, r)
	if !ok {
		return nil, session.State{}, false
	}
	state, err := h.store.GetSession(r.Context(), id)
	if err != nil {
		if errors.Is(err, sessionstore.ErrSessionNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeSessionNotFound, "session not found")
			return nil, session.State{}, false
		}
		h.logger.Error().Err(err).Msg("fetch session failed")
		httperrors.RespondInternalError(w, "failed to fetch session")
		return nil, session.State{}, false
	}
	sess, err := session.Restore(state)
	if err != nil {
		h.logger.Error().Err(err).Msg("restore session failed")
		httperrors.RespondInternalError(w, "failed to restore session")
		return nil, session.State{}, false
	}
	return sess, state, true
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error().Err(err).Msg("encode response failed")
	}
}

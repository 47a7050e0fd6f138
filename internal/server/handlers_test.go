package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quizdesk/quizdesk/internal/config"
	"github.com/quizdesk/quizdesk/internal/metrics"
	"github.com/quizdesk/quizdesk/internal/sessionstore"
)

const sampleSet = `{
  "title": "Sample Test",
  "questions": [
    {
      "id": "q1",
      "question": "Pick the second option.",
      "type": "multiple_choice",
      "options": ["Alpha", "Beta"],
      "correct_answer": "Beta",
      "points": 3,
      "explanation": "Beta is second."
    },
    {
      "id": "q2",
      "question": "The sky is blue.",
      "type": "true_false",
      "correct_answer": "True",
      "points": 2
    }
  ]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := &config.App{
		Name:     "quizdesk-test",
		Env:      "test",
		HTTPAddr: "127.0.0.1:0",
		Upload:   config.Upload{MaxBytes: 1 << 20},
	}
	store := sessionstore.NewMemoryStore()
	m := metrics.New(prometheus.NewRegistry())
	srv := NewHTTPServer(cfg, zerolog.Nop(), store, nil, m)

	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}

func uploadSet(t *testing.T, ts *httptest.Server, filename, content string) *http.Response {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	resp, err := http.Post(ts.URL+"/v1/sets", writer.FormDataContentType(), &body)
	require.NoError(t, err)
	return resp
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestFullTestingFlow(t *testing.T) {
	ts := newTestServer(t)

	// Upload a question set.
	resp := uploadSet(t, ts, "set.json", sampleSet)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decodeBody(t, resp)
	setID := body["set_id"].(string)
	require.NotEmpty(t, setID)

	// Set summary is available.
	getResp, err := http.Get(ts.URL + "/v1/sets/" + setID)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, getResp.StatusCode)
	summary := decodeBody(t, getResp)
	assert.Equal(t, float64(2), summary["total_questions"])
	assert.Equal(t, float64(5), summary["total_points"])

	// Start a session.
	resp = postJSON(t, ts.URL+"/v1/sessions", map[string]any{"set_id": setID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body = decodeBody(t, resp)
	sessionID := body["session_id"].(string)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, float64(2), body["total_questions"])

	sessionURL := ts.URL + "/v1/sessions/" + sessionID

	// First question is served without the correct answer.
	getResp, err = http.Get(sessionURL + "/question")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	body = decodeBody(t, getResp)
	assert.Equal(t, float64(1), body["progress"])
	view := body["question"].(map[string]any)
	assert.Equal(t, "q1", view["id"])
	assert.NotContains(t, view, "correct_answer")
	assert.NotContains(t, view, "explanation")

	// Results are refused before the session finishes.
	getResp, err = http.Get(sessionURL + "/results")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, getResp.StatusCode)
	getResp.Body.Close()

	// Answer both questions correctly.
	resp = postJSON(t, sessionURL+"/answers", map[string]any{"answer": "2"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, true, body["is_correct"])
	assert.Equal(t, float64(3), body["points_earned"])
	assert.Equal(t, "Beta is second.", body["explanation"])
	assert.Equal(t, true, body["has_more"])

	resp = postJSON(t, sessionURL+"/answers", map[string]any{"answer": "true"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, true, body["is_correct"])
	assert.Equal(t, false, body["has_more"])

	// A third submit is out of sequence.
	resp = postJSON(t, sessionURL+"/answers", map[string]any{"answer": "1"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Finish and read the export document.
	resp = postJSON(t, sessionURL+"/finish", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(5), body["total_points"])
	assert.Equal(t, float64(5), body["max_points"])
	assert.Equal(t, float64(100), body["percentage"])
	assert.Equal(t, "Sample Test", body["test_title"])

	getResp, err = http.Get(sessionURL + "/results")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	body = decodeBody(t, getResp)
	results := body["results"].([]any)
	assert.Len(t, results, 2)

	// Finishing twice conflicts.
	resp = postJSON(t, sessionURL+"/finish", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestWrongAnswersScoreZero(t *testing.T) {
	ts := newTestServer(t)

	resp := uploadSet(t, ts, "set.json", sampleSet)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	setID := decodeBody(t, resp)["set_id"].(string)

	resp = postJSON(t, ts.URL+"/v1/sessions", map[string]any{"set_id": setID})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sessionURL := ts.URL + "/v1/sessions/" + decodeBody(t, resp)["session_id"].(string)

	resp = postJSON(t, sessionURL+"/answers", map[string]any{"answer": "1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, false, body["is_correct"])
	assert.Equal(t, float64(0), body["points_earned"])

	resp = postJSON(t, sessionURL+"/answers", map[string]any{"answer": "false"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeBody(t, resp)

	resp = postJSON(t, sessionURL+"/finish", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body = decodeBody(t, resp)
	assert.Equal(t, float64(0), body["total_points"])
	assert.Equal(t, float64(0), body["percentage"])
}

func TestUploadValidation(t *testing.T) {
	ts := newTestServer(t)

	resp := uploadSet(t, ts, "set.txt", sampleSet)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = uploadSet(t, ts, "broken.json", `{"questions": [`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "set_malformed", body["error"])
}

func TestUnknownIDsReturnNotFound(t *testing.T) {
	ts := newTestServer(t)

	missing := "00000000-0000-0000-0000-000000000001"

	resp, err := http.Get(ts.URL + "/v1/sets/" + missing)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = postJSON(t, ts.URL+"/v1/sessions", map[string]any{"set_id": missing})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(fmt.Sprintf("%s/v1/sessions/%s/question", ts.URL, missing))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/v1/sessions/not-a-uuid/question")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

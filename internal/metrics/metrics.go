// Package metrics exposes Prometheus counters for the HTTP front-end.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the counters tracked across test sessions.
type Metrics struct {
	SetsLoaded        prometheus.Counter
	SessionsStarted   prometheus.Counter
	SessionsCompleted prometheus.Counter
	AnswersScored     *prometheus.CounterVec
}

// New registers the counters on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SetsLoaded: factory.NewCounter(prometheus.CounterOpts{
			Name: "quizdesk_sets_loaded_total",
			Help: "Question sets successfully loaded.",
		}),
		SessionsStarted: factory.NewCounter(prometheus.CounterOpts{
			Name: "quizdesk_sessions_started_total",
			Help: "Test sessions started.",
		}),
		SessionsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "quizdesk_sessions_completed_total",
			Help: "Test sessions finished.",
		}),
		AnswersScored: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quizdesk_answers_scored_total",
			Help: "Answers scored, by outcome.",
		}, []string{"outcome"}),
	}
}

// ObserveAnswer increments the scored-answer counter for the outcome.
func (m *Metrics) ObserveAnswer(correct bool) {
	outcome := "incorrect"
	if correct {
		outcome = "correct"
	}
	m.AnswersScored.WithLabelValues(outcome).Inc()
}

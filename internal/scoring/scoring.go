// Package scoring maps a question and a raw answer string to a correctness
// verdict and the points earned. Scoring is all-or-nothing: the full point
// value of the question or zero.
package scoring

import (
	"strconv"
	"strings"

	"github.com/quizdesk/quizdesk/internal/question"
)

// Score checks raw against q's correct answer. Unscoreable input (bad
// index, unparseable number) counts as an ordinary incorrect answer rather
// than an error, so a typo never interrupts a running test.
func Score(q question.Question, raw string) (bool, int) {
	switch q.Type {
	case question.TypeMultipleChoice:
		return scoreMultipleChoice(q, raw)
	case question.TypeTrueFalse:
		return award(q, truthy(raw) == truthy(q.CorrectAnswer))
	case question.TypeFillBlank, question.TypeShortAnswer:
		return award(q, normalize(raw) == normalize(q.CorrectAnswer))
	default:
		// Unknown types never score.
		return false, 0
	}
}

// scoreMultipleChoice interprets raw as a 1-based option index. The chosen
// option must equal the correct answer exactly, case included.
func scoreMultipleChoice(q question.Question, raw string) (bool, int) {
	choice, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || choice < 1 || choice > len(q.Options) {
		return false, 0
	}
	return award(q, q.Options[choice-1] == q.CorrectAnswer)
}

func award(q question.Question, correct bool) (bool, int) {
	if !correct {
		return false, 0
	}
	return true, q.Points
}

// truthy recognizes the accepted true words; anything else is false.
func truthy(s string) bool {
	switch normalize(s) {
	case "true", "t", "1", "yes", "y":
		return true
	default:
		return false
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package question

import (
	"fmt"
	"strings"
)

// Type constants for the supported question formats.
const (
	TypeMultipleChoice = "multiple_choice"
	TypeTrueFalse      = "true_false"
	TypeFillBlank      = "fill_blank"
	TypeShortAnswer    = "short_answer"
)

// DefaultCategory is assigned when a loaded record carries no category.
const DefaultCategory = "General"

// Question is one quiz item. Instances are built by the loader and never
// mutated afterwards.
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Points        int      `json:"points"`
	Category      string   `json:"category"`
}

// Display renders the question for a terminal. When showAnswer is set the
// correct option is marked (review/explanation rendering only, never during
// an active test).
func (q Question) Display(showAnswer bool) string {
	var b strings.Builder
	b.WriteString(q.Prompt)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Category: %s | Points: %d\n", q.Category, q.Points)
	b.WriteString(strings.Repeat("-", 50))
	b.WriteString("\n")

	switch q.Type {
	case TypeMultipleChoice:
		writeOptions(&b, q.Options, q.CorrectAnswer, showAnswer)
	case TypeTrueFalse:
		writeOptions(&b, []string{"True", "False"}, q.CorrectAnswer, showAnswer)
	case TypeFillBlank, TypeShortAnswer:
		if showAnswer {
			fmt.Fprintf(&b, "Correct answer: %s\n", q.CorrectAnswer)
		}
	}
	return b.String()
}

func writeOptions(b *strings.Builder, options []string, correct string, showAnswer bool) {
	for i, option := range options {
		marker := " "
		if showAnswer && option == correct {
			marker = "*"
		}
		fmt.Fprintf(b, "%s %d. %s\n", marker, i+1, option)
	}
}

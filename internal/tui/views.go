package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/quizdesk/quizdesk/internal/question"
)

// View implements tea.Model.
func (m Model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenSummary:
		return m.viewSummary()
	case screenQuestion:
		return m.viewQuestion()
	case screenFeedback:
		return m.viewFeedback()
	case screenResults:
		return m.viewResults()
	}
	return ""
}

func (m Model) viewMenu() string {
	title := m.set.Title
	if title == "" {
		title = "Interactive Testing Application"
	}
	lines := []string{
		m.header(title),
		"",
		"1. Show question summary",
		"2. Start test (in order)",
		"3. Start test (randomized)",
		fmt.Sprintf("4. Quick test (%d random questions)", m.opts.QuickTestQuestions),
		"5. Exit",
		"",
		m.dim("Press a number to choose."),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) viewSummary() string {
	summary := m.set.Summarize()
	var b strings.Builder
	b.WriteString(m.header("Question Summary"))
	b.WriteString("\n\n")
	if summary.Description != "" {
		b.WriteString(summary.Description)
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Total Questions: %d\n", summary.Questions)
	fmt.Fprintf(&b, "Total Points: %d\n\nBy Category:\n", summary.Points)
	for _, cat := range summary.Categories {
		fmt.Fprintf(&b, "  %s: %d questions (%d points)\n", cat.Category, cat.Questions, cat.Points)
	}
	b.WriteString("\n")
	b.WriteString(m.dim("Press any key to return."))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewQuestion() string {
	q, err := m.sess.Current()
	if err != nil {
		return ""
	}
	index, total := m.sess.Progress()
	var b strings.Builder
	b.WriteString(m.header(fmt.Sprintf("Question %d/%d", index+1, total)))
	b.WriteString("\n\n")
	b.WriteString(q.Display(false))
	b.WriteString("\n")
	b.WriteString(answerPrompt(q.Type))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.dim("Type quit to cancel the test."))
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewFeedback() string {
	var b strings.Builder
	if m.last.IsCorrect {
		b.WriteString(m.colored("CORRECT!", lipgloss.Color("42")))
	} else {
		b.WriteString(m.colored("INCORRECT!", lipgloss.Color("160")))
		fmt.Fprintf(&b, "\nCorrect answer: %s", m.last.CorrectAnswer)
	}
	fmt.Fprintf(&b, "\nPoints: %d/%d\n", m.last.PointsEarned, m.last.MaxPoints)
	if m.last.Explanation != "" {
		fmt.Fprintf(&b, "Explanation: %s\n", m.last.Explanation)
	}
	b.WriteString("\n")
	if m.hasMore {
		b.WriteString(m.dim("Press enter for the next question."))
	} else {
		b.WriteString(m.dim("Press enter to see your results."))
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) viewResults() string {
	var b strings.Builder
	b.WriteString(m.header("Test Completed"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Score: %d/%d (%.1f%%)\n", m.summary.TotalPoints, m.summary.MaxPoints, m.summary.Percentage)
	fmt.Fprintf(&b, "Duration: %s\n", m.summary.Duration.Round(time.Second))

	if m.details {
		b.WriteString("\n")
		for i, result := range m.summary.Results {
			fmt.Fprintf(&b, "Question %d: %s\n", i+1, result.Question)
			fmt.Fprintf(&b, "  Your answer: %s\n", result.UserAnswer)
			fmt.Fprintf(&b, "  Correct answer: %s\n", result.CorrectAnswer)
			verdict := "INCORRECT"
			if result.IsCorrect {
				verdict = "CORRECT"
			}
			fmt.Fprintf(&b, "  Result: %s (%d/%d points)\n", verdict, result.PointsEarned, result.MaxPoints)
			if result.Explanation != "" {
				fmt.Fprintf(&b, "  Explanation: %s\n", result.Explanation)
			}
		}
	}

	if m.savedPath != "" {
		fmt.Fprintf(&b, "\nResults saved to %s\n", m.savedPath)
	}
	if m.saveErr != nil {
		fmt.Fprintf(&b, "\nSave failed: %v\n", m.saveErr)
	}
	b.WriteString("\n")
	b.WriteString(m.dim("d: toggle details | s: save results | enter: menu | q: quit"))
	b.WriteString("\n")
	return b.String()
}

func answerPrompt(questionType string) string {
	switch questionType {
	case question.TypeMultipleChoice:
		return "Enter your choice (1, 2, 3, ...):"
	case question.TypeTrueFalse:
		return "Enter your answer (true/false):"
	default:
		return "Enter your answer:"
	}
}

func (m Model) header(text string) string {
	return m.colored(text, lipgloss.Color("33"))
}

func (m Model) dim(text string) string {
	return m.colored(text, lipgloss.Color("242"))
}

func (m Model) colored(text string, color lipgloss.Color) string {
	if m.opts.NoColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

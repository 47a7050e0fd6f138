// Package tui renders the interactive terminal front-end with Bubble Tea.
// It consumes only the session core surface: load, start, submit, finish.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/session"
)

type screen int

const (
	screenMenu screen = iota
	screenSummary
	screenQuestion
	screenFeedback
	screenResults
)

// quit words accepted mid-test, matching the menu-driven flow.
var quitWords = map[string]bool{"quit": true, "exit": true, "q": true}

// Options configures the terminal front-end.
type Options struct {
	QuickTestQuestions int
	ResultsDir         string
	NoColor            bool
}

// Model drives the testing flow for one loaded question set.
type Model struct {
	set     *question.Set
	opts    Options
	screen  screen
	input   textinput.Model
	sess    *session.Session
	last    session.Answer
	hasMore bool
	summary session.Summary
	details bool

	savedPath string
	saveErr   error
	width     int
}

// New constructs the terminal model for a loaded set.
func New(set *question.Set, opts Options) Model {
	if opts.QuickTestQuestions <= 0 {
		opts.QuickTestQuestions = 5
	}
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 200
	return Model{
		set:    set,
		opts:   opts,
		screen: screenMenu,
		input:  input,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case tea.KeyMsg:
		if typed.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(typed)
		case screenSummary:
			m.screen = screenMenu
			return m, nil
		case screenQuestion:
			return m.updateQuestion(typed)
		case screenFeedback:
			return m.updateFeedback(typed)
		case screenResults:
			return m.updateResults(typed)
		}
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "1":
		m.screen = screenSummary
	case "2":
		return m.beginTest(m.set.Questions, false)
	case "3":
		return m.beginTest(question.Shuffle(m.set.Questions), true)
	case "4":
		return m.beginTest(question.Sample(m.set.Questions, m.opts.QuickTestQuestions), true)
	case "5", "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) beginTest(questions []question.Question, randomized bool) (tea.Model, tea.Cmd) {
	var sess *session.Session
	if randomized {
		sess = session.NewRandomized(questions)
	} else {
		sess = session.New(questions)
	}
	if err := sess.Start(); err != nil {
		return m, nil
	}
	m.sess = sess
	m.screen = screenQuestion
	m.input.SetValue("")
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		answer := strings.TrimSpace(m.input.Value())
		if quitWords[strings.ToLower(answer)] {
			m.sess = nil
			m.screen = screenMenu
			m.input.Blur()
			return m, nil
		}
		result, hasMore, err := m.sess.SubmitAnswer(answer)
		if err != nil {
			return m.finishTest()
		}
		m.last = result
		m.hasMore = hasMore
		m.screen = screenFeedback
		m.input.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateFeedback(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type != tea.KeyEnter {
		return m, nil
	}
	if m.hasMore {
		m.screen = screenQuestion
		return m, textinput.Blink
	}
	return m.finishTest()
}

func (m Model) finishTest() (tea.Model, tea.Cmd) {
	summary, err := m.sess.Finish()
	if err != nil {
		m.screen = screenMenu
		return m, nil
	}
	m.summary = summary
	m.details = false
	m.savedPath = ""
	m.saveErr = nil
	m.screen = screenResults
	m.input.Blur()
	return m, nil
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "d":
		m.details = !m.details
	case "s":
		if m.savedPath == "" {
			export := session.NewExport(m.set.Title, m.summary)
			m.savedPath, m.saveErr = export.WriteFile(m.opts.ResultsDir)
		}
	case "enter", "m":
		m.sess = nil
		m.screen = screenMenu
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quizdesk/quizdesk/internal/question"
	"github.com/quizdesk/quizdesk/internal/tui"
)

func main() {
	quickN := flag.Int("quick", 5, "question count for the quick test option")
	resultsDir := flag.String("results-dir", ".", "directory for exported result files")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <questions.json>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	set, err := question.Load(path)
	if err != nil {
		switch {
		case errors.Is(err, question.ErrNotFound):
			fmt.Fprintf(os.Stderr, "Error: file %q not found.\n", path)
		case errors.Is(err, question.ErrMalformed):
			fmt.Fprintf(os.Stderr, "Error: invalid question set in %q: %v\n", path, err)
		default:
			fmt.Fprintf(os.Stderr, "Error loading questions: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Loaded %d questions from %s\n", len(set.Questions), path)

	model := tui.New(set, tui.Options{
		QuickTestQuestions: *quickN,
		ResultsDir:         *resultsDir,
		NoColor:            *noColor,
	})
	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal UI error: %v\n", err)
		os.Exit(1)
	}
}

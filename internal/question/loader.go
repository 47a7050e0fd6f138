package question

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// Load failure sentinels. The presentation layer branches on these with
// errors.Is to decide between re-prompting and aborting.
var (
	// ErrNotFound indicates the question-set source does not exist.
	ErrNotFound = errors.New("question set not found")
	// ErrMalformed indicates the source exists but its content is not a
	// valid question set.
	ErrMalformed = errors.New("malformed question set")
)

// Set is a named, versioned collection of questions loaded from one source.
type Set struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Version     string     `json:"version"`
	Questions   []Question `json:"questions"`
}

// record mirrors the on-disk question shape with optional fields kept
// nullable so defaults apply only when a field is absent.
type record struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Points        *int     `json:"points"`
	Category      string   `json:"category"`
}

type setDocument struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Questions   []record `json:"questions"`
}

// Load reads and parses a question set from a file on disk.
func Load(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open question set: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a question set from a reader, applying per-field defaults
// and rejecting structurally invalid questions.
func Parse(r io.Reader) (*Set, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read question set: %w", err)
	}

	var doc setDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrMalformed)
	}

	set := &Set{
		Title:       doc.Title,
		Description: doc.Description,
		Version:     doc.Version,
		Questions:   make([]Question, 0, len(doc.Questions)),
	}
	for i, rec := range doc.Questions {
		q, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: question %d (%s): %v", ErrMalformed, i+1, rec.ID, err)
		}
		set.Questions = append(set.Questions, q)
	}
	return set, nil
}

// fromRecord applies defaults (type multiple_choice, points 1, category
// "General") and validates the record.
func fromRecord(rec record) (Question, error) {
	q := Question{
		ID:            rec.ID,
		Prompt:        rec.Question,
		Type:          rec.Type,
		Options:       rec.Options,
		CorrectAnswer: rec.CorrectAnswer,
		Explanation:   rec.Explanation,
		Points:        1,
		Category:      rec.Category,
	}
	if q.Type == "" {
		q.Type = TypeMultipleChoice
	}
	if rec.Points != nil {
		q.Points = *rec.Points
	}
	if q.Category == "" {
		q.Category = DefaultCategory
	}

	if q.Prompt == "" {
		return Question{}, errors.New("empty prompt")
	}
	if q.Points <= 0 {
		return Question{}, fmt.Errorf("points must be positive, got %d", q.Points)
	}
	if q.Type == TypeMultipleChoice {
		if len(q.Options) == 0 {
			return Question{}, errors.New("multiple_choice requires options")
		}
		if !contains(q.Options, q.CorrectAnswer) {
			return Question{}, fmt.Errorf("correct answer %q is not among the options", q.CorrectAnswer)
		}
	}
	return q, nil
}

func contains(options []string, answer string) bool {
	for _, option := range options {
		if option == answer {
			return true
		}
	}
	return false
}

// TotalPoints sums the point values of all questions in the set.
func (s *Set) TotalPoints() int {
	total := 0
	for _, q := range s.Questions {
		total += q.Points
	}
	return total
}

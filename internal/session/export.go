package session

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Export is the flat JSON result document written after a completed test.
type Export struct {
	TestTitle   string   `json:"test_title,omitempty"`
	TotalPoints int      `json:"total_points"`
	MaxPoints   int      `json:"max_points"`
	Percentage  float64  `json:"percentage"`
	Duration    string   `json:"duration"`
	Timestamp   string   `json:"timestamp"`
	Randomized  bool     `json:"randomized"`
	Results     []Answer `json:"results"`
}

// NewExport converts a summary into its export form, stamping the current
// time in RFC 3339.
func NewExport(title string, summary Summary) Export {
	return Export{
		TestTitle:   title,
		TotalPoints: summary.TotalPoints,
		MaxPoints:   summary.MaxPoints,
		Percentage:  summary.Percentage,
		Duration:    summary.Duration.String(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Randomized:  summary.Randomized,
		Results:     summary.Results,
	}
}

// WriteFile saves the export as indented JSON under a timestamped name in
// dir and returns the path written.
func (e Export) WriteFile(dir string) (string, error) {
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal results: %w", err)
	}
	name := fmt.Sprintf("test_results_%s.json", time.Now().Format("20060102_150405"))
	path := name
	if dir != "" {
		path = dir + string(os.PathSeparator) + name
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write results: %w", err)
	}
	return path, nil
}

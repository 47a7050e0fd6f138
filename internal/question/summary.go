package question

import "sort"

// CategoryStats aggregates question count and points for one category label.
type CategoryStats struct {
	Category  string `json:"category"`
	Questions int    `json:"questions"`
	Points    int    `json:"points"`
}

// Summary describes a loaded set for reporting. Categories are sorted by
// label so output is stable.
type Summary struct {
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Version     string          `json:"version,omitempty"`
	Questions   int             `json:"total_questions"`
	Points      int             `json:"total_points"`
	Categories  []CategoryStats `json:"categories"`
}

// Summarize computes per-category counts and point totals for the set.
func (s *Set) Summarize() Summary {
	byCategory := make(map[string]*CategoryStats)
	total := 0
	for _, q := range s.Questions {
		stats, ok := byCategory[q.Category]
		if !ok {
			stats = &CategoryStats{Category: q.Category}
			byCategory[q.Category] = stats
		}
		stats.Questions++
		stats.Points += q.Points
		total += q.Points
	}

	categories := make([]CategoryStats, 0, len(byCategory))
	for _, stats := range byCategory {
		categories = append(categories, *stats)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return Summary{
		Title:       s.Title,
		Description: s.Description,
		Version:     s.Version,
		Questions:   len(s.Questions),
		Points:      total,
		Categories:  categories,
	}
}

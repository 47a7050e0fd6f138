package session

import "time"

// Answer records the outcome of one submitted answer. Points are the full
// question value or zero, no partial credit.
type Answer struct {
	QuestionID    string `json:"question_id"`
	Question      string `json:"question"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	IsCorrect     bool   `json:"is_correct"`
	PointsEarned  int    `json:"points_earned"`
	MaxPoints     int    `json:"max_points"`
	Explanation   string `json:"explanation,omitempty"`
}

// Summary is the immutable aggregate produced when a session finishes.
type Summary struct {
	TotalPoints int           `json:"total_points"`
	MaxPoints   int           `json:"max_points"`
	Percentage  float64       `json:"percentage"`
	Duration    time.Duration `json:"-"`
	Randomized  bool          `json:"randomized"`
	Results     []Answer      `json:"results"`
}

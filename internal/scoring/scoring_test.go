package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quizdesk/quizdesk/internal/question"
)

func mcq() question.Question {
	return question.Question{
		ID:            "q1",
		Prompt:        "What is the largest organ of the human body?",
		Type:          question.TypeMultipleChoice,
		Options:       []string{"Heart", "Skin", "Liver", "Brain"},
		CorrectAnswer: "Skin",
		Points:        3,
	}
}

func TestScoreMultipleChoice(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		correct bool
		points  int
	}{
		{name: "correct index", raw: "2", correct: true, points: 3},
		{name: "correct index padded", raw: " 2 ", correct: true, points: 3},
		{name: "wrong in-range index", raw: "1", correct: false, points: 0},
		{name: "another wrong index", raw: "4", correct: false, points: 0},
		{name: "zero index", raw: "0", correct: false, points: 0},
		{name: "out of range", raw: "5", correct: false, points: 0},
		{name: "negative", raw: "-1", correct: false, points: 0},
		{name: "non-numeric", raw: "skin", correct: false, points: 0},
		{name: "empty", raw: "", correct: false, points: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			correct, points := Score(mcq(), tc.raw)
			assert.Equal(t, tc.correct, correct)
			assert.Equal(t, tc.points, points)
		})
	}
}

func TestScoreTrueFalse(t *testing.T) {
	q := question.Question{
		ID:            "q2",
		Prompt:        "The sky is blue.",
		Type:          question.TypeTrueFalse,
		CorrectAnswer: "True",
		Points:        2,
	}

	trueWords := []string{"true", "True", "T", "t", "1", "yes", "YES", "y", "Y", "  true  "}
	for _, word := range trueWords {
		t.Run("true word "+word, func(t *testing.T) {
			correct, points := Score(q, word)
			assert.True(t, correct)
			assert.Equal(t, 2, points)
		})
	}

	falseWords := []string{"false", "f", "0", "no", "n", "nope", "", "2"}
	for _, word := range falseWords {
		t.Run("false word "+word, func(t *testing.T) {
			correct, points := Score(q, word)
			assert.False(t, correct)
			assert.Zero(t, points)
		})
	}
}

func TestScoreTrueFalseNegativeKey(t *testing.T) {
	q := question.Question{
		Type:          question.TypeTrueFalse,
		CorrectAnswer: "False",
		Points:        1,
	}

	// Any non-true word normalizes to false, so these all match the key.
	correct, points := Score(q, "false")
	assert.True(t, correct)
	assert.Equal(t, 1, points)

	correct, points = Score(q, "whatever")
	assert.True(t, correct)
	assert.Equal(t, 1, points)

	correct, points = Score(q, "yes")
	assert.False(t, correct)
	assert.Zero(t, points)
}

func TestScoreTextAnswers(t *testing.T) {
	for _, questionType := range []string{question.TypeFillBlank, question.TypeShortAnswer} {
		q := question.Question{
			Type:          questionType,
			CorrectAnswer: "skin",
			Points:        4,
		}

		tests := []struct {
			raw     string
			correct bool
		}{
			{raw: "skin", correct: true},
			{raw: "Skin", correct: true},
			{raw: "  Skin ", correct: true},
			{raw: "SKIN", correct: true},
			{raw: "skinn", correct: false},
			{raw: "", correct: false},
		}
		for _, tc := range tests {
			correct, points := Score(q, tc.raw)
			assert.Equal(t, tc.correct, correct, "type %s answer %q", questionType, tc.raw)
			if tc.correct {
				assert.Equal(t, 4, points)
			} else {
				assert.Zero(t, points)
			}
		}
	}
}

func TestScoreUnknownType(t *testing.T) {
	q := question.Question{
		Type:          "essay",
		CorrectAnswer: "anything",
		Points:        10,
	}
	for _, raw := range []string{"anything", "1", "true", ""} {
		correct, points := Score(q, raw)
		assert.False(t, correct)
		assert.Zero(t, points)
	}
}

package session

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportWriteFile(t *testing.T) {
	summary := Summary{
		TotalPoints: 4,
		MaxPoints:   5,
		Percentage:  80,
		Duration:    90 * time.Second,
		Results: []Answer{
			{QuestionID: "q1", UserAnswer: "2", IsCorrect: true, PointsEarned: 4, MaxPoints: 4},
			{QuestionID: "q2", UserAnswer: "no", IsCorrect: false, MaxPoints: 1},
		},
	}
	export := NewExport("Biology Basics", summary)
	assert.Equal(t, "1m30s", export.Duration)

	_, err := time.Parse(time.RFC3339, export.Timestamp)
	require.NoError(t, err)

	dir := t.TempDir()
	path, err := export.WriteFile(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Export
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Biology Basics", decoded.TestTitle)
	assert.Equal(t, 4, decoded.TotalPoints)
	assert.Equal(t, 5, decoded.MaxPoints)
	assert.Len(t, decoded.Results, 2)
}

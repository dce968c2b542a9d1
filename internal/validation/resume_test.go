package validation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerhub/internal/resume"
)

func TestNormalizeSkills(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "trims and drops empties",
			input:    []string{"  Go ", "", "   ", "SQL"},
			expected: []string{"Go", "SQL"},
		},
		{
			name:     "dedupes preserving first occurrence",
			input:    []string{"Go", "SQL", "Go", "Docker", "SQL"},
			expected: []string{"Go", "SQL", "Docker"},
		},
		{
			name:     "case sensitive",
			input:    []string{"SQL", "sql"},
			expected: []string{"SQL", "sql"},
		},
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeSkills(tt.input))
		})
	}
}

func TestCheckState(t *testing.T) {
	start := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)

	s := resume.NewState(uuid.New())
	assert.NoError(t, CheckState(s))

	s.WorkExperience = []resume.WorkExperience{
		{JobTitle: "Engineer", StartDate: &start, EndDate: nil},
	}
	assert.NoError(t, CheckState(s), "ongoing role has no end date")

	s.WorkExperience[0].EndDate = &end
	err := CheckState(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "workExperience[0]")

	s.WorkExperience[0].EndDate = &start
	assert.NoError(t, CheckState(s), "same-day start and end is valid")
}

func TestCheckState_Education(t *testing.T) {
	start := time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(-24 * time.Hour)

	s := resume.NewState(uuid.New())
	s.Education = []resume.Education{{School: "U", StartDate: &start, EndDate: &end}}

	err := CheckState(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "education[0]")
}

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"matchScore\": 82}\n```",
			expected: `{"matchScore": 82}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"matchScore\": 82}\n```",
			expected: `{"matchScore": 82}`,
		},
		{
			name:     "code block with language identifier",
			input:    "```javascript\n{\"matchScore\": 82}\n```",
			expected: `{"matchScore": 82}`,
		},
		{
			name:     "plain JSON",
			input:    `{"matchScore": 82}`,
			expected: `{"matchScore": 82}`,
		},
		{
			name:     "surrounding whitespace",
			input:    "\n  {\"matchScore\": 82}  \n",
			expected: `{"matchScore": 82}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

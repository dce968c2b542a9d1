package jobsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDescription(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text passes through",
			input:    "We are hiring a backend engineer.",
			expected: "We are hiring a backend engineer.",
		},
		{
			name:     "html tags stripped",
			input:    "<p>We are hiring a <strong>backend</strong> engineer.</p>",
			expected: "We are hiring a backend engineer.",
		},
		{
			name:     "scripts and styles removed",
			input:    "<style>p{color:red}</style><p>Apply now</p><script>track()</script>",
			expected: "Apply now",
		},
		{
			name:     "blank lines collapsed",
			input:    "Responsibilities:\n\n\n  - Ship code  \n\n  - Review   PRs\n",
			expected: "Responsibilities:\n- Ship code\n- Review PRs",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeDescription(tt.input))
		})
	}
}

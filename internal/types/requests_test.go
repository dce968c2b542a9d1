package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRequest_Validate(t *testing.T) {
	valid := AnalyzeRequest{JobDescription: strings.Repeat("x", 50)}
	assert.NoError(t, valid.Validate())

	short := AnalyzeRequest{JobDescription: strings.Repeat("x", 49)}
	assert.Error(t, short.Validate())
}

func TestJobSearchRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     JobSearchRequest
		wantErr bool
	}{
		{
			name: "minimal request",
			req:  JobSearchRequest{Query: "engineer"},
		},
		{
			name: "full request",
			req: JobSearchRequest{
				Query:           "engineer",
				Location:        "Toronto",
				DatePosted:      "week",
				EmploymentTypes: []string{"FULLTIME", "CONTRACTOR"},
			},
		},
		{
			name:    "missing query",
			req:     JobSearchRequest{Location: "Toronto"},
			wantErr: true,
		},
		{
			name:    "bad window",
			req:     JobSearchRequest{Query: "engineer", DatePosted: "fortnight"},
			wantErr: true,
		},
		{
			name:    "bad employment type",
			req:     JobSearchRequest{Query: "engineer", EmploymentTypes: []string{"GIG"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChatRequest_Validate(t *testing.T) {
	assert.NoError(t, (&ChatRequest{Message: "hello"}).Validate())
	assert.Error(t, (&ChatRequest{}).Validate())
	assert.Error(t, (&ChatRequest{Message: strings.Repeat("x", 4001)}).Validate())
}

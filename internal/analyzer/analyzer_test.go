package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careerhub/internal/llm"
	"github.com/jonathan/careerhub/internal/resume"
)

var testUserID = uuid.MustParse("3c8a1c3e-55a0-4aa1-9e07-2f2d5f4e8b10")

// fakeLLM records the last call and returns a canned response.
type fakeLLM struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastMsgs   []llm.Message
}

func (f *fakeLLM) Complete(ctx context.Context, system string, msgs []llm.Message, tier llm.ModelTier) (string, error) {
	return f.CompleteJSON(ctx, system, msgs, tier)
}

func (f *fakeLLM) CompleteJSON(ctx context.Context, system string, msgs []llm.Message, tier llm.ModelTier) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastMsgs = msgs
	return f.response, f.err
}

func (f *fakeLLM) GetModel(tier llm.ModelTier) string { return "fake-model" }
func (f *fakeLLM) Close() error                       { return nil }

func completeResume() resume.State {
	s := resume.NewState(testUserID)
	s.Summary = "Backend engineer with eight years of Go and Postgres experience."
	s.Skills = []string{"Go", "PostgreSQL", "Docker"}
	s.WorkExperience = []resume.WorkExperience{
		{JobTitle: "Senior Backend Engineer", Company: "Acme Corp"},
	}
	return s
}

const validAnalysis = `{
	"matchScore": 78,
	"overallFit": "Strong backend match with some gaps in cloud tooling.",
	"strengths": ["Go depth", "Postgres experience", "Relevant seniority"],
	"areasForImprovement": ["Kubernetes exposure", "Terraform", "Public cloud"],
	"missingKeywords": ["Kubernetes", "Terraform", "AWS", "gRPC", "CI/CD"]
}`

var longDescription = strings.Repeat("We need a Go engineer. ", 10)

func TestAnalyze_DescriptionTooShort(t *testing.T) {
	fake := &fakeLLM{response: validAnalysis}
	svc := New(fake)

	// 49 characters after trimming is still too short
	desc := strings.Repeat("x", MinDescriptionLength-1)
	_, err := svc.Analyze(context.Background(), completeResume(), "  "+desc+"  ")

	assert.ErrorIs(t, err, ErrDescriptionTooShort)
	assert.Zero(t, fake.calls, "model must not be called when preconditions fail")
}

func TestAnalyze_ResumeIncomplete(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*resume.State)
	}{
		{"empty summary", func(s *resume.State) { s.Summary = "   " }},
		{"no work experience", func(s *resume.State) { s.WorkExperience = nil }},
		{"no skills", func(s *resume.State) { s.Skills = []string{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeLLM{response: validAnalysis}
			svc := New(fake)

			state := completeResume()
			tt.mutate(&state)

			_, err := svc.Analyze(context.Background(), state, longDescription)
			assert.ErrorIs(t, err, ErrResumeIncomplete)
			assert.Zero(t, fake.calls)
		})
	}
}

func TestAnalyze_Success(t *testing.T) {
	fake := &fakeLLM{response: validAnalysis}
	svc := New(fake)

	result, err := svc.Analyze(context.Background(), completeResume(), longDescription)
	require.NoError(t, err)

	assert.Equal(t, 78, result.MatchScore)
	assert.Len(t, result.Strengths, 3)
	assert.Len(t, result.MissingKeywords, 5)

	require.Equal(t, 1, fake.calls)
	require.Len(t, fake.lastMsgs, 1)
	assert.Equal(t, llm.RoleUser, fake.lastMsgs[0].Role)
	assert.Contains(t, fake.lastMsgs[0].Content, "Go engineer")
	assert.Contains(t, fake.lastMsgs[0].Content, "PostgreSQL")
	assert.NotContains(t, fake.lastMsgs[0].Content, "cachedJobFeed")
}

func TestAnalyze_RejectsOutOfRangeScore(t *testing.T) {
	fake := &fakeLLM{response: strings.Replace(validAnalysis, `"matchScore": 78`, `"matchScore": 150`, 1)}
	svc := New(fake)

	_, err := svc.Analyze(context.Background(), completeResume(), longDescription)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid analysis")
}

func TestAnalyze_RejectsTooFewKeywords(t *testing.T) {
	short := strings.Replace(validAnalysis,
		`["Kubernetes", "Terraform", "AWS", "gRPC", "CI/CD"]`,
		`["Kubernetes"]`, 1)
	fake := &fakeLLM{response: short}
	svc := New(fake)

	_, err := svc.Analyze(context.Background(), completeResume(), longDescription)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid analysis")
}

func TestAnalyze_ModelFailure(t *testing.T) {
	fake := &fakeLLM{err: assert.AnError}
	svc := New(fake)

	_, err := svc.Analyze(context.Background(), completeResume(), longDescription)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrResumeIncomplete)
	assert.NotErrorIs(t, err, ErrDescriptionTooShort)
}

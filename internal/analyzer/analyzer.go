// Package analyzer scores a resume against a job description using the LLM
// and validates the model's structured output before returning it.
package analyzer

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/careerhub/internal/llm"
	"github.com/jonathan/careerhub/internal/prompts"
	"github.com/jonathan/careerhub/internal/resume"
	"github.com/jonathan/careerhub/internal/schemas"
)

//go:embed schema.json
var resultSchema string

// MinDescriptionLength is the minimum job description length, in characters,
// accepted for analysis.
const MinDescriptionLength = 50

// Precondition errors. These are caller errors, distinct from model or
// transport failures.
var (
	ErrResumeIncomplete    = errors.New("resume must have a summary, at least one work experience, and at least one skill")
	ErrDescriptionTooShort = fmt.Errorf("job description must be at least %d characters", MinDescriptionLength)
)

// Result is the structured outcome of one analysis.
type Result struct {
	MatchScore          int      `json:"matchScore"`
	OverallFit          string   `json:"overallFit"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areasForImprovement"`
	MissingKeywords     []string `json:"missingKeywords"`
}

// Service runs resume-against-job analyses.
type Service struct {
	llm llm.Client
}

// New creates an analyzer service.
func New(client llm.Client) *Service {
	return &Service{llm: client}
}

// Analyze scores the resume against jobDescription. It returns
// ErrResumeIncomplete or ErrDescriptionTooShort without calling the model
// when the inputs cannot support a useful analysis.
func (s *Service) Analyze(ctx context.Context, state resume.State, jobDescription string) (*Result, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if len(jobDescription) < MinDescriptionLength {
		return nil, ErrDescriptionTooShort
	}
	if strings.TrimSpace(state.Summary) == "" || len(state.WorkExperience) == 0 || len(state.Skills) == 0 {
		return nil, ErrResumeIncomplete
	}

	prompt, err := buildPrompt(state, jobDescription)
	if err != nil {
		return nil, err
	}

	out, err := s.llm.CompleteJSON(ctx, prompts.MustGet("analyzer.json", "system"), []llm.Message{
		{Role: llm.RoleUser, Content: prompt},
	}, llm.TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("failed to run analysis: %w", err)
	}

	if err := schemas.ValidateJSONString(resultSchema, out); err != nil {
		return nil, fmt.Errorf("model returned invalid analysis: %w", err)
	}

	var result Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return nil, fmt.Errorf("failed to parse analysis: %w", err)
	}
	return &result, nil
}

// resumeView is the subset of the resume sent to the model. Cache fields and
// contact details are excluded.
type resumeView struct {
	Summary        string                  `json:"summary"`
	Skills         []string                `json:"skills"`
	WorkExperience []resume.WorkExperience `json:"workExperience"`
	Education      []resume.Education      `json:"education"`
	Projects       []resume.Project        `json:"projects"`
	Certifications []resume.Certification  `json:"certifications"`
}

func buildPrompt(state resume.State, jobDescription string) (string, error) {
	view := resumeView{
		Summary:        state.Summary,
		Skills:         state.Skills,
		WorkExperience: state.WorkExperience,
		Education:      state.Education,
		Projects:       state.Projects,
		Certifications: state.Certifications,
	}
	resumeJSON, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume: %w", err)
	}

	return prompts.Format(prompts.MustGet("analyzer.json", "analyze"), map[string]string{
		"Resume":         string(resumeJSON),
		"JobDescription": jobDescription,
	}), nil
}

package types

import (
	"github.com/go-playground/validator/v10"
)

// AnalyzeRequest asks for a resume-against-job analysis.
type AnalyzeRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,min=50"`
}

// JobSearchRequest is an ad-hoc job search.
type JobSearchRequest struct {
	Query           string   `json:"query" validate:"required,min=1"`
	Location        string   `json:"location,omitempty"`
	DatePosted      string   `json:"datePosted,omitempty" validate:"omitempty,oneof=all today 3days week month"`
	WorkFromHome    bool     `json:"workFromHome,omitempty"`
	EmploymentTypes []string `json:"employmentTypes,omitempty" validate:"dive,oneof=FULLTIME PARTTIME CONTRACTOR INTERN"`
}

// ChatRequest is one user chat message.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1,max=4000"`
}

// PersonalInfoPatch updates one scalar profile field. The field name is
// checked against the resume package's closed enumeration at the handler.
type PersonalInfoPatch struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobSearchRequest using the validator.
func (r *JobSearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the PersonalInfoPatch using the validator.
func (r *PersonalInfoPatch) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Package validation provides the edit-surface rules applied to resume
// state before it is persisted.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/careerhub/internal/resume"
)

// Error represents a resume validation error.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// NormalizeSkills trims whitespace, drops empty entries, and removes
// duplicates while preserving first-occurrence order. Comparison is
// case-sensitive: "SQL" and "sql" are distinct skills.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	return out
}

// CheckState validates a resume before saving: every dated entry must not
// end before it starts. A nil end date (ongoing) is always valid.
func CheckState(s resume.State) error {
	for i, e := range s.WorkExperience {
		if err := checkDates(fmt.Sprintf("workExperience[%d]", i), e.StartDate, e.EndDate); err != nil {
			return err
		}
	}
	for i, e := range s.Education {
		if err := checkDates(fmt.Sprintf("education[%d]", i), e.StartDate, e.EndDate); err != nil {
			return err
		}
	}
	for i, e := range s.VolunteerWork {
		if err := checkDates(fmt.Sprintf("volunteerWork[%d]", i), e.StartDate, e.EndDate); err != nil {
			return err
		}
	}
	return nil
}

func checkDates(field string, start, end *time.Time) error {
	if start == nil || end == nil {
		return nil
	}
	if end.Before(*start) {
		return &Error{Field: field, Message: "end date is before start date"}
	}
	return nil
}

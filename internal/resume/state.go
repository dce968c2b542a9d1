// Package resume defines the in-memory resume model and the pure transition
// function that applies edit actions to it.
package resume

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/careerhub/internal/jobsearch"
)

// State is the full in-memory representation of one user's resume plus the
// cached job-feed data. Scalar fields use the empty string as the unset
// sentinel; collections are never nil after Normalize.
type State struct {
	UserID uuid.UUID `json:"userId"`

	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	Summary  string `json:"summary"`

	// Skills are unique strings in display order.
	Skills []string `json:"skills"`

	// Child collections are ordered top-to-bottom; the array index is the
	// authoritative rank.
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	VolunteerWork  []VolunteerEntry `json:"volunteerWork"`

	// CachedJobFeed holds up to MaxCachedListings snapshots from the last
	// job search. It is written only by the dashboard refresh path, never
	// by the resume save path.
	CachedJobFeed []jobsearch.Listing `json:"cachedJobFeed"`
	FeedUpdatedAt *time.Time          `json:"feedUpdatedAt"`
}

// MaxCachedListings caps the size of the cached job feed.
const MaxCachedListings = 5

// WorkExperience is one employment entry. A nil EndDate means the role is
// ongoing; it is never coerced to a sentinel date.
type WorkExperience struct {
	ID          uuid.UUID  `json:"id"`
	JobTitle    string     `json:"jobTitle"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
}

// Education is one schooling entry.
type Education struct {
	ID           uuid.UUID  `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Description  string     `json:"description"`
}

// Project is one personal or professional project.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
}

// Certification is one certificate or award.
type Certification struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	Issuer string     `json:"issuer"`
	Date   *time.Time `json:"date"`
}

// VolunteerEntry is one volunteer engagement.
type VolunteerEntry struct {
	ID           uuid.UUID  `json:"id"`
	Organization string     `json:"organization"`
	Role         string     `json:"role"`
	StartDate    *time.Time `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	Description  string     `json:"description"`
}

// NewState returns the empty resume for a user: all scalars "", all
// collections empty, no cached feed.
func NewState(userID uuid.UUID) State {
	s := State{UserID: userID}
	s.Normalize()
	return s
}

// Normalize replaces nil collections with empty slices. Payloads originating
// from storage may omit collections entirely; callers rely on every slice
// being non-nil.
func (s *State) Normalize() {
	if s.Skills == nil {
		s.Skills = []string{}
	}
	if s.WorkExperience == nil {
		s.WorkExperience = []WorkExperience{}
	}
	if s.Education == nil {
		s.Education = []Education{}
	}
	if s.Projects == nil {
		s.Projects = []Project{}
	}
	if s.Certifications == nil {
		s.Certifications = []Certification{}
	}
	if s.VolunteerWork == nil {
		s.VolunteerWork = []VolunteerEntry{}
	}
	if s.CachedJobFeed == nil {
		s.CachedJobFeed = []jobsearch.Listing{}
	}
}

// Package dashboard assembles the user's landing-page data: a job feed
// cached on the resume row, a resume improvement tip, and the latest piece
// of chat advice.
package dashboard

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/jonathan/careerhub/internal/db"
	"github.com/jonathan/careerhub/internal/jobsearch"
	"github.com/jonathan/careerhub/internal/llm"
	"github.com/jonathan/careerhub/internal/prompts"
	"github.com/jonathan/careerhub/internal/resume"
)

// FeedTTL is how long a cached job feed stays fresh.
const FeedTTL = 24 * time.Hour

// DefaultFeedQuery is used when the resume has no work experience to derive
// a job title from.
const DefaultFeedQuery = "Software Engineer"

// Store is the persistence surface the dashboard needs.
type Store interface {
	LoadOrInit(ctx context.Context, userID uuid.UUID) (resume.State, error)
	RefreshJobFeed(ctx context.Context, userID uuid.UUID, listings []jobsearch.Listing, updatedAt time.Time) error
	GetLatestModelMessage(ctx context.Context, userID uuid.UUID) (*db.ChatMessage, error)
}

// Dashboard is one assembled landing-page payload. FeedError carries the
// job-feed failure reason when a refresh was needed and did not succeed; the
// feed is empty in that case.
type Dashboard struct {
	Name          string              `json:"name,omitempty"`
	Feed          []jobsearch.Listing `json:"feed"`
	FeedUpdatedAt *time.Time          `json:"feedUpdatedAt"`
	FeedError     string              `json:"feedError,omitempty"`
	Tip           string              `json:"tip,omitempty"`
	LatestAdvice  *db.ChatMessage     `json:"latestAdvice,omitempty"`
}

// Service builds dashboards.
type Service struct {
	store           Store
	searcher        jobsearch.Searcher
	llm             llm.Client
	defaultLocation string

	// refreshGroup collapses concurrent feed refreshes for the same user
	// into a single upstream search.
	refreshGroup singleflight.Group

	now func() time.Time
}

// New creates a dashboard service. defaultLocation seeds the feed search
// when the resume has no location of its own.
func New(store Store, searcher jobsearch.Searcher, client llm.Client, defaultLocation string) *Service {
	return &Service{
		store:           store,
		searcher:        searcher,
		llm:             client,
		defaultLocation: defaultLocation,
		now:             time.Now,
	}
}

// Load assembles the dashboard. Job search and tip generation failures are
// non-critical: the dashboard degrades to stale or empty sections rather
// than failing the request.
func (s *Service) Load(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	state, err := s.store.LoadOrInit(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	out := &Dashboard{Name: state.FullName}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.Feed, out.FeedUpdatedAt, out.FeedError = s.resolveFeed(gctx, state)
		if out.Feed == nil {
			out.Feed = []jobsearch.Listing{}
		}
		return nil
	})
	g.Go(func() error {
		out.Tip = s.resumeTip(gctx, state)
		return nil
	})
	g.Go(func() error {
		latest, err := s.store.GetLatestModelMessage(gctx, userID)
		if err != nil {
			return fmt.Errorf("failed to load latest advice: %w", err)
		}
		out.LatestAdvice = latest
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// feedFresh reports whether the cached feed can be served as-is: non-empty
// and updated strictly after now minus FeedTTL.
func feedFresh(state resume.State, now time.Time) bool {
	if len(state.CachedJobFeed) == 0 || state.FeedUpdatedAt == nil {
		return false
	}
	return state.FeedUpdatedAt.After(now.Add(-FeedTTL))
}

type feedResult struct {
	listings  []jobsearch.Listing
	updatedAt time.Time
}

// resolveFeed returns the cached feed when fresh, otherwise refreshes it
// from the search provider. A failed refresh yields no feed plus the failure
// reason; nothing is persisted and the stale cache is left untouched.
func (s *Service) resolveFeed(ctx context.Context, state resume.State) ([]jobsearch.Listing, *time.Time, string) {
	if feedFresh(state, s.now()) {
		return state.CachedJobFeed, state.FeedUpdatedAt, ""
	}

	v, err, _ := s.refreshGroup.Do(state.UserID.String(), func() (interface{}, error) {
		return s.refreshFeed(ctx, state)
	})
	if err != nil {
		log.Printf("job feed refresh failed for user %s: %v", state.UserID, err)
		return nil, nil, fmt.Sprintf("failed to fetch jobs: %v", err)
	}

	result := v.(feedResult)
	return result.listings, &result.updatedAt, ""
}

func (s *Service) refreshFeed(ctx context.Context, state resume.State) (feedResult, error) {
	listings, err := s.searcher.Search(ctx, s.feedFilters(state))
	if err != nil {
		return feedResult{}, err
	}
	if len(listings) > resume.MaxCachedListings {
		listings = listings[:resume.MaxCachedListings]
	}

	updatedAt := s.now()
	// Cache write failure is non-critical: the listings are still served,
	// the next load just searches again.
	if err := s.store.RefreshJobFeed(ctx, state.UserID, listings, updatedAt); err != nil {
		log.Printf("failed to cache job feed for user %s: %v", state.UserID, err)
	}
	return feedResult{listings: listings, updatedAt: updatedAt}, nil
}

func (s *Service) feedFilters(state resume.State) jobsearch.Filters {
	query := DefaultFeedQuery
	if len(state.WorkExperience) > 0 {
		if title := strings.TrimSpace(state.WorkExperience[0].JobTitle); title != "" {
			query = title
		}
	}
	location := strings.TrimSpace(state.Location)
	if location == "" {
		location = s.defaultLocation
	}
	return jobsearch.Filters{
		Query:           query,
		Location:        location,
		DatePosted:      jobsearch.WindowWeek,
		EmploymentTypes: []string{"FULLTIME"},
	}
}

// Canned tips for resumes too sparse to analyze.
const (
	tipAddSummary    = "Add a professional summary to your resume. A short paragraph describing who you are and what you bring helps recruiters immediately."
	tipAddExperience = "Add your work experience. Even one role with concrete accomplishments makes your resume far stronger."
	tipAddSkills     = "List at least five skills. Recruiters and screening software both search resumes by skill keywords."
)

// resumeTip returns a single improvement tip. Sparse resumes get a canned
// tip; otherwise the model generates one. A model failure yields no tip.
func (s *Service) resumeTip(ctx context.Context, state resume.State) string {
	switch {
	case strings.TrimSpace(state.Summary) == "":
		return tipAddSummary
	case len(state.WorkExperience) == 0:
		return tipAddExperience
	case len(state.Skills) < 5:
		return tipAddSkills
	}

	prompt := prompts.Format(prompts.MustGet("dashboard.json", "tip"), map[string]string{
		"Summary": state.Summary,
		"Skills":  strings.Join(state.Skills, ", "),
		"Role":    state.WorkExperience[0].JobTitle,
		"Company": state.WorkExperience[0].Company,
	})
	tip, err := s.llm.Complete(ctx, prompts.MustGet("dashboard.json", "tip-system"), []llm.Message{
		{Role: llm.RoleUser, Content: prompt},
	}, llm.TierLite)
	if err != nil {
		log.Printf("tip generation failed for user %s: %v", state.UserID, err)
		return ""
	}
	return strings.TrimSpace(tip)
}

package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/careerhub/internal/analyzer"
	"github.com/jonathan/careerhub/internal/config"
	"github.com/jonathan/careerhub/internal/dashboard"
	"github.com/jonathan/careerhub/internal/db"
	"github.com/jonathan/careerhub/internal/jobsearch"
	"github.com/jonathan/careerhub/internal/resume"
	"github.com/jonathan/careerhub/internal/server/ratelimit"
)

// fakeResumeStore keeps one resume per user in memory.
type fakeResumeStore struct {
	states  map[uuid.UUID]resume.State
	loadErr error
	saveErr error
	saved   *resume.State
}

func newFakeResumeStore() *fakeResumeStore {
	return &fakeResumeStore{states: make(map[uuid.UUID]resume.State)}
}

func (f *fakeResumeStore) LoadOrInit(ctx context.Context, userID uuid.UUID) (resume.State, error) {
	if f.loadErr != nil {
		return resume.State{}, f.loadErr
	}
	if s, ok := f.states[userID]; ok {
		return s, nil
	}
	return resume.NewState(userID), nil
}

func (f *fakeResumeStore) SaveResume(ctx context.Context, userID uuid.UUID, s resume.State) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = &s
	f.states[userID] = s
	return nil
}

type fakeAnalyzer struct {
	result *analyzer.Result
	err    error
	lastJD string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, state resume.State, jobDescription string) (*analyzer.Result, error) {
	f.lastJD = jobDescription
	return f.result, f.err
}

type fakeSearcher struct {
	listings    []jobsearch.Listing
	err         error
	lastFilters jobsearch.Filters
}

func (f *fakeSearcher) Search(ctx context.Context, filters jobsearch.Filters) ([]jobsearch.Listing, error) {
	f.lastFilters = filters
	return f.listings, f.err
}

type fakeChat struct {
	reply    *db.ChatMessage
	history  []db.ChatMessage
	sendErr  error
	histErr  error
	lastSent string
}

func (f *fakeChat) Send(ctx context.Context, userID uuid.UUID, content string) (*db.ChatMessage, error) {
	f.lastSent = content
	return f.reply, f.sendErr
}

func (f *fakeChat) History(ctx context.Context, userID uuid.UUID, limit int) ([]db.ChatMessage, error) {
	if f.histErr != nil {
		return nil, f.histErr
	}
	if limit > 0 && len(f.history) > limit {
		return f.history[len(f.history)-limit:], nil
	}
	return f.history, nil
}

type fakeDashboard struct {
	dash *dashboard.Dashboard
	err  error
}

func (f *fakeDashboard) Load(ctx context.Context, userID uuid.UUID) (*dashboard.Dashboard, error) {
	return f.dash, f.err
}

// newTestServer builds a Server wired with fakes, no database, and rate
// limiting disabled.
func newTestServer(t *testing.T) (*Server, *fakeResumeStore, *fakeAnalyzer, *fakeSearcher, *fakeChat, *fakeDashboard) {
	t.Helper()

	resumes := newFakeResumeStore()
	analyzerFake := &fakeAnalyzer{}
	searcher := &fakeSearcher{}
	chatFake := &fakeChat{}
	dashFake := &fakeDashboard{dash: &dashboard.Dashboard{Feed: []jobsearch.Listing{}}}

	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	passwordConfig := &config.PasswordConfig{BcryptCost: 10}

	s := &Server{
		rateLimiter: ratelimit.NewLimiter(&ratelimit.Config{Enabled: false}),
		jwtService:  jwtService,
		resumes:     resumes,
		searcher:    searcher,
		analyzer:    analyzerFake,
		chat:        chatFake,
		dashboard:   dashFake,
	}
	t.Cleanup(s.rateLimiter.Stop)

	userStore := newFakeUserStore()
	s.userService = NewUserService(userStore, passwordConfig)
	s.authHandler = NewAuthHandler(s.userService, jwtService)

	return s, resumes, analyzerFake, searcher, chatFake, dashFake
}

// fakeUserStore keeps users in memory.
type fakeUserStore struct {
	byID    map[uuid.UUID]*db.User
	byEmail map[string]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    make(map[uuid.UUID]*db.User),
		byEmail: make(map[string]*db.User),
	}
}

func (f *fakeUserStore) CreateUser(ctx context.Context, name, email string) (uuid.UUID, error) {
	u := &db.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	f.byID[u.ID] = u
	f.byEmail[email] = u
	return u.ID, nil
}

func (f *fakeUserStore) GetUser(ctx context.Context, id uuid.UUID) (*db.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserStore) GetUserByEmail(ctx context.Context, email string) (*db.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserStore) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	u, ok := f.byID[id]
	if !ok {
		return &ErrUserNotFound{UserID: id}
	}
	u.PasswordHash = passwordHash
	u.PasswordSet = true
	return nil
}

func (f *fakeUserStore) DeleteUser(ctx context.Context, id uuid.UUID) error {
	u, ok := f.byID[id]
	if !ok {
		return &ErrUserNotFound{UserID: id}
	}
	delete(f.byID, id)
	delete(f.byEmail, u.Email)
	return nil
}

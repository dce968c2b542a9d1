package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/careerhub/internal/jobsearch"
	"github.com/jonathan/careerhub/internal/resume"
)

// -----------------------------------------------------------------------------
// Resume Methods
// -----------------------------------------------------------------------------

// GetResume retrieves the full resume state for a user, child collections
// ordered by their stored position. Returns (nil, nil) when the user has no
// stored resume.
func (db *DB) GetResume(ctx context.Context, userID uuid.UUID) (*resume.State, error) {
	var (
		s        resume.State
		resumeID uuid.UUID
		feedJSON []byte
	)

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, full_name, email, phone, location, website, summary,
		        skills, cached_job_feed, feed_updated_at
		 FROM resumes WHERE user_id = $1`,
		userID,
	).Scan(&resumeID, &s.UserID, &s.FullName, &s.Email, &s.Phone, &s.Location,
		&s.Website, &s.Summary, &s.Skills, &feedJSON, &s.FeedUpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if feedJSON != nil {
		if err := json.Unmarshal(feedJSON, &s.CachedJobFeed); err != nil {
			return nil, fmt.Errorf("failed to parse cached job feed: %w", err)
		}
	}

	if err := db.loadResumeCollections(ctx, resumeID, &s); err != nil {
		return nil, err
	}

	s.Normalize()
	return &s, nil
}

// LoadOrInit returns the stored resume state, or a freshly-initialized empty
// state when none exists.
func (db *DB) LoadOrInit(ctx context.Context, userID uuid.UUID) (resume.State, error) {
	s, err := db.GetResume(ctx, userID)
	if err != nil {
		return resume.State{}, err
	}
	if s == nil {
		return resume.NewState(userID), nil
	}
	return *s, nil
}

// SaveResume upserts the scalar fields and wholesale-replaces every child
// collection inside a single transaction, so a failed save never leaves a
// half-replaced resume behind. The two job-feed cache columns are owned by
// RefreshJobFeed and are not touched here.
func (db *DB) SaveResume(ctx context.Context, userID uuid.UUID, s resume.State) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	var resumeID uuid.UUID
	err = tx.QueryRow(ctx,
		`INSERT INTO resumes (user_id, full_name, email, phone, location, website, summary, skills)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
		     full_name = $2,
		     email = $3,
		     phone = $4,
		     location = $5,
		     website = $6,
		     summary = $7,
		     skills = $8,
		     updated_at = NOW()
		 RETURNING id`,
		userID, s.FullName, s.Email, s.Phone, s.Location, s.Website, s.Summary, s.Skills,
	).Scan(&resumeID)
	if err != nil {
		return fmt.Errorf("failed to upsert resume: %w", err)
	}

	if err := replaceWorkExperiences(ctx, tx, resumeID, s.WorkExperience); err != nil {
		return err
	}
	if err := replaceEducations(ctx, tx, resumeID, s.Education); err != nil {
		return err
	}
	if err := replaceProjects(ctx, tx, resumeID, s.Projects); err != nil {
		return err
	}
	if err := replaceCertifications(ctx, tx, resumeID, s.Certifications); err != nil {
		return err
	}
	if err := replaceVolunteerEntries(ctx, tx, resumeID, s.VolunteerWork); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit resume save: %w", err)
	}
	return nil
}

// RefreshJobFeed updates only the two job-feed cache columns. Fails when the
// user has no stored resume row yet.
func (db *DB) RefreshJobFeed(ctx context.Context, userID uuid.UUID, listings []jobsearch.Listing, ts time.Time) error {
	feedJSON, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("failed to marshal job feed: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE resumes SET cached_job_feed = $1, feed_updated_at = $2 WHERE user_id = $3`,
		feedJSON, ts, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to refresh job feed: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("resume not found for user: %s", userID)
	}
	return nil
}

// -----------------------------------------------------------------------------
// Child collection helpers
// -----------------------------------------------------------------------------

func (db *DB) loadResumeCollections(ctx context.Context, resumeID uuid.UUID, s *resume.State) error {
	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, company, location, start_date, end_date, description
		 FROM work_experiences WHERE resume_id = $1 ORDER BY position`,
		resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to load work experience: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e resume.WorkExperience
		if err := rows.Scan(&e.ID, &e.JobTitle, &e.Company, &e.Location,
			&e.StartDate, &e.EndDate, &e.Description); err != nil {
			return err
		}
		s.WorkExperience = append(s.WorkExperience, e)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT id, school, degree, field_of_study, start_date, end_date, description
		 FROM educations WHERE resume_id = $1 ORDER BY position`,
		resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to load education: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e resume.Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.FieldOfStudy,
			&e.StartDate, &e.EndDate, &e.Description); err != nil {
			return err
		}
		s.Education = append(s.Education, e)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT id, name, url, description
		 FROM projects WHERE resume_id = $1 ORDER BY position`,
		resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e resume.Project
		if err := rows.Scan(&e.ID, &e.Name, &e.URL, &e.Description); err != nil {
			return err
		}
		s.Projects = append(s.Projects, e)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT id, name, issuer, issued_on
		 FROM certifications WHERE resume_id = $1 ORDER BY position`,
		resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to load certifications: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e resume.Certification
		if err := rows.Scan(&e.ID, &e.Name, &e.Issuer, &e.Date); err != nil {
			return err
		}
		s.Certifications = append(s.Certifications, e)
	}

	rows, err = db.pool.Query(ctx,
		`SELECT id, organization, role, start_date, end_date, description
		 FROM volunteer_entries WHERE resume_id = $1 ORDER BY position`,
		resumeID,
	)
	if err != nil {
		return fmt.Errorf("failed to load volunteer work: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e resume.VolunteerEntry
		if err := rows.Scan(&e.ID, &e.Organization, &e.Role,
			&e.StartDate, &e.EndDate, &e.Description); err != nil {
			return err
		}
		s.VolunteerWork = append(s.VolunteerWork, e)
	}

	return nil
}

func replaceWorkExperiences(ctx context.Context, tx pgx.Tx, resumeID uuid.UUID, entries []resume.WorkExperience) error {
	if _, err := tx.Exec(ctx, `DELETE FROM work_experiences WHERE resume_id = $1`, resumeID); err != nil {
		return fmt.Errorf("failed to clear work experience: %w", err)
	}
	for i, e := range entries {
		_, err := tx.Exec(ctx,
			`INSERT INTO work_experiences (id, resume_id, position, job_title, company, location, start_date, end_date, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			entryID(e.ID), resumeID, i, e.JobTitle, e.Company, e.Location, e.StartDate, e.EndDate, e.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert work experience: %w", err)
		}
	}
	return nil
}

func replaceEducations(ctx context.Context, tx pgx.Tx, resumeID uuid.UUID, entries []resume.Education) error {
	if _, err := tx.Exec(ctx, `DELETE FROM educations WHERE resume_id = $1`, resumeID); err != nil {
		return fmt.Errorf("failed to clear education: %w", err)
	}
	for i, e := range entries {
		_, err := tx.Exec(ctx,
			`INSERT INTO educations (id, resume_id, position, school, degree, field_of_study, start_date, end_date, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			entryID(e.ID), resumeID, i, e.School, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert education: %w", err)
		}
	}
	return nil
}

func replaceProjects(ctx context.Context, tx pgx.Tx, resumeID uuid.UUID, entries []resume.Project) error {
	if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE resume_id = $1`, resumeID); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}
	for i, e := range entries {
		_, err := tx.Exec(ctx,
			`INSERT INTO projects (id, resume_id, position, name, url, description)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			entryID(e.ID), resumeID, i, e.Name, e.URL, e.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert project: %w", err)
		}
	}
	return nil
}

func replaceCertifications(ctx context.Context, tx pgx.Tx, resumeID uuid.UUID, entries []resume.Certification) error {
	if _, err := tx.Exec(ctx, `DELETE FROM certifications WHERE resume_id = $1`, resumeID); err != nil {
		return fmt.Errorf("failed to clear certifications: %w", err)
	}
	for i, e := range entries {
		_, err := tx.Exec(ctx,
			`INSERT INTO certifications (id, resume_id, position, name, issuer, issued_on)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			entryID(e.ID), resumeID, i, e.Name, e.Issuer, e.Date,
		)
		if err != nil {
			return fmt.Errorf("failed to insert certification: %w", err)
		}
	}
	return nil
}

func replaceVolunteerEntries(ctx context.Context, tx pgx.Tx, resumeID uuid.UUID, entries []resume.VolunteerEntry) error {
	if _, err := tx.Exec(ctx, `DELETE FROM volunteer_entries WHERE resume_id = $1`, resumeID); err != nil {
		return fmt.Errorf("failed to clear volunteer work: %w", err)
	}
	for i, e := range entries {
		_, err := tx.Exec(ctx,
			`INSERT INTO volunteer_entries (id, resume_id, position, organization, role, start_date, end_date, description)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			entryID(e.ID), resumeID, i, e.Organization, e.Role, e.StartDate, e.EndDate, e.Description,
		)
		if err != nil {
			return fmt.Errorf("failed to insert volunteer entry: %w", err)
		}
	}
	return nil
}

// entryID backfills an ID for entries created before the client assigned one.
func entryID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

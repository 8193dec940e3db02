package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrAlreadySubscribed is returned when the email already has a subscription
	ErrAlreadySubscribed = errors.New("email already subscribed")

	// ErrMissingField is returned when a required form field is empty
	ErrMissingField = errors.New("missing required field")
)

// Store persists portfolio content in sqlite
type Store struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// OpenStore creates or opens a content database
func OpenStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Single writer keeps sqlite from returning SQLITE_BUSY under concurrent use
	db.SetMaxOpenConns(1)

	store := &Store{
		db:     db,
		dbPath: dbPath,
		now:    func() time.Time { return time.Now().UTC() },
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

func (s *Store) initSchema() error {
	schema := `
	PRAGMA journal_mode = WAL;
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		slug TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		long_description TEXT NOT NULL DEFAULT '',
		image_url TEXT NOT NULL DEFAULT '',
		demo_url TEXT NOT NULL DEFAULT '',
		github_url TEXT NOT NULL DEFAULT '',
		technologies_json TEXT NOT NULL DEFAULT '[]',
		category TEXT NOT NULL DEFAULT '',
		featured INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'draft',
		views_count INTEGER NOT NULL DEFAULT 0,
		likes_count INTEGER NOT NULL DEFAULT 0,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		published_at DATETIME
	);
	CREATE INDEX IF NOT EXISTS idx_projects_listing ON projects(status, featured, order_index);

	CREATE TABLE IF NOT EXISTS testimonials (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		rating INTEGER NOT NULL DEFAULT 0,
		featured INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'draft',
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_testimonials_listing ON testimonials(status, featured, order_index);

	CREATE TABLE IF NOT EXISTS contact_submissions (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL DEFAULT '',
		message TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		company TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'new',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS newsletter_subscribers (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active',
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ===== READS =====

const projectColumns = `id, title, slug, description, long_description, image_url, demo_url, github_url,
	technologies_json, category, featured, status, views_count, likes_count, order_index,
	created_at, updated_at, published_at`

// ListProjects returns published projects by order_index; featured limits to FeaturedProjectsLimit
func (s *Store) ListProjects(ctx context.Context, featured bool) ([]Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE status = ?`
	args := []any{StatusPublished}
	if featured {
		query += ` AND featured = 1 ORDER BY order_index ASC, created_at ASC LIMIT ?`
		args = append(args, FeaturedProjectsLimit)
	} else {
		query += ` ORDER BY order_index ASC, created_at ASC`
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		var (
			p         Project
			techJSON  string
			published sql.NullTime
		)
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.LongDescription,
			&p.ImageURL, &p.DemoURL, &p.GithubURL, &techJSON, &p.Category, &p.Featured,
			&p.Status, &p.ViewsCount, &p.LikesCount, &p.OrderIndex,
			&p.CreatedAt, &p.UpdatedAt, &published); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		if err := json.Unmarshal([]byte(techJSON), &p.Technologies); err != nil {
			return nil, fmt.Errorf("project %s: bad technologies: %w", p.ID, err)
		}
		if published.Valid {
			t := published.Time
			p.PublishedAt = &t
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ListTestimonials returns published testimonials by order_index; featured limits to FeaturedTestimonialsLimit
func (s *Store) ListTestimonials(ctx context.Context, featured bool) ([]Testimonial, error) {
	query := `SELECT id, name, role, company, avatar_url, content, rating, featured, status,
		order_index, created_at, updated_at FROM testimonials WHERE status = ?`
	args := []any{StatusPublished}
	if featured {
		query += ` AND featured = 1 ORDER BY order_index ASC, created_at ASC LIMIT ?`
		args = append(args, FeaturedTestimonialsLimit)
	} else {
		query += ` ORDER BY order_index ASC, created_at ASC`
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := []Testimonial{}
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Company, &t.AvatarURL, &t.Content,
			&t.Rating, &t.Featured, &t.Status, &t.OrderIndex, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// ===== WRITES =====

// SubmitContact stores a contact form entry and returns the stored row
// Name, email and message are required; other fields default to empty strings
func (s *Store) SubmitContact(ctx context.Context, in ContactSubmission) (ContactSubmission, error) {
	required := []struct{ field, value string }{
		{"name", in.Name},
		{"email", in.Email},
		{"message", in.Message},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return ContactSubmission{}, fmt.Errorf("%w: %s", ErrMissingField, r.field)
		}
	}

	out := ContactSubmission{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Phone:     in.Phone,
		Company:   in.Company,
		Status:    "new",
		CreatedAt: s.now(),
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO contact_submissions
		(id, name, email, subject, message, phone, company, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		out.ID, out.Name, out.Email, out.Subject, out.Message, out.Phone, out.Company, out.Status, out.CreatedAt)
	if err != nil {
		return ContactSubmission{}, fmt.Errorf("failed to insert contact submission: %w", err)
	}
	return out, nil
}

// Subscribe adds an active newsletter subscriber, a duplicate email returns ErrAlreadySubscribed
func (s *Store) Subscribe(ctx context.Context, email, name string) (Subscriber, error) {
	if strings.TrimSpace(email) == "" {
		return Subscriber{}, fmt.Errorf("%w: email", ErrMissingField)
	}

	sub := Subscriber{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Status:    SubscriberActive,
		CreatedAt: s.now(),
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO newsletter_subscribers (id, email, name, status, created_at)
		VALUES (?, ?, ?, ?, ?)`, sub.ID, sub.Email, sub.Name, sub.Status, sub.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return Subscriber{}, ErrAlreadySubscribed
		}
		return Subscriber{}, fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return sub, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	case sqlite3.SQLITE_CONSTRAINT:
		// Primary code only when extended codes are off
		return strings.Contains(se.Error(), "UNIQUE")
	}
	return false
}

// UpsertProject inserts or replaces a project keyed by slug, an empty ID is generated
func (s *Store) UpsertProject(ctx context.Context, p Project) (Project, error) {
	return upsertProject(ctx, s.db, p, s.now())
}

// UpsertTestimonial inserts or replaces a testimonial keyed by ID, or by name and content when ID is empty
func (s *Store) UpsertTestimonial(ctx context.Context, t Testimonial) (Testimonial, error) {
	return upsertTestimonial(ctx, s.db, t, s.now())
}

// execer is satisfied by *sql.DB and *sql.Tx
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func upsertProject(ctx context.Context, db execer, p Project, now time.Time) (Project, error) {
	if p.Title == "" || p.Slug == "" {
		return Project{}, fmt.Errorf("%w: project title and slug", ErrMissingField)
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}

	// Existing rows keep their id, creation and first publication time
	var (
		existingID string
		created    time.Time
		published  sql.NullTime
	)
	err := db.QueryRowContext(ctx, `SELECT id, created_at, published_at FROM projects WHERE slug = ?`, p.Slug).
		Scan(&existingID, &created, &published)
	switch {
	case err == nil:
		p.ID, p.CreatedAt = existingID, created
		if p.PublishedAt == nil && published.Valid {
			t := published.Time
			p.PublishedAt = &t
		}
	case errors.Is(err, sql.ErrNoRows):
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		p.CreatedAt = now
	default:
		return Project{}, fmt.Errorf("failed to look up project %s: %w", p.Slug, err)
	}
	p.UpdatedAt = now
	if p.Status == StatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}

	techJSON, err := json.Marshal(p.Technologies)
	if err != nil {
		return Project{}, fmt.Errorf("failed to encode technologies: %w", err)
	}

	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO projects (`+projectColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Slug, p.Description, p.LongDescription, p.ImageURL, p.DemoURL, p.GithubURL,
		string(techJSON), p.Category, p.Featured, p.Status, p.ViewsCount, p.LikesCount, p.OrderIndex,
		p.CreatedAt, p.UpdatedAt, p.PublishedAt)
	if err != nil {
		return Project{}, fmt.Errorf("failed to upsert project %s: %w", p.Slug, err)
	}
	return p, nil
}

func upsertTestimonial(ctx context.Context, db execer, t Testimonial, now time.Time) (Testimonial, error) {
	if t.Name == "" || t.Content == "" {
		return Testimonial{}, fmt.Errorf("%w: testimonial name and content", ErrMissingField)
	}
	if t.Status == "" {
		t.Status = StatusDraft
	}

	// Without an id, an entry with identical name and content is the same testimonial
	var (
		row     *sql.Row
		id      string
		created time.Time
	)
	if t.ID == "" {
		row = db.QueryRowContext(ctx, `SELECT id, created_at FROM testimonials WHERE name = ? AND content = ?`, t.Name, t.Content)
	} else {
		row = db.QueryRowContext(ctx, `SELECT id, created_at FROM testimonials WHERE id = ?`, t.ID)
	}
	switch err := row.Scan(&id, &created); {
	case err == nil:
		t.ID, t.CreatedAt = id, created
	case errors.Is(err, sql.ErrNoRows):
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		t.CreatedAt = now
	default:
		return Testimonial{}, fmt.Errorf("failed to look up testimonial %s: %w", t.Name, err)
	}
	t.UpdatedAt = now

	_, err := db.ExecContext(ctx, `INSERT OR REPLACE INTO testimonials
		(id, name, role, company, avatar_url, content, rating, featured, status, order_index, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Role, t.Company, t.AvatarURL, t.Content, t.Rating, t.Featured, t.Status,
		t.OrderIndex, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return Testimonial{}, fmt.Errorf("failed to upsert testimonial %s: %w", t.ID, err)
	}
	return t, nil
}

// Seed upserts every seed entry in one transaction
func (s *Store) Seed(ctx context.Context, seed *Seed) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	now := s.now()
	for _, p := range seed.Projects {
		if _, err := upsertProject(ctx, tx, p, now); err != nil {
			return err
		}
	}
	for _, t := range seed.Testimonials {
		if _, err := upsertTestimonial(ctx, tx, t, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

package content

import "time"

// Status is the publication state of a project or testimonial
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// SubscriberActive is the status given to new newsletter subscribers
const SubscriberActive = "active"

// Featured listing limits
const (
	FeaturedProjectsLimit     = 6
	FeaturedTestimonialsLimit = 3
)

// Project is a portfolio entry
type Project struct {
	ID              string     `json:"id" yaml:"id"`
	Title           string     `json:"title" yaml:"title"`
	Slug            string     `json:"slug" yaml:"slug"`
	Description     string     `json:"description,omitempty" yaml:"description"`
	LongDescription string     `json:"long_description,omitempty" yaml:"long_description"`
	ImageURL        string     `json:"image_url,omitempty" yaml:"image_url"`
	DemoURL         string     `json:"demo_url,omitempty" yaml:"demo_url"`
	GithubURL       string     `json:"github_url,omitempty" yaml:"github_url"`
	Technologies    []string   `json:"technologies" yaml:"technologies"`
	Category        string     `json:"category,omitempty" yaml:"category"`
	Featured        bool       `json:"featured" yaml:"featured"`
	Status          Status     `json:"status" yaml:"status"`
	ViewsCount      int        `json:"views_count" yaml:"views_count"`
	LikesCount      int        `json:"likes_count" yaml:"likes_count"`
	OrderIndex      int        `json:"order_index" yaml:"order_index"`
	CreatedAt       time.Time  `json:"created_at" yaml:"-"`
	UpdatedAt       time.Time  `json:"updated_at" yaml:"-"`
	PublishedAt     *time.Time `json:"published_at,omitempty" yaml:"-"`
}

// Testimonial is a client quote
type Testimonial struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Role       string    `json:"role,omitempty" yaml:"role"`
	Company    string    `json:"company,omitempty" yaml:"company"`
	AvatarURL  string    `json:"avatar_url,omitempty" yaml:"avatar_url"`
	Content    string    `json:"content" yaml:"content"`
	Rating     int       `json:"rating,omitempty" yaml:"rating"` // 0 when unrated
	Featured   bool      `json:"featured" yaml:"featured"`
	Status     Status    `json:"status" yaml:"status"`
	OrderIndex int       `json:"order_index" yaml:"order_index"`
	CreatedAt  time.Time `json:"created_at" yaml:"-"`
	UpdatedAt  time.Time `json:"updated_at" yaml:"-"`
}

// ContactSubmission is a contact form entry
type ContactSubmission struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Status    string    `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Subscriber is a newsletter subscription
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

package content

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/blueprint/service"
)

// Service is the content facade used by the site
// Read failures are logged and degrade to empty lists; write failures are logged and returned
type Service struct {
	mu     sync.RWMutex
	dbPath string
	seed   string
	store  *Store
	log    *zap.Logger
}

var _ service.Service = (*Service)(nil)

// NewService creates a content service for dbPath; seedPath is applied on Init when set
func NewService(dbPath, seedPath string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		dbPath: dbPath,
		seed:   seedPath,
		log:    logger.Named("content"),
	}
}

// NewServiceWithStore wraps an open store
func NewServiceWithStore(store *Store, logger *zap.Logger) *Service {
	s := NewService(store.Path(), "", logger)
	s.store = store
	return s
}

// Name implements service.Service
func (s *Service) Name() string {
	return "content"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init opens the store and applies the seed file if configured
func (s *Service) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		store, err := OpenStore(s.dbPath)
		if err != nil {
			return err
		}
		s.store = store
	}

	if s.seed != "" {
		seed, err := LoadSeedFile(s.seed)
		if err != nil {
			return err
		}
		if err := s.store.Seed(ctx, seed); err != nil {
			return err
		}
		s.log.Info("seed applied",
			zap.String("path", s.seed),
			zap.Int("projects", len(seed.Projects)),
			zap.Int("testimonials", len(seed.Testimonials)))
	}
	return nil
}

// Start implements service.Service
func (s *Service) Start(context.Context) error {
	return nil
}

// Stop closes the store, safe to call repeatedly
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	err := s.store.Close()
	s.store = nil
	return err
}

// Store returns the underlying store, nil before Init
func (s *Service) Store() *Store {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store
}

var errNotInitialized = errors.New("content service not initialized")

// Projects lists published projects, never failing
func (s *Service) Projects(ctx context.Context, featured bool) []Project {
	store := s.Store()
	if store == nil {
		s.log.Error("error fetching projects", zap.Error(errNotInitialized))
		return []Project{}
	}
	projects, err := store.ListProjects(ctx, featured)
	if err != nil {
		s.log.Error("error fetching projects", zap.Bool("featured", featured), zap.Error(err))
		return []Project{}
	}
	return projects
}

// Testimonials lists published testimonials, never failing
func (s *Service) Testimonials(ctx context.Context, featured bool) []Testimonial {
	store := s.Store()
	if store == nil {
		s.log.Error("error fetching testimonials", zap.Error(errNotInitialized))
		return []Testimonial{}
	}
	testimonials, err := store.ListTestimonials(ctx, featured)
	if err != nil {
		s.log.Error("error fetching testimonials", zap.Bool("featured", featured), zap.Error(err))
		return []Testimonial{}
	}
	return testimonials
}

// SubmitContact stores a contact form entry
func (s *Service) SubmitContact(ctx context.Context, in ContactSubmission) (ContactSubmission, error) {
	store := s.Store()
	if store == nil {
		return ContactSubmission{}, errNotInitialized
	}
	out, err := store.SubmitContact(ctx, in)
	if err != nil {
		s.log.Error("error submitting contact form", zap.Error(err))
		return ContactSubmission{}, fmt.Errorf("submit contact: %w", err)
	}
	s.log.Debug("contact submitted", zap.String("id", out.ID))
	return out, nil
}

// Subscribe adds a newsletter subscriber
func (s *Service) Subscribe(ctx context.Context, email, name string) (Subscriber, error) {
	store := s.Store()
	if store == nil {
		return Subscriber{}, errNotInitialized
	}
	sub, err := store.Subscribe(ctx, email, name)
	if err != nil {
		s.log.Error("error subscribing to newsletter", zap.Error(err))
		return Subscriber{}, fmt.Errorf("subscribe: %w", err)
	}
	return sub, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ai-website-generator/backend/internal/projects/domain"
)

// Store is the persistence surface the service needs.
// repository.ProjectRepository is the production implementation.
type Store interface {
	Insert(ctx context.Context, p *domain.Project) error
	List(ctx context.Context, limit int) ([]domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) (int64, error)
}

// ProjectService handles project-related business logic
type ProjectService struct {
	store    Store
	validate *validator.Validate
	now      func() time.Time
}

type Option func(*ProjectService)

// WithClock overrides the time source used for created_at.
func WithClock(now func() time.Time) Option {
	return func(s *ProjectService) { s.now = now }
}

// NewProjectService creates a new project service
func NewProjectService(store Store, opts ...Option) *ProjectService {
	s := &ProjectService{
		store:    store,
		validate: newValidator(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the input and saves a new project.
func (s *ProjectService) Create(ctx context.Context, in domain.CreateProjectInput) (*domain.Project, error) {
	in.Prompt = strings.TrimSpace(in.Prompt)
	if err := s.validateInput(in); err != nil {
		return nil, err
	}

	p := &domain.Project{
		Prompt: in.Prompt,
		Code:   in.Code,
		// BSON datetimes keep milliseconds only
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := s.store.Insert(ctx, p); err != nil {
		return nil, internal(err)
	}
	return p, nil
}

// List returns the newest projects. limit is normalized, never rejected.
func (s *ProjectService) List(ctx context.Context, limit int) ([]domain.Project, error) {
	items, err := s.store.List(ctx, domain.NormalizeLimit(limit))
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

// Get returns one project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, err
	}

	p, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidID) {
			return nil, err
		}
		return nil, internal(err)
	}
	return p, nil
}

// Delete permanently removes a project. A second delete of the same id is ErrNotFound.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := domain.ValidateID(id); err != nil {
		return err
	}

	n, err := s.store.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidID) {
			return err
		}
		return internal(err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func internal(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrInternal, err)
}

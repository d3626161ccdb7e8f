package depot

import (
	"context"

	"stockyard/internal/core/apperror"
)

// Service provides the request-validate-persist contract for depots.
type Service struct {
	repo Repository
}

// NewService creates a new Depot service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all depots, newest first.
func (s *Service) List(ctx context.Context) ([]Depot, error) {
	return s.repo.List(ctx)
}

// Get returns the depot with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*Depot, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input and inserts a new depot.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return 0, apperror.NewFieldValidation(fields)
	}
	return s.repo.Create(ctx, in)
}

// Update replaces all fields of an existing depot. The prior read keeps
// the 404-before-422 ordering; the update statement itself is the final
// authority on existence.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if fields := in.Validate(); len(fields) > 0 {
		return apperror.NewFieldValidation(fields)
	}
	return s.repo.Update(ctx, id, in)
}

// Delete removes a depot. A missing row is reported by the delete
// statement itself, so repeated deletes return not found.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

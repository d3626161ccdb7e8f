package invoice

import (
	"context"

	"stockyard/internal/core/apperror"
)

// Service provides the request-validate-persist contract for invoices.
type Service struct {
	repo Repository
}

// NewService creates a new Invoice service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all invoices, newest first.
func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

// Get returns the invoice with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input and inserts a new invoice. Dangling
// product_id or provider_id references are rejected by the store.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return 0, apperror.NewFieldValidation(fields)
	}
	return s.repo.Create(ctx, in)
}

// Update replaces all fields of an existing invoice.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if fields := in.Validate(); len(fields) > 0 {
		return apperror.NewFieldValidation(fields)
	}
	return s.repo.Update(ctx, id, in)
}

// Delete removes an invoice. A missing row is reported by the delete
// statement itself.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

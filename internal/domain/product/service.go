package product

import (
	"context"

	"stockyard/internal/core/apperror"
)

// Service provides the request-validate-persist contract for products.
type Service struct {
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all products, newest first.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Get returns the product with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input, checks name uniqueness and inserts a new
// product. A dangling depot_id is rejected by the store's foreign key.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if err := s.validate(ctx, in, 0); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, in)
}

// Update replaces all fields of an existing product. The uniqueness check
// excludes the row being updated, so a product can keep its own name.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.validate(ctx, in, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, in)
}

// Delete removes a product. A missing row is reported by the delete
// statement itself.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validate runs the pure field rules, then the store-backed uniqueness
// check. A store failure during the check is not a rejection.
func (s *Service) validate(ctx context.Context, in Input, excludeID int64) error {
	if fields := in.Validate(); len(fields) > 0 {
		return apperror.NewFieldValidation(fields)
	}

	taken, err := s.repo.NameTaken(ctx, in.Name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperror.NewDuplicate("product", "name")
	}
	return nil
}

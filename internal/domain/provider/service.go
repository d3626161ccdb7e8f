package provider

import (
	"context"

	"stockyard/internal/core/apperror"
)

// Service provides the request-validate-persist contract for providers.
type Service struct {
	repo Repository
}

// NewService creates a new Provider service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all providers, newest first.
func (s *Service) List(ctx context.Context) ([]Provider, error) {
	return s.repo.List(ctx)
}

// Get returns the provider with the given id.
func (s *Service) Get(ctx context.Context, id int64) (*Provider, error) {
	return s.repo.GetByID(ctx, id)
}

// Create validates the input, checks every unique field and inserts a
// new provider.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	if err := s.validate(ctx, in, 0); err != nil {
		return 0, err
	}
	return s.repo.Create(ctx, in)
}

// Update replaces all fields of an existing provider. Uniqueness checks
// exclude the row being updated, so a provider can keep its own values.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.validate(ctx, in, id); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, in)
}

// Delete removes a provider. A missing row is reported by the delete
// statement itself.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validate runs the pure field rules, then checks each submitted
// unique-constrained value independently against the store. A store
// failure during a check is not a rejection.
func (s *Service) validate(ctx context.Context, in Input, excludeID int64) error {
	if fields := in.Validate(); len(fields) > 0 {
		return apperror.NewFieldValidation(fields)
	}

	for _, uv := range in.UniqueValues() {
		taken, err := s.repo.ValueTaken(ctx, uv.Field, uv.Value, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return apperror.NewDuplicate("provider", string(uv.Field))
		}
	}
	return nil
}

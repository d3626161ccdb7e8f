package provider

import "context"

// Repository defines the interface for Provider persistence.
type Repository interface {
	// List returns all providers ordered by id descending.
	List(ctx context.Context) ([]Provider, error)

	// GetByID retrieves a provider by its id.
	GetByID(ctx context.Context, id int64) (*Provider, error)

	// Create inserts a new provider and returns the assigned id.
	Create(ctx context.Context, in Input) (int64, error)

	// Update replaces all fields of the provider with the given id.
	Update(ctx context.Context, id int64, in Input) error

	// Delete removes the provider with the given id. Dependent invoices
	// are removed by the storage engine (cascade).
	Delete(ctx context.Context, id int64) error

	// ValueTaken reports whether another provider already carries the
	// given value in the given unique field. Rows with id equal to
	// excludeID are ignored; pass 0 on create.
	ValueTaken(ctx context.Context, field UniqueField, value string, excludeID int64) (bool, error)
}

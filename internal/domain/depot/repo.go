package depot

import "context"

// Repository defines the interface for Depot persistence.
type Repository interface {
	// List returns all depots ordered by id descending.
	List(ctx context.Context) ([]Depot, error)

	// GetByID retrieves a depot by its id.
	GetByID(ctx context.Context, id int64) (*Depot, error)

	// Create inserts a new depot and returns the assigned id.
	Create(ctx context.Context, in Input) (int64, error)

	// Update replaces all fields of the depot with the given id.
	Update(ctx context.Context, id int64, in Input) error

	// Delete removes the depot with the given id. Dependent products are
	// removed by the storage engine (cascade).
	Delete(ctx context.Context, id int64) error
}

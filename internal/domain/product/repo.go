package product

import "context"

// Repository defines the interface for Product persistence.
type Repository interface {
	// List returns all products ordered by id descending.
	List(ctx context.Context) ([]Product, error)

	// GetByID retrieves a product by its id.
	GetByID(ctx context.Context, id int64) (*Product, error)

	// Create inserts a new product and returns the assigned id.
	Create(ctx context.Context, in Input) (int64, error)

	// Update replaces all fields of the product with the given id.
	Update(ctx context.Context, id int64, in Input) error

	// Delete removes the product with the given id.
	Delete(ctx context.Context, id int64) error

	// NameTaken reports whether another product already carries the given
	// name. Rows with id equal to excludeID are ignored, so an update can
	// keep the record's own name; pass 0 on create.
	NameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
}

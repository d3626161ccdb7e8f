package invoice

import "context"

// Repository defines the interface for Invoice persistence.
type Repository interface {
	// List returns all invoices ordered by id descending.
	List(ctx context.Context) ([]Invoice, error)

	// GetByID retrieves an invoice by its id.
	GetByID(ctx context.Context, id int64) (*Invoice, error)

	// Create inserts a new invoice and returns the assigned id.
	Create(ctx context.Context, in Input) (int64, error)

	// Update replaces all fields of the invoice with the given id.
	Update(ctx context.Context, id int64, in Input) error

	// Delete removes the invoice with the given id.
	Delete(ctx context.Context, id int64) error
}

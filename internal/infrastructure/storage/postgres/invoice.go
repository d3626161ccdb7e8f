package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/invoice"
)

const invoiceTable = "invoices"

var invoiceColumns = []string{
	"id", "product_id", "provider_id", "status", "quantity", "recivedat",
	"price", "discount", "total", "created_at", "updated_at",
}

// InvoiceRepo implements invoice.Repository.
type InvoiceRepo struct {
	pool *Pool
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(pool *Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

// List returns all invoices ordered by id descending.
func (r *InvoiceRepo) List(ctx context.Context) ([]invoice.Invoice, error) {
	q := builder().
		Select(invoiceColumns...).
		From(invoiceTable).
		OrderBy("id DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var invoices []invoice.Invoice
	if err := pgxscan.Select(ctx, r.pool, &invoices, sql, args...); err != nil {
		return nil, wrapReadError("invoice", err)
	}
	return invoices, nil
}

// GetByID retrieves an invoice by id.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*invoice.Invoice, error) {
	q := builder().
		Select(invoiceColumns...).
		From(invoiceTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var inv invoice.Invoice
	if err := pgxscan.Get(ctx, r.pool, &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice", id)
		}
		return nil, wrapReadError("invoice", err)
	}
	return &inv, nil
}

// Create inserts a new invoice and returns the assigned id. Dangling
// product or provider references surface as foreign key violations.
func (r *InvoiceRepo) Create(ctx context.Context, in invoice.Input) (int64, error) {
	q := builder().
		Insert(invoiceTable).
		Columns("product_id", "provider_id", "status", "quantity", "recivedat", "price", "discount", "total").
		Values(in.ProductID, in.ProviderID, in.Status, in.Quantity, in.ReceivedAt, in.Price, in.Discount, in.Total).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, wrapWriteError("invoice", err)
	}
	return id, nil
}

// Update replaces all fields of the invoice. Zero rows affected means
// the invoice does not exist.
func (r *InvoiceRepo) Update(ctx context.Context, id int64, in invoice.Input) error {
	q := builder().
		Update(invoiceTable).
		Set("product_id", in.ProductID).
		Set("provider_id", in.ProviderID).
		Set("status", in.Status).
		Set("quantity", in.Quantity).
		Set("recivedat", in.ReceivedAt).
		Set("price", in.Price).
		Set("discount", in.Discount).
		Set("total", in.Total).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteError("invoice", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("invoice", id)
	}
	return nil
}

// Delete removes the invoice.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	q := builder().
		Delete(invoiceTable).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteError("invoice", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("invoice", id)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/product"
)

const productTable = "products"

var productColumns = []string{
	"id", "name", "size", "weight", "cost", "quantity", "type",
	"expiredat", "depot_id", "created_at", "updated_at",
}

// ProductRepo implements product.Repository.
type ProductRepo struct {
	pool *Pool
}

// NewProductRepo creates a new product repository.
func NewProductRepo(pool *Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// List returns all products ordered by id descending.
func (r *ProductRepo) List(ctx context.Context) ([]product.Product, error) {
	q := builder().
		Select(productColumns...).
		From(productTable).
		OrderBy("id DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var products []product.Product
	if err := pgxscan.Select(ctx, r.pool, &products, sql, args...); err != nil {
		return nil, wrapReadError("product", err)
	}
	return products, nil
}

// GetByID retrieves a product by id.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	q := builder().
		Select(productColumns...).
		From(productTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var p product.Product
	if err := pgxscan.Get(ctx, r.pool, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("product", id)
		}
		return nil, wrapReadError("product", err)
	}
	return &p, nil
}

// Create inserts a new product and returns the assigned id. When the
// optional expiration date is absent the statement has no expiredat
// column at all; the two shapes are distinct statements, not a null
// substitution.
func (r *ProductRepo) Create(ctx context.Context, in product.Input) (int64, error) {
	cols := []string{"name", "size", "weight", "cost", "quantity", "type", "depot_id"}
	vals := []any{in.Name, in.Size, in.Weight, in.Cost, in.Quantity, in.Type, in.DepotID}
	if in.ExpiredAt != nil {
		cols = append(cols, "expiredat")
		vals = append(vals, *in.ExpiredAt)
	}

	q := builder().
		Insert(productTable).
		Columns(cols...).
		Values(vals...).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, wrapWriteError("product", err)
	}
	return id, nil
}

// Update replaces all fields of the product, selecting the statement
// shape by presence of the expiration date. Zero rows affected means
// the product does not exist.
func (r *ProductRepo) Update(ctx context.Context, id int64, in product.Input) error {
	q := builder().
		Update(productTable).
		Set("name", in.Name).
		Set("size", in.Size).
		Set("weight", in.Weight).
		Set("cost", in.Cost).
		Set("quantity", in.Quantity).
		Set("type", in.Type).
		Set("depot_id", in.DepotID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})
	if in.ExpiredAt != nil {
		q = q.Set("expiredat", *in.ExpiredAt)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteError("product", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("product", id)
	}
	return nil
}

// Delete removes the product. Dependent invoices go with it (cascade).
func (r *ProductRepo) Delete(ctx context.Context, id int64) error {
	q := builder().
		Delete(productTable).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteError("product", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("product", id)
	}
	return nil
}

// NameTaken reports whether a product other than excludeID already
// carries the given name.
func (r *ProductRepo) NameTaken(ctx context.Context, name string, excludeID int64) (bool, error) {
	q := builder().
		Select("1").
		From(productTable).
		Where(squirrel.Eq{"name": name}).
		Where(squirrel.NotEq{"id": excludeID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build exists: %w", err)
	}

	var one int
	err = r.pool.QueryRow(ctx, sql, args...).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, wrapReadError("product", err)
	}
	return true, nil
}

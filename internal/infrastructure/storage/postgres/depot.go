package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/depot"
)

const depotTable = "depots"

var depotColumns = []string{
	"id", "location", "size", "capacity", "type", "is_rented", "rent",
	"created_at", "updated_at",
}

// DepotRepo implements depot.Repository.
type DepotRepo struct {
	pool *Pool
}

// NewDepotRepo creates a new depot repository.
func NewDepotRepo(pool *Pool) *DepotRepo {
	return &DepotRepo{pool: pool}
}

// builder returns a squirrel builder with PostgreSQL placeholder format.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// List returns all depots ordered by id descending.
func (r *DepotRepo) List(ctx context.Context) ([]depot.Depot, error) {
	q := builder().
		Select(depotColumns...).
		From(depotTable).
		OrderBy("id DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var depots []depot.Depot
	if err := pgxscan.Select(ctx, r.pool, &depots, sql, args...); err != nil {
		return nil, wrapReadError("depot", err)
	}
	return depots, nil
}

// GetByID retrieves a depot by id.
func (r *DepotRepo) GetByID(ctx context.Context, id int64) (*depot.Depot, error) {
	q := builder().
		Select(depotColumns...).
		From(depotTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var d depot.Depot
	if err := pgxscan.Get(ctx, r.pool, &d, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("depot", id)
		}
		return nil, wrapReadError("depot", err)
	}
	return &d, nil
}

// Create inserts a new depot and returns the assigned id.
func (r *DepotRepo) Create(ctx context.Context, in depot.Input) (int64, error) {
	q := builder().
		Insert(depotTable).
		Columns("location", "size", "capacity", "type", "is_rented", "rent").
		Values(in.Location, in.Size, in.Capacity, in.Type, in.IsRented, in.Rent).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, wrapWriteError("depot", err)
	}
	return id, nil
}

// Update replaces all fields of the depot. Zero rows affected means the
// depot does not exist (the statement itself is the existence check).
func (r *DepotRepo) Update(ctx context.Context, id int64, in depot.Input) error {
	q := builder().
		Update(depotTable).
		Set("location", in.Location).
		Set("size", in.Size).
		Set("capacity", in.Capacity).
		Set("type", in.Type).
		Set("is_rented", in.IsRented).
		Set("rent", in.Rent).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteError("depot", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("depot", id)
	}
	return nil
}

// Delete removes the depot. Dependent products go with it (cascade).
func (r *DepotRepo) Delete(ctx context.Context, id int64) error {
	q := builder().
		Delete(depotTable).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteError("depot", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("depot", id)
	}
	return nil
}

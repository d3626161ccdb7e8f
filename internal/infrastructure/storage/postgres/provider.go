package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/provider"
)

const providerTable = "providers"

var providerColumns = []string{
	"id", "name", "email", "fax", "phone", "mat", "address", "country",
	"created_at", "updated_at",
}

// providerUniqueColumns whitelists the columns ValueTaken may probe.
var providerUniqueColumns = map[provider.UniqueField]string{
	provider.FieldName:  "name",
	provider.FieldEmail: "email",
	provider.FieldFax:   "fax",
	provider.FieldPhone: "phone",
	provider.FieldMat:   "mat",
}

// ProviderRepo implements provider.Repository.
type ProviderRepo struct {
	pool *Pool
}

// NewProviderRepo creates a new provider repository.
func NewProviderRepo(pool *Pool) *ProviderRepo {
	return &ProviderRepo{pool: pool}
}

// List returns all providers ordered by id descending.
func (r *ProviderRepo) List(ctx context.Context) ([]provider.Provider, error) {
	q := builder().
		Select(providerColumns...).
		From(providerTable).
		OrderBy("id DESC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	var providers []provider.Provider
	if err := pgxscan.Select(ctx, r.pool, &providers, sql, args...); err != nil {
		return nil, wrapReadError("provider", err)
	}
	return providers, nil
}

// GetByID retrieves a provider by id.
func (r *ProviderRepo) GetByID(ctx context.Context, id int64) (*provider.Provider, error) {
	q := builder().
		Select(providerColumns...).
		From(providerTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get: %w", err)
	}

	var p provider.Provider
	if err := pgxscan.Get(ctx, r.pool, &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("provider", id)
		}
		return nil, wrapReadError("provider", err)
	}
	return &p, nil
}

// Create inserts a new provider and returns the assigned id.
func (r *ProviderRepo) Create(ctx context.Context, in provider.Input) (int64, error) {
	q := builder().
		Insert(providerTable).
		Columns("name", "email", "fax", "phone", "mat", "address", "country").
		Values(in.Name, in.Email, in.Fax, in.Phone, in.Mat, in.Address, in.Country).
		Suffix("RETURNING id")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert: %w", err)
	}

	var id int64
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, wrapWriteError("provider", err)
	}
	return id, nil
}

// Update replaces all fields of the provider. Zero rows affected means
// the provider does not exist.
func (r *ProviderRepo) Update(ctx context.Context, id int64, in provider.Input) error {
	q := builder().
		Update(providerTable).
		Set("name", in.Name).
		Set("email", in.Email).
		Set("fax", in.Fax).
		Set("phone", in.Phone).
		Set("mat", in.Mat).
		Set("address", in.Address).
		Set("country", in.Country).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteError("provider", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("provider", id)
	}
	return nil
}

// Delete removes the provider. Dependent invoices go with it (cascade).
func (r *ProviderRepo) Delete(ctx context.Context, id int64) error {
	q := builder().
		Delete(providerTable).
		Where(squirrel.Eq{"id": id})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return wrapWriteError("provider", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("provider", id)
	}
	return nil
}

// ValueTaken reports whether a provider other than excludeID already
// carries the given value in the given unique column.
func (r *ProviderRepo) ValueTaken(ctx context.Context, field provider.UniqueField, value string, excludeID int64) (bool, error) {
	col, ok := providerUniqueColumns[field]
	if !ok {
		return false, fmt.Errorf("unknown unique field %q", field)
	}

	q := builder().
		Select("1").
		From(providerTable).
		Where(squirrel.Eq{col: value}).
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
		return false, wrapReadError("provider", err)
	}
	return true, nil
}

//go:build integration
// +build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"stockyard/internal/core/apperror"
	"stockyard/internal/domain/depot"
	"stockyard/internal/domain/invoice"
	"stockyard/internal/domain/product"
	"stockyard/internal/domain/provider"
)

// setupPool starts a PostgreSQL container, applies the schema and returns
// a ready pool. The container is terminated when the test finishes.
func setupPool(t *testing.T) *Pool {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:alpine",
		tcpostgres.WithDatabase("stockyard_test"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "start postgres container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := NewPool(ctx, DefaultPoolConfig(dsn))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, ApplySchema(ctx, pool))
	return pool
}

func depotInput() depot.Input {
	return depot.Input{
		Location: "tunis",
		Size:     "10x10",
		Capacity: 5,
		Type:     "food",
		Rent:     decimal.NewFromInt(100),
	}
}

func productInput(depotID int64, name string) product.Input {
	return product.Input{
		Name:     name,
		Size:     "25kg bag",
		Weight:   decimal.NewFromInt(25),
		Cost:     decimal.NewFromFloat(12.5),
		Quantity: 40,
		Type:     "food",
		DepotID:  depotID,
	}
}

func providerInput(name, email string) provider.Input {
	return provider.Input{
		Name:    name,
		Email:   email,
		Address: "12 harbor road",
		Country: "tunisia",
	}
}

func TestDepotRoundTrip(t *testing.T) {
	pool := setupPool(t)
	repo := NewDepotRepo(pool)
	ctx := context.Background()

	id, err := repo.Create(ctx, depotInput())
	require.NoError(t, err)
	require.Positive(t, id)

	d, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "tunis", d.Location)
	assert.False(t, d.IsRented)
	assert.True(t, d.Rent.Equal(decimal.NewFromInt(100)))
	assert.False(t, d.CreatedAt.IsZero())

	in := depotInput()
	in.Location = "sfax"
	in.IsRented = true
	require.NoError(t, repo.Update(ctx, id, in))

	d, err = repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "sfax", d.Location)
	assert.True(t, d.IsRented)
	assert.True(t, d.UpdatedAt.After(d.CreatedAt) || d.UpdatedAt.Equal(d.CreatedAt))

	require.NoError(t, repo.Delete(ctx, id))
	assert.True(t, apperror.IsNotFound(repo.Delete(ctx, id)))

	_, err = repo.GetByID(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDepotListNewestFirst(t *testing.T) {
	pool := setupPool(t)
	repo := NewDepotRepo(pool)
	ctx := context.Background()

	first, err := repo.Create(ctx, depotInput())
	require.NoError(t, err)
	second, err := repo.Create(ctx, depotInput())
	require.NoError(t, err)

	depots, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, depots, 2)
	assert.Equal(t, second, depots[0].ID)
	assert.Equal(t, first, depots[1].ID)
}

func TestProductForeignKeyAndCascade(t *testing.T) {
	pool := setupPool(t)
	depots := NewDepotRepo(pool)
	products := NewProductRepo(pool)
	ctx := context.Background()

	// Dangling depot reference is rejected as a foreign key violation.
	_, err := products.Create(ctx, productInput(999, "rice"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeForeignKey, appErr.Code)
	assert.Equal(t, "depot_id", appErr.Details["field"])

	depotID, err := depots.Create(ctx, depotInput())
	require.NoError(t, err)

	productID, err := products.Create(ctx, productInput(depotID, "rice"))
	require.NoError(t, err)

	// Deleting the depot cascades to its products.
	require.NoError(t, depots.Delete(ctx, depotID))
	_, err = products.GetByID(ctx, productID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestProductExpirationColumnOmittedWhenAbsent(t *testing.T) {
	pool := setupPool(t)
	depots := NewDepotRepo(pool)
	products := NewProductRepo(pool)
	ctx := context.Background()

	depotID, err := depots.Create(ctx, depotInput())
	require.NoError(t, err)

	id, err := products.Create(ctx, productInput(depotID, "rice"))
	require.NoError(t, err)

	p, err := products.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, p.ExpiredAt)

	in := productInput(depotID, "rice")
	when := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	in.ExpiredAt = &when
	require.NoError(t, products.Update(ctx, id, in))

	p, err = products.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, p.ExpiredAt)
	assert.Equal(t, "2026-12-01", p.ExpiredAt.Format("2006-01-02"))

	// An update without the date leaves the stored value in place.
	require.NoError(t, products.Update(ctx, id, productInput(depotID, "rice")))
	p, err = products.GetByID(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, p.ExpiredAt)
}

func TestProductNameTaken(t *testing.T) {
	pool := setupPool(t)
	depots := NewDepotRepo(pool)
	products := NewProductRepo(pool)
	ctx := context.Background()

	depotID, err := depots.Create(ctx, depotInput())
	require.NoError(t, err)

	id, err := products.Create(ctx, productInput(depotID, "rice"))
	require.NoError(t, err)

	taken, err := products.NameTaken(ctx, "rice", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	// The row being updated does not count against itself.
	taken, err = products.NameTaken(ctx, "rice", id)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = products.NameTaken(ctx, "flour", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestProviderDuplicateConstraint(t *testing.T) {
	pool := setupPool(t)
	repo := NewProviderRepo(pool)
	ctx := context.Background()

	_, err := repo.Create(ctx, providerInput("acme supplies", "contact@acme.example"))
	require.NoError(t, err)

	// The unique index backs up the service-level check.
	_, err = repo.Create(ctx, providerInput("other supplies", "contact@acme.example"))
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.Equal(t, "email", appErr.Details["field"])

	taken, err := repo.ValueTaken(ctx, provider.FieldEmail, "contact@acme.example", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ValueTaken(ctx, provider.FieldFax, "71000000", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestInvoiceRoundTripWithReferences(t *testing.T) {
	pool := setupPool(t)
	depots := NewDepotRepo(pool)
	products := NewProductRepo(pool)
	providers := NewProviderRepo(pool)
	invoices := NewInvoiceRepo(pool)
	ctx := context.Background()

	depotID, err := depots.Create(ctx, depotInput())
	require.NoError(t, err)
	productID, err := products.Create(ctx, productInput(depotID, "rice"))
	require.NoError(t, err)
	providerID, err := providers.Create(ctx, providerInput("acme supplies", "contact@acme.example"))
	require.NoError(t, err)

	in := invoice.Input{
		ProductID:  productID,
		ProviderID: providerID,
		Status:     "received",
		Quantity:   10,
		ReceivedAt: time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Price:      decimal.NewFromFloat(12.5),
		Discount:   decimal.NewFromInt(5),
		Total:      decimal.NewFromFloat(118.75),
	}
	id, err := invoices.Create(ctx, in)
	require.NoError(t, err)

	inv, err := invoices.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "received", inv.Status)
	assert.Equal(t, "2026-08-15", inv.ReceivedAt.Format("2006-01-02"))
	assert.True(t, inv.Total.Equal(decimal.NewFromFloat(118.75)))

	// Deleting the referenced product cascades to the invoice.
	require.NoError(t, products.Delete(ctx, productID))
	_, err = invoices.GetByID(ctx, id)
	assert.True(t, apperror.IsNotFound(err))
}

func TestUpdateMissingRowIsNotFound(t *testing.T) {
	pool := setupPool(t)
	repo := NewDepotRepo(pool)

	err := repo.Update(context.Background(), 42, depotInput())
	assert.True(t, apperror.IsNotFound(err))
}

func TestEmptyListReturnsNoRows(t *testing.T) {
	pool := setupPool(t)
	repo := NewDepotRepo(pool)

	depots, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, depots)
}

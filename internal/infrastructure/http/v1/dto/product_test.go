package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/domain/product"
)

func TestProductRequestToInput(t *testing.T) {
	req := ProductRequest{
		Name:      "rice",
		Size:      "25kg bag",
		Weight:    decimal.NewFromInt(25),
		Cost:      decimal.NewFromFloat(12.5),
		Quantity:  40,
		Type:      "food",
		ExpiredAt: "2026-12-01",
		DepotID:   1,
	}

	in, aerr := req.ToInput()
	require.Nil(t, aerr)
	require.NotNil(t, in.ExpiredAt)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), *in.ExpiredAt)
}

func TestProductRequestToInputWithoutExpiration(t *testing.T) {
	req := ProductRequest{Name: "rice", ExpiredAt: ""}

	in, aerr := req.ToInput()
	require.Nil(t, aerr)
	assert.Nil(t, in.ExpiredAt)
}

func TestProductRequestToInputRejectsBadDate(t *testing.T) {
	req := ProductRequest{Name: "rice", ExpiredAt: "december"}

	_, aerr := req.ToInput()
	require.NotNil(t, aerr)
	assert.Equal(t, 422, aerr.HTTPStatus)
}

func TestFromProductFormatsExpiration(t *testing.T) {
	when := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	p := &product.Product{ID: 1, Name: "rice", ExpiredAt: &when}

	resp := FromProduct(p)
	require.NotNil(t, resp.ExpiredAt)
	assert.Equal(t, "2026-12-01", *resp.ExpiredAt)
}

func TestFromProductOmitsMissingExpiration(t *testing.T) {
	p := &product.Product{ID: 1, Name: "rice"}

	resp := FromProduct(p)
	assert.Nil(t, resp.ExpiredAt)
}

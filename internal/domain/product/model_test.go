package product

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validInput() Input {
	return Input{
		Name:     "rice",
		Size:     "25kg bag",
		Weight:   decimal.NewFromInt(25),
		Cost:     decimal.NewFromFloat(12.5),
		Quantity: 40,
		Type:     "food",
		DepotID:  1,
	}
}

func TestInputValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"valid", func(in *Input) {}, ""},
		{"short name", func(in *Input) { in.Name = "r" }, "name"},
		{"short size", func(in *Input) { in.Size = "xs" }, "size"},
		{"weight below one", func(in *Input) { in.Weight = decimal.NewFromFloat(0.5) }, "weight"},
		{"cost below one", func(in *Input) { in.Cost = decimal.Zero }, "cost"},
		{"zero quantity", func(in *Input) { in.Quantity = 0 }, "quantity"},
		{"missing type", func(in *Input) { in.Type = "" }, "type"},
		{"zero depot id", func(in *Input) { in.DepotID = 0 }, "depot_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			fields := in.Validate()
			if tt.field == "" {
				assert.Empty(t, fields)
				return
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestInputValidateExpirationIsOptional(t *testing.T) {
	in := validInput()
	assert.Empty(t, in.Validate())

	when := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	in.ExpiredAt = &when
	assert.Empty(t, in.Validate())
}

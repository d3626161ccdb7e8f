// Package provider provides the Provider entity: a supplier that
// delivers products, referenced by invoices.
package provider

import (
	"regexp"
	"time"
)

var emailRE = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Provider represents a supplier.
type Provider struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Fax       *string   `db:"fax" json:"fax,omitempty"`
	Phone     *string   `db:"phone" json:"phone,omitempty"`
	Mat       *string   `db:"mat" json:"mat,omitempty"`
	Address   string    `db:"address" json:"address"`
	Country   string    `db:"country" json:"country"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// Input is the submitted field set for create and update operations.
// Fax, Phone and Mat are optional; when present each must be unique
// across all providers, independently of the others.
type Input struct {
	Name    string
	Email   string
	Fax     *string
	Phone   *string
	Mat     *string
	Address string
	Country string
}

// Validate checks the input against the provider rules and returns a
// field -> reason map. An empty map means the input is accepted.
// Uniqueness of name, email, fax, phone and mat is checked separately
// against the store.
func (in Input) Validate() map[string]string {
	fields := make(map[string]string)

	if in.Name == "" {
		fields["name"] = "is required"
	}
	if in.Email == "" {
		fields["email"] = "is required"
	} else if !emailRE.MatchString(in.Email) {
		fields["email"] = "must be a valid email address"
	}
	if in.Fax != nil && len(*in.Fax) < 6 {
		fields["fax"] = "must be at least 6 characters"
	}
	if in.Phone != nil && len(*in.Phone) < 6 {
		fields["phone"] = "must be at least 6 characters"
	}
	if in.Address == "" {
		fields["address"] = "is required"
	}
	if in.Country == "" {
		fields["country"] = "is required"
	}

	return fields
}

// UniqueField names a provider column constrained to be unique.
type UniqueField string

const (
	FieldName  UniqueField = "name"
	FieldEmail UniqueField = "email"
	FieldFax   UniqueField = "fax"
	FieldPhone UniqueField = "phone"
	FieldMat   UniqueField = "mat"
)

// UniqueValue pairs a unique-constrained field with its submitted value.
type UniqueValue struct {
	Field UniqueField
	Value string
}

// UniqueValues returns the unique-constrained fields present in the
// input, in a fixed order. Absent optional fields are skipped.
func (in Input) UniqueValues() []UniqueValue {
	values := []UniqueValue{
		{FieldName, in.Name},
		{FieldEmail, in.Email},
	}
	if in.Fax != nil {
		values = append(values, UniqueValue{FieldFax, *in.Fax})
	}
	if in.Phone != nil {
		values = append(values, UniqueValue{FieldPhone, *in.Phone})
	}
	if in.Mat != nil {
		values = append(values, UniqueValue{FieldMat, *in.Mat})
	}
	return values
}

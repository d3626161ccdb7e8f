// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"stockyard/internal/core/apperror"
)

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"

// DataResponse wraps list and show results under a data key.
type DataResponse struct {
	Data any `json:"data"`
}

// IDResponse carries the id assigned on create.
type IDResponse struct {
	ID int64 `json:"id"`
}

// SuccessResponse is the envelope for successful mutations.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// parseOptionalDate parses a date-only field that may be absent. An
// empty string means absent, not a zero date.
func parseOptionalDate(field, value string) (*time.Time, *apperror.AppError) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, apperror.NewFieldValidation(map[string]string{
			field: "must be a date in YYYY-MM-DD format",
		})
	}
	return &t, nil
}

// parseRequiredDate parses a required date-only field. An empty value
// yields a zero time so the validator reports the missing field.
func parseRequiredDate(field, value string) (time.Time, *apperror.AppError) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperror.NewFieldValidation(map[string]string{
			field: "must be a date in YYYY-MM-DD format",
		})
	}
	return t, nil
}

// formatDate renders a date-only field for responses.
func formatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// optionalString normalizes an optional text field: an empty submitted
// value counts as absent.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

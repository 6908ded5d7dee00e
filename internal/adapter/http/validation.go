package http

import (
	"errors"
	"reflect"
	"strings"

	"lostfound/internal/domain/claim"
	"lostfound/internal/domain/item"
	"lostfound/internal/domain/user"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// report field errors under their wire names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})

	// items are registered or toggled as lost/found only
	_ = v.RegisterValidation("item_status", func(fl validator.FieldLevel) bool {
		return item.Status(fl.Field().String()).Reportable()
	})
	_ = v.RegisterValidation("item_status_filter", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || item.Status(s).Valid()
	})
	_ = v.RegisterValidation("decision", func(fl validator.FieldLevel) bool {
		return claim.Status(fl.Field().String()).IsDecision()
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return user.Role(fl.Field().String()).Valid()
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email address"})
		case "item_status":
			out = append(out, FieldError{Field: field, Message: "must be one of: lost, found"})
		case "item_status_filter":
			out = append(out, FieldError{Field: field, Message: "must be one of: lost, found, claimed"})
		case "decision":
			out = append(out, FieldError{Field: field, Message: "must be one of: approved, rejected"})
		case "role":
			out = append(out, FieldError{Field: field, Message: "must be one of: student, staff, admin"})
		case "max":
			out = append(out, FieldError{Field: field, Message: "must be at most " + e.Param() + " characters"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}

package http

import (
	"errors"
	"strings"
	"testing"
)

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func TestItemStatusValidation(t *testing.T) {
	type P struct {
		Status string `json:"status" validate:"item_status"`
	}
	cv := NewValidator()

	for _, s := range []string{"lost", "found"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %q valid, got %v", s, err)
		}
	}
	for _, s := range []string{"", "claimed", "LOST", "stolen"} {
		err := cv.Validate(P{Status: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		if fe := ToFieldErrors(err); !containsFieldMsg(fe, "status", "lost, found") {
			t.Fatalf("expected item_status message for %q, got %+v", s, fe)
		}
	}
}

func TestItemStatusFilterValidation(t *testing.T) {
	type P struct {
		Status string `json:"status" validate:"item_status_filter"`
	}
	cv := NewValidator()

	for _, s := range []string{"", "lost", "found", "claimed"} {
		if err := cv.Validate(P{Status: s}); err != nil {
			t.Fatalf("expected %q valid, got %v", s, err)
		}
	}
	if err := cv.Validate(P{Status: "gone"}); err == nil {
		t.Fatal("expected error for unknown filter")
	}
}

func TestDecisionValidation(t *testing.T) {
	type P struct {
		Decision string `json:"decision" validate:"required,decision"`
	}
	cv := NewValidator()

	for _, d := range []string{"approved", "rejected"} {
		if err := cv.Validate(P{Decision: d}); err != nil {
			t.Fatalf("expected %q valid, got %v", d, err)
		}
	}
	err := cv.Validate(P{Decision: "pending"})
	if err == nil {
		t.Fatal("pending must not be a decision")
	}
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "decision", "approved, rejected") {
		t.Fatalf("unexpected details: %+v", fe)
	}
}

func TestRoleValidation(t *testing.T) {
	type P struct {
		Role string `json:"role" validate:"omitempty,role"`
	}
	cv := NewValidator()

	for _, r := range []string{"", "student", "staff", "admin"} {
		if err := cv.Validate(P{Role: r}); err != nil {
			t.Fatalf("expected %q valid, got %v", r, err)
		}
	}
	err := cv.Validate(P{Role: "janitor"})
	if fe := ToFieldErrors(err); !containsFieldMsg(fe, "role", "student, staff, admin") {
		t.Fatalf("unexpected details: %+v", fe)
	}
}

func TestRequiredAndBoundsMapping(t *testing.T) {
	type P struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"email"`
		Short string `validate:"max=3"`
		Min   int    `validate:"gte=10"`
		Max   int    `validate:"lte=5"`
	}
	cv := NewValidator()

	err := cv.Validate(P{Email: "nope", Short: "abcd", Min: 9, Max: 6})
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	fe := ToFieldErrors(err)

	// json names where tagged, Go names otherwise
	if !containsFieldMsg(fe, "name", "is required") {
		t.Fatalf("missing 'is required' for name: %+v", fe)
	}
	if !containsFieldMsg(fe, "email", "valid email") {
		t.Fatalf("missing email message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Short", "at most 3 characters") {
		t.Fatalf("missing max message: %+v", fe)
	}
	if !containsFieldMsg(fe, "Min", "greater than or equal to 10") {
		t.Fatalf("missing gte message for Min: %+v", fe)
	}
	if !containsFieldMsg(fe, "Max", "less than or equal to 5") {
		t.Fatalf("missing lte message for Max: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	err := errors.New("boom")
	fe := ToFieldErrors(err)
	if len(fe) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(fe))
	}
	if fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe[0])
	}
}

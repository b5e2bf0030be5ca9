package utils

import "testing"

func TestValidateStructNumericBounds(t *testing.T) {
	type payload struct {
		TotalCost int `validate:"gte=0"`
		UserType  int `validate:"gte=0,lte=1"`
	}

	errs := ValidateStruct(&payload{TotalCost: -5, UserType: 2})
	if len(errs) != 2 {
		t.Fatalf("Expected 2 validation errors, got %d: %v", len(errs), errs)
	}
	if errs["TotalCost"] != "Must be at least 0" {
		t.Errorf("Unexpected gte message: %q", errs["TotalCost"])
	}
	if errs["UserType"] != "Must be at most 1" {
		t.Errorf("Unexpected lte message: %q", errs["UserType"])
	}
}

func TestValidateStructPasses(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	if errs := ValidateStruct(&payload{Email: "jane@example.com"}); errs != nil {
		t.Fatalf("Expected no errors, got %v", errs)
	}
}

package validate_test

import (
	"testing"

	"github.com/zephyrlabs/zephyr/pkg/validate"
)

type signupInput struct {
	Username string `form:"username" validate:"required,min=2,max=50"`
	Email    string `form:"email"    validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(signupInput{
		Username: "scottn",
		Email:    "scott@example.com",
		Password: "hunter22",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(signupInput{})
	if !validate.HasErrors(errs) {
		t.Error("expected required errors")
	}
	if _, ok := errs["username"]; !ok {
		t.Error("expected username to be required")
	}
	if _, ok := errs["email"]; !ok {
		t.Error("expected email to be required")
	}
	if _, ok := errs["password"]; !ok {
		t.Error("expected password to be required")
	}
}

func TestRequiredRejectsWhitespace(t *testing.T) {
	errs := validate.Struct(signupInput{Username: "   ", Email: "a@b.co", Password: "x"})
	if _, ok := errs["username"]; !ok {
		t.Error("expected whitespace-only username to fail required")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `form:"email" validate:"required,email"`
	}
	errs := validate.Struct(in{Email: "not-an-email"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email validation error")
	}
	errs = validate.Struct(in{Email: "valid@example.com"})
	if validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Capacity int `form:"capacity" validate:"gte=0,lte=10000"`
	}
	if errs := validate.Struct(in{Capacity: -1}); !validate.HasErrors(errs) {
		t.Error("expected capacity < 0 to fail")
	}
	if errs := validate.Struct(in{Capacity: 25}); validate.HasErrors(errs) {
		t.Errorf("expected capacity 25 to pass, got: %v", errs)
	}
}

func TestNullableSkipsRules(t *testing.T) {
	type in struct {
		Category string `form:"category" validate:"nullable,in=shirts|pants|outerwear|accessories"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected empty nullable field to pass, got: %v", errs)
	}
	if errs := validate.Struct(in{Category: "hats"}); !validate.HasErrors(errs) {
		t.Error("expected unknown category to fail the in rule")
	}
	if errs := validate.Struct(in{Category: "pants"}); validate.HasErrors(errs) {
		t.Errorf("expected pants to pass, got: %v", errs)
	}
}

func TestMinMaxStringLength(t *testing.T) {
	type in struct {
		Username string `form:"username" validate:"required,min=2,max=5"`
	}
	if errs := validate.Struct(in{Username: "a"}); !validate.HasErrors(errs) {
		t.Error("expected 1-char username to fail min=2")
	}
	if errs := validate.Struct(in{Username: "abcdef"}); !validate.HasErrors(errs) {
		t.Error("expected 6-char username to fail max=5")
	}
}

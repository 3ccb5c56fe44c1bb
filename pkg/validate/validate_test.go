package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/homegrown/pkg/validate"
)

type addressInput struct {
	Type     string `json:"type"     validate:"required,in=home,work,other"`
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Phone    string `json:"phone"    validate:"required,min=7,max=15"`
	City     string `json:"city"     validate:"required"`
	Pincode  string `json:"pincode"  validate:"required,digits=6"`
	Landmark string `json:"landmark" validate:"nullable,min=3"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(addressInput{
		Type:     "home",
		FullName: "Asha Rao",
		Phone:    "9876543210",
		City:     "Pune",
		Pincode:  "411001",
		Landmark: "", // nullable, allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(addressInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"type", "fullName", "phone", "city", "pincode"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestInRuleWithMultipleValues(t *testing.T) {
	errs := validate.Struct(addressInput{
		Type: "office", FullName: "Asha Rao", Phone: "9876543210",
		City: "Pune", Pincode: "411001",
	})
	if _, ok := errs["type"]; !ok {
		t.Error("expected type to fail the in rule")
	}

	errs = validate.Struct(addressInput{
		Type: "work", FullName: "Asha Rao", Phone: "9876543210",
		City: "Pune", Pincode: "411001",
	})
	if _, ok := errs["type"]; ok {
		t.Errorf("work should satisfy the in rule, got: %v", errs["type"])
	}
}

func TestDigitsRule(t *testing.T) {
	base := addressInput{Type: "home", FullName: "Asha Rao", Phone: "9876543210", City: "Pune"}

	base.Pincode = "41100"
	if _, ok := validate.Struct(base)["pincode"]; !ok {
		t.Error("five digits should fail digits=6")
	}

	base.Pincode = "4110a1"
	if _, ok := validate.Struct(base)["pincode"]; !ok {
		t.Error("non-digit characters should fail digits=6")
	}

	base.Pincode = "411001"
	if _, ok := validate.Struct(base)["pincode"]; ok {
		t.Error("six digits should pass digits=6")
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if _, ok := validate.Struct(in{Email: "not-an-email"})["email"]; !ok {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	base := addressInput{
		Type: "home", FullName: "Asha Rao", Phone: "9876543210",
		City: "Pune", Pincode: "411001",
	}

	if errs := validate.Struct(base); validate.HasErrors(errs) {
		t.Errorf("empty nullable field should pass, got: %v", errs)
	}

	base.Landmark = "ab"
	if _, ok := validate.Struct(base)["landmark"]; !ok {
		t.Error("non-empty nullable field should still honour min")
	}
}

func TestNumericRules(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gt=0"`
		Qty   int     `json:"qty"   validate:"nullable,gte=1"`
	}

	if _, ok := validate.Struct(in{Price: -5})["price"]; !ok {
		t.Error("negative price should fail gt=0")
	}
	if errs := validate.Struct(in{Price: 10, Qty: 2}); validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

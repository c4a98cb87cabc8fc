package validate_test

import (
	"testing"

	"github.com/firelovers/storefront/pkg/validate"
)

type createProductInput struct {
	Name        string   `json:"name"        validate:"required,max=255"`
	About       string   `json:"about"       validate:"required"`
	Price       float64  `json:"price"       validate:"required,gt=0"`
	CategoryIDs []string `json:"categoryIds" validate:"nullable"`
	Channel     string   `json:"channel"     validate:"nullable,in=web,mobile"`
	Homepage    string   `json:"homepage"    validate:"nullable,url"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(createProductInput{
		Name:     "Keyboard",
		About:    "Mechanical, hot-swappable",
		Price:    89.90,
		Channel:  "web",
		Homepage: "https://example.com",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(createProductInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "about", "price"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
	if _, ok := errs["categoryIds"]; ok {
		t.Error("nullable categoryIds should not error when empty")
	}
}

func TestGtRejectsZeroAndNegative(t *testing.T) {
	type in struct {
		Price float64 `json:"price" validate:"required,gt=0"`
	}
	if errs := validate.Struct(in{Price: -5}); !validate.HasErrors(errs) {
		t.Error("expected negative price to fail")
	}
	if errs := validate.Struct(in{Price: 0.01}); validate.HasErrors(errs) {
		t.Errorf("expected positive price to pass, got: %v", errs)
	}
}

func TestScoreBounds(t *testing.T) {
	type in struct {
		Score int `json:"score" validate:"required,gte=1,lte=5"`
	}
	if errs := validate.Struct(in{Score: 6}); !validate.HasErrors(errs) {
		t.Error("expected score > 5 to fail")
	}
	if errs := validate.Struct(in{Score: 1}); validate.HasErrors(errs) {
		t.Errorf("expected score 1 to pass, got: %v", errs)
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestInRuleKeepsMultiValueParams(t *testing.T) {
	type in struct {
		Channel string `json:"channel" validate:"required,in=web,mobile,max=20"`
	}
	if errs := validate.Struct(in{Channel: "desktop"}); !validate.HasErrors(errs) {
		t.Error("expected channel outside the list to fail")
	}
	if errs := validate.Struct(in{Channel: "mobile"}); validate.HasErrors(errs) {
		t.Errorf("expected listed channel to pass, got: %v", errs)
	}
}

func TestNullablePointerFields(t *testing.T) {
	type in struct {
		Email *string `json:"email" validate:"nullable,email"`
	}
	if errs := validate.Struct(in{}); validate.HasErrors(errs) {
		t.Errorf("expected nil pointer to pass, got: %v", errs)
	}
	bad := "nope"
	if errs := validate.Struct(in{Email: &bad}); !validate.HasErrors(errs) {
		t.Error("expected invalid email behind pointer to fail")
	}
	good := "a@b.co"
	if errs := validate.Struct(in{Email: &good}); validate.HasErrors(errs) {
		t.Errorf("expected valid email behind pointer to pass, got: %v", errs)
	}
}

func TestRequiredBoolPointer(t *testing.T) {
	type in struct {
		Payment *bool `json:"payment" validate:"required"`
	}
	if errs := validate.Struct(in{}); !validate.HasErrors(errs) {
		t.Error("expected missing payment to fail")
	}
	f := false
	if errs := validate.Struct(in{Payment: &f}); validate.HasErrors(errs) {
		t.Errorf("expected explicit false to pass, got: %v", errs)
	}
}

func TestParseDateLayouts(t *testing.T) {
	for _, s := range []string{"2025-03-14T09:26:53Z", "2025-03-14", "14/03/2025"} {
		if _, err := validate.ParseDate(s); err != nil {
			t.Errorf("expected %q to parse: %v", s, err)
		}
	}
	if _, err := validate.ParseDate("not a date"); err == nil {
		t.Error("expected garbage to fail")
	}
}

package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	pkgerrors "github.com/lowkeylegends/storefront-backend/pkg/errors"
)

type signupBody struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestDecodeJSONBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","password":"longenough"}`))

	var body signupBody
	if err := DecodeJSONBody(r, &body); err != nil {
		t.Fatalf("decode valid body: %v", err)
	}
	if body.Email != "a@b.com" {
		t.Fatalf("unexpected email %q", body.Email)
	}
}

func TestDecodeJSONBody_ToleratesUnknownFields(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"a@b.com","password":"longenough","extra":true}`))

	var body signupBody
	if err := DecodeJSONBody(r, &body); err != nil {
		t.Fatalf("unknown fields should be ignored: %v", err)
	}
}

func TestDecodeJSONBody_InvalidJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{`))

	var body signupBody
	err := DecodeJSONBody(r, &body)
	if err == nil {
		t.Fatalf("expected error for malformed body")
	}
	if pkgerrors.CodeOf(err) != pkgerrors.CodeValidation {
		t.Fatalf("unexpected code %s", pkgerrors.CodeOf(err))
	}
}

func TestDecodeJSONBody_ValidationMessages(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader(`{"email":"nope","password":"short"}`))

	var body signupBody
	err := DecodeJSONBody(r, &body)
	if err == nil {
		t.Fatalf("expected validation error")
	}

	typed := pkgerrors.As(err)
	if typed == nil {
		t.Fatalf("expected typed error, got %T", err)
	}
	msg := typed.Message()
	if !strings.Contains(msg, "email must be a valid email") {
		t.Errorf("missing email message in %q", msg)
	}
	if !strings.Contains(msg, "password must be at least 8") {
		t.Errorf("missing password message in %q", msg)
	}
}

func TestSanitizeString(t *testing.T) {
	if got := SanitizeString("  hello  ", 0); got != "hello" {
		t.Fatalf("trim failed: %q", got)
	}
	if got := SanitizeString("abcdef", 3); got != "abc" {
		t.Fatalf("clamp failed: %q", got)
	}
}

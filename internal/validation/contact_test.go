package validation

import (
	"strings"
	"testing"

	"github.com/portfolio/backend/internal/api"
)

func validInput() ContactInput {
	return ContactInput{
		FullName: "John Doe",
		Email:    "john@example.com",
		Phone:    "0123456789",
		Subject:  "Project inquiry",
		Message:  "I would like to discuss a project with you.",
	}
}

func containsField(errs []api.FieldError, field string) bool {
	for _, e := range errs {
		if e.Field == field {
			return true
		}
	}
	return false
}

func TestContactValid(t *testing.T) {
	if errs := Contact(validInput()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestContactMissingFields(t *testing.T) {
	errs := Contact(ContactInput{})
	if len(errs) != 5 {
		t.Fatalf("expected 5 errors, got %d: %v", len(errs), errs)
	}

	want := map[string]bool{
		"fullName": false,
		"email":    false,
		"phone":    false,
		"subject":  false,
		"message":  false,
	}
	for _, e := range errs {
		if _, ok := want[e.Field]; !ok {
			t.Errorf("unexpected field %q", e.Field)
			continue
		}
		want[e.Field] = true
	}
	for field, seen := range want {
		if !seen {
			t.Errorf("missing error for field %q", field)
		}
	}
}

func TestContactCollectsAllFailures(t *testing.T) {
	in := validInput()
	in.FullName = "J"
	in.Email = "not-an-email"
	errs := Contact(in)

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestContactNameBounds(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"too short", "J", true},
		{"min length", "Jo", false},
		{"max length", strings.Repeat("a", 50), false},
		{"too long", strings.Repeat("a", 51), true},
		{"whitespace only", "   ", true},
		{"trimmed to valid", "  Jo  ", false},
		{"multibyte in bounds", "Jürgen Müller-Lüdenscheidt von Österreichhausen", false},
		{"multibyte at max", strings.Repeat("ü", 50), false},
		{"multibyte too long", strings.Repeat("ü", 51), true},
		{"multibyte too short", "é", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.FullName = tc.value
			errs := Contact(in)
			if got := containsField(errs, "fullName"); got != tc.wantErr {
				t.Errorf("fullName %q: error=%v, want %v (%v)", tc.value, got, tc.wantErr, errs)
			}
		})
	}
}

func TestContactEmailPattern(t *testing.T) {
	cases := []struct {
		value   string
		wantErr bool
	}{
		{"john@example.com", false},
		{"john.doe@mail.example.co", false},
		{"j-d@ex-ample.com", false},
		{"missing-at.example.com", true},
		{"john@", true},
		{"@example.com", true},
		{"john@example", true},
	}
	for _, tc := range cases {
		in := validInput()
		in.Email = tc.value
		errs := Contact(in)
		if got := containsField(errs, "email"); got != tc.wantErr {
			t.Errorf("email %q: error=%v, want %v", tc.value, got, tc.wantErr)
		}
	}
}

func TestContactPhoneNormalization(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"bare digits", "0123456789", false},
		{"formatted", "(012) 345-6789", false},
		{"international", "+1 012 345 6789", false},
		{"dotted", "012.345.6789", false},
		{"nine digits formatted", "(012) 345-678", true},
		{"nine digits", "012345678", true},
		{"letters", "01234abcde", true},
		{"empty", "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Phone = tc.value
			errs := Contact(in)
			if got := containsField(errs, "phone"); got != tc.wantErr {
				t.Errorf("phone %q: error=%v, want %v (%v)", tc.value, got, tc.wantErr, errs)
			}
		})
	}
}

func TestContactSubjectBounds(t *testing.T) {
	cases := []struct {
		value   string
		wantErr bool
	}{
		{"Hello", false},
		{"Hi", true},
		{strings.Repeat("s", 100), false},
		{strings.Repeat("s", 101), true},
		{strings.Repeat("ö", 100), false},
		{strings.Repeat("ö", 101), true},
	}
	for _, tc := range cases {
		in := validInput()
		in.Subject = tc.value
		errs := Contact(in)
		if got := containsField(errs, "subject"); got != tc.wantErr {
			t.Errorf("subject len %d: error=%v, want %v", len(tc.value), got, tc.wantErr)
		}
	}
}

func TestContactMessageBounds(t *testing.T) {
	in := validInput()
	in.Message = "too short"
	if !containsField(Contact(in), "message") {
		t.Error("expected error for 9-char message")
	}

	in.Message = "exactly10c"
	if containsField(Contact(in), "message") {
		t.Error("unexpected error for 10-char message")
	}

	in.Message = strings.Repeat("m", 1000)
	if containsField(Contact(in), "message") {
		t.Error("unexpected error for 1000-char message")
	}

	in.Message = strings.Repeat("m", 1001)
	if !containsField(Contact(in), "message") {
		t.Error("expected error for 1001-char message")
	}

	in.Message = strings.Repeat("文", 1000)
	if containsField(Contact(in), "message") {
		t.Error("unexpected error for 1000-rune multibyte message")
	}

	in.Message = strings.Repeat("文", 1001)
	if !containsField(Contact(in), "message") {
		t.Error("expected error for 1001-rune multibyte message")
	}
}

func TestNormalizePhone(t *testing.T) {
	if got := NormalizePhone(" +1 (012) 345-67.89 "); got != "10123456789" {
		t.Errorf("expected 10123456789, got %q", got)
	}
}

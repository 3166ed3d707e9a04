// Package validation checks contact-form submissions against the
// format and length rules enforced before anything is persisted. All
// failing fields are collected so the caller can report every problem
// at once.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/portfolio/backend/internal/api"
)

// Field bounds for a contact submission.
const (
	NameMinLen    = 2
	NameMaxLen    = 50
	SubjectMinLen = 5
	SubjectMaxLen = 100
	MessageMinLen = 10
	MessageMaxLen = 1000
	PhoneMinLen   = 10
)

var (
	emailRe = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)
	digitRe = regexp.MustCompile(`^[0-9]+$`)

	// phoneStrip removes common formatting characters before the
	// digit-length check: spaces, dashes, dots, parentheses and a
	// leading plus.
	phoneStrip = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "", "+", "")
)

// ContactInput carries the raw submitted form fields.
type ContactInput struct {
	FullName string
	Email    string
	Phone    string
	Subject  string
	Message  string
}

// NormalizePhone strips formatting characters from a phone string,
// leaving whatever the submitter typed minus separators.
func NormalizePhone(phone string) string {
	return phoneStrip.Replace(strings.TrimSpace(phone))
}

// Contact validates a submission and returns every field-level failure.
// A nil or empty result means the submission is valid. It never panics
// on malformed input.
func Contact(in ContactInput) []api.FieldError {
	var errs []api.FieldError
	add := func(field, message string) {
		errs = append(errs, api.FieldError{Field: field, Message: message})
	}

	// Length bounds count runes, not bytes, so accented and non-Latin
	// input is measured the way a submitter would count it.
	name := strings.TrimSpace(in.FullName)
	switch {
	case name == "":
		add("fullName", "Please provide your full name")
	case utf8.RuneCountInString(name) < NameMinLen:
		add("fullName", fmt.Sprintf("Name must be at least %d characters", NameMinLen))
	case utf8.RuneCountInString(name) > NameMaxLen:
		add("fullName", fmt.Sprintf("Name must be at most %d characters", NameMaxLen))
	}

	email := strings.TrimSpace(in.Email)
	switch {
	case email == "":
		add("email", "Please provide your email")
	case !emailRe.MatchString(email):
		add("email", "Please provide a valid email")
	}

	phone := NormalizePhone(in.Phone)
	switch {
	case phone == "":
		add("phone", "Please provide your phone number")
	case !digitRe.MatchString(phone):
		add("phone", "Phone must contain only digits")
	case len(phone) < PhoneMinLen:
		add("phone", fmt.Sprintf("Phone must have at least %d digits", PhoneMinLen))
	}

	subject := strings.TrimSpace(in.Subject)
	switch {
	case subject == "":
		add("subject", "Please provide a subject")
	case utf8.RuneCountInString(subject) < SubjectMinLen:
		add("subject", fmt.Sprintf("Subject must be at least %d characters", SubjectMinLen))
	case utf8.RuneCountInString(subject) > SubjectMaxLen:
		add("subject", fmt.Sprintf("Subject must be at most %d characters", SubjectMaxLen))
	}

	message := strings.TrimSpace(in.Message)
	switch {
	case message == "":
		add("message", "Please provide a message")
	case utf8.RuneCountInString(message) < MessageMinLen:
		add("message", fmt.Sprintf("Message must be at least %d characters", MessageMinLen))
	case utf8.RuneCountInString(message) > MessageMaxLen:
		add("message", fmt.Sprintf("Message must be at most %d characters", MessageMaxLen))
	}

	return errs
}

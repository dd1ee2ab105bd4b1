package site

import (
	"regexp"
	"strings"

	"github.com/desertthunder/launchora/internal/shared"
)

var phonePattern = regexp.MustCompile(`^[\d\s\-\+\(\)]{10,}$`)

// Contact form fields, in display order.
const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldMessage = "message"
)

// ContactForm is a contact form submission.
type ContactForm struct {
	Name    string
	Phone   string
	Message string
}

// FieldError is a validation failure on one field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every [FieldError] of a submission, in field order.
type ValidationError struct {
	Fields []FieldError
}

// Error joins the field messages, one per line.
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "\n")
}

func (e *ValidationError) Unwrap() error { return shared.ErrInvalidInput }

// Has reports whether field failed validation.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Trimmed returns the form with surrounding whitespace removed from every field.
func (f ContactForm) Trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Phone:   strings.TrimSpace(f.Phone),
		Message: strings.TrimSpace(f.Message),
	}
}

// Validate checks the trimmed form and returns a [*ValidationError] listing every failure, or nil.
func (f ContactForm) Validate() error {
	f = f.Trimmed()

	var errs []FieldError
	if f.Name == "" {
		errs = append(errs, FieldError{FieldName, "Please enter your name."})
	}

	switch {
	case f.Phone == "":
		errs = append(errs, FieldError{FieldPhone, "Please enter your phone number."})
	case !phonePattern.MatchString(f.Phone):
		errs = append(errs, FieldError{FieldPhone, "Please enter a valid phone number."})
	}

	if f.Message == "" {
		errs = append(errs, FieldError{FieldMessage, "Please enter your message."})
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// Package validation checks untrusted request input and normalizes it into
// typed values. It is pure: no validator touches the database.
package validation

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var bookIDPattern = regexp.MustCompile(`^\d+$`)

// Error is a structured validation failure carrying one message per field.
// It is distinguishable from persistence errors via errors.As.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return "invalid input"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, message := range e.Fields {
		parts = append(parts, field+": "+message)
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func newError(field, message string) *Error {
	return &Error{Fields: map[string]string{field: message}}
}

// CreateBookInput is the body of create and full-update requests.
type CreateBookInput struct {
	Title  string `json:"title" validate:"required,max=255"`
	Author string `json:"author" validate:"required,max=255"`
}

// ValidateCreateBook trims the title and author in place and checks that
// both are 1-255 characters after trimming.
func ValidateCreateBook(input *CreateBookInput) error {
	input.Title = strings.TrimSpace(input.Title)
	input.Author = strings.TrimSpace(input.Author)

	if err := validate.Struct(input); err != nil {
		return toError(err)
	}
	return nil
}

// UpdateStatusInput is the body of status-update requests. Read is a
// pointer so a missing field is distinguishable from an explicit false.
type UpdateStatusInput struct {
	Read *bool `json:"read" validate:"required"`
}

// ValidateUpdateStatus checks that the read flag was provided. A value of
// the wrong JSON type never reaches this point: decoding into *bool fails
// first and the handler reports that as a validation failure too.
func ValidateUpdateStatus(input *UpdateStatusInput) error {
	if err := validate.Struct(input); err != nil {
		return toError(err)
	}
	return nil
}

// ParseBookID converts a decimal-digits-only path parameter to a uint.
func ParseBookID(raw string) (uint, error) {
	if !bookIDPattern.MatchString(raw) {
		return 0, newError("id", "must be a number")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, newError("id", "must be a number")
	}
	return uint(id), nil
}

func toError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return newError("input", "is invalid")
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[field] = "is required"
		case "max":
			fields[field] = "must be at most " + fe.Param() + " characters"
		default:
			fields[field] = "is invalid"
		}
	}
	return &Error{Fields: fields}
}

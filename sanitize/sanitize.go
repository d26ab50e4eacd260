// Package sanitize normalizes and bounds untrusted client input before it
// reaches storage. Pure functions, no I/O.
package sanitize

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field length and range bounds applied across the API.
const (
	MaxStringLength   = 500
	MaxNameLength     = 200
	MaxCategoryLength = 100
	MaxAddressLength  = 1000
	MaxItemsPerOrder  = 100
	MaxItemsPerCart   = 100
	MaxQuantity       = 10000
	MaxRate           = 1000000
	// MaxImageURLLength is generous so inline data URIs still fit.
	MaxImageURLLength = 5000000

	maxInputPreview = 200
)

var (
	phoneRe        = regexp.MustCompile(`^[\d\s\-\+\(\)]{7,20}$`)
	categoryNameRe = regexp.MustCompile(`^[\w\s\-&]+$`)
)

// String trims, HTML-escapes and truncates a free-text value. Truncation
// counts runes, never splitting a multi-byte character.
func String(v string, max int) string {
	return truncate(html.EscapeString(strings.TrimSpace(v)), max)
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

// ValidPhone accepts a lenient international phone format: 7-20 characters
// of digits, spaces, +, -, and parentheses. Empty is valid (optional field).
func ValidPhone(v string) bool {
	if v == "" {
		return true
	}
	return phoneRe.MatchString(v)
}

// ValidImageURL accepts http(s) URLs and inline data-URI images only.
func ValidImageURL(v string) bool {
	return strings.HasPrefix(v, "http://") ||
		strings.HasPrefix(v, "https://") ||
		strings.HasPrefix(v, "data:image/")
}

// ValidCategoryName restricts category names to word characters, spaces,
// hyphens and ampersand. Checked after String so the escaped form is what
// must pass.
func ValidCategoryName(v string) bool {
	return categoryNameRe.MatchString(v)
}

// FieldError is the unit of a 422 response: which field, what went wrong,
// and a truncated preview of the offending input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Input   string `json:"input"`
}

// NewFieldError builds a FieldError, truncating the input preview.
func NewFieldError(field, message, input string) FieldError {
	return FieldError{Field: field, Message: message, Input: truncate(input, maxInputPreview)}
}

// BindingErrors converts a gin binding failure into field-level errors.
// Non-validator errors (malformed JSON) yield a single body-level entry.
func BindingErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{NewFieldError("body", "invalid request body", err.Error())}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("failed on the '%s' rule", fe.Tag())
		out = append(out, NewFieldError(fe.Namespace(), msg, fmt.Sprintf("%v", fe.Value())))
	}
	return out
}

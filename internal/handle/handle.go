// Package handle normalizes and validates player handles.
package handle

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dtroode/spacegame-server/internal/model"
)

const (
	MinLength = 3
	MaxLength = 15
)

var allowed = regexp.MustCompile(`^[A-Z0-9_]+$`)

// Normalize folds raw to its canonical upper case form and validates it.
// The returned handle is the key of its reservation document.
func Normalize(raw string) (string, error) {
	// Casers keep state between calls and must not be shared.
	h := cases.Upper(language.Und).String(strings.TrimSpace(raw))

	if h == "" {
		return "", model.NewValidationError("handle", "required")
	}
	if utf8.RuneCountInString(h) < MinLength {
		return "", model.NewValidationError("handle", "min 3 chars")
	}
	if utf8.RuneCountInString(h) > MaxLength {
		return "", model.NewValidationError("handle", "max 15 chars")
	}
	if !allowed.MatchString(h) {
		return "", model.NewValidationError("handle", "alphanumeric only")
	}

	return h, nil
}

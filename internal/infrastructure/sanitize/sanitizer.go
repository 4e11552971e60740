// Package sanitize strips markup from citizen supplied free text.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"beyazmasa/internal/application/ticket/usecases"
)

type StrictSanitizer struct {
	policy *bluemonday.Policy
}

var _ usecases.Sanitizer = (*StrictSanitizer)(nil)

// NewStrictSanitizer returns a sanitizer that removes every HTML element
// and attribute, keeping only text content.
func NewStrictSanitizer() *StrictSanitizer {
	return &StrictSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *StrictSanitizer) Sanitize(input string) string {
	return strings.TrimSpace(s.policy.Sanitize(input))
}

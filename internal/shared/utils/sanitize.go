package utils

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy     *bluemonday.Policy
	strictPolicyOnce sync.Once
)

// SanitizeText strips all HTML from user-supplied free text (order notes,
// cancellation reasons) and trims surrounding whitespace.
func SanitizeText(s string) string {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(strictPolicy.Sanitize(s))
}

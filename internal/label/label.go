// Package label renders series labels from context dictionaries.
package label

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/torosent/benchrig/internal/metrics"
)

// TemplateError reports a template referencing a key absent from the
// context. Labels silently falling back to something generic would defeat
// their purpose, so this is a hard error.
type TemplateError struct {
	Key string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("label template references undefined context key %q", e.Key)
}

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_.-]+)\s*\}\}`)

// Render substitutes {{key}} placeholders in template with the escaped
// context values. Every referenced key must exist in the context.
func Render(template string, ctx metrics.Context) (string, error) {
	var renderErr error
	result := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.TrimSpace(match[2 : len(match)-2])
		v, ok := ctx[key]
		if !ok {
			if renderErr == nil {
				renderErr = &TemplateError{Key: key}
			}
			return match
		}
		return escape(v.String())
	})
	if renderErr != nil {
		return "", renderErr
	}
	return result, nil
}

// escape keeps labels printable: values containing control or other
// non-printable characters are rendered in quoted form.
func escape(s string) string {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return strconv.Quote(s)
		}
	}
	return s
}

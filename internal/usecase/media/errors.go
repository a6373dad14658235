package media

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrObjectNotFound      = errors.New("media: object not found")
	ErrInvalidResourceType = errors.New("media: invalid resource type")
)

// ValidationError rejects an operation before any network call is made.
// Fields maps offending fields to a short reason.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, e.Fields[k]))
	}
	return fmt.Sprintf("validation failed: %s (%s)", e.Message, strings.Join(parts, ", "))
}

func newValidationError(field, reason, format string, a ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, a...), Fields: map[string]string{field: reason}}
}

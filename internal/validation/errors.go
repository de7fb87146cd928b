package validation

import (
	"errors"
	"strings"
)

// Violation names one field that failed a rule.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error aggregates every violation found in a single input.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the failing field names in rule order.
func (e *Error) Fields() []string {
	fields := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		fields = append(fields, v.Field)
	}
	return fields
}

// AsError reports whether err carries validation violations.
func AsError(err error) (*Error, bool) {
	var verr *Error
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

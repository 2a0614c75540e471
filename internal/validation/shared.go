package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Error collects per-field validation messages for one request payload, so a
// handler can report every rejected field at once.
type Error struct {
	Fields map[string]string
}

// Error joins the field messages in field-name order, keeping the text stable
// across calls.
func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}

package repoabs

import (
	"fmt"
	"strings"
)

// Trace carries diagnostic context for a repository error: a reference id
// for log correlation, the statement that produced the error and a
// human-readable description.
type Trace struct {
	Ref         string
	Statement   string
	Description string
}

func (t *Trace) String() string {
	if t == nil {
		return ""
	}

	parts := make([]string, 0, 3)
	if t.Ref != "" {
		parts = append(parts, fmt.Sprintf("ref=%s", t.Ref))
	}
	if t.Statement != "" {
		parts = append(parts, fmt.Sprintf("statement=%s", t.Statement))
	}
	if t.Description != "" {
		parts = append(parts, t.Description)
	}

	return strings.Join(parts, ", ")
}

// NotFoundError reports that a required row of a resource does not exist.
// Repository code raises it when a query legitimately demands a row; an
// empty page from Paginate is valid data, never an error.
type NotFoundError struct {
	Resource string
	Trace    *Trace
}

func NewNotFoundError(resource string, trace *Trace) *NotFoundError {
	return &NotFoundError{Resource: resource, Trace: trace}
}

func (e *NotFoundError) Error() string {
	return formatResourceError(e.Resource, "not found", e.Trace)
}

// NoInsertRowFoundError reports that an insert affected no row.
type NoInsertRowFoundError struct {
	Resource string
	Trace    *Trace
}

func NewNoInsertRowFoundError(resource string, trace *Trace) *NoInsertRowFoundError {
	return &NoInsertRowFoundError{Resource: resource, Trace: trace}
}

func (e *NoInsertRowFoundError) Error() string {
	return formatResourceError(e.Resource, "no insert row found", e.Trace)
}

// NoUpdateRowFoundError reports that an update affected no row.
type NoUpdateRowFoundError struct {
	Resource string
	Trace    *Trace
}

func NewNoUpdateRowFoundError(resource string, trace *Trace) *NoUpdateRowFoundError {
	return &NoUpdateRowFoundError{Resource: resource, Trace: trace}
}

func (e *NoUpdateRowFoundError) Error() string {
	return formatResourceError(e.Resource, "no update row found", e.Trace)
}

func formatResourceError(resource, message string, trace *Trace) string {
	ret := fmt.Sprintf("%s: %s", resource, message)
	if traceString := trace.String(); traceString != "" {
		ret = fmt.Sprintf("%s (%s)", ret, traceString)
	}

	return ret
}

var (
	_ error = (*NotFoundError)(nil)
	_ error = (*NoInsertRowFoundError)(nil)
	_ error = (*NoUpdateRowFoundError)(nil)
)

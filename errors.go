package dmgen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by NotFoundError and NotSingularError through errors.Is.
var (
	ErrNotFound    = errors.New("dmgen: node not found")
	ErrNotSingular = errors.New("dmgen: node not singular")
)

// NotFoundError reports that a node of a view does not exist. Space and
// ExternalID are empty when the lookup was a filter rather than an ID.
type NotFoundError struct {
	View       string
	Space      string
	ExternalID string
}

func (e *NotFoundError) Error() string {
	if e.ExternalID == "" {
		return fmt.Sprintf("dmgen: no %s node matches", e.View)
	}
	return fmt.Sprintf("dmgen: %s node %s:%s not found", e.View, e.Space, e.ExternalID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFoundError returns a NotFoundError for the node space:externalID of
// view. Pass empty IDs when no node matched a filter.
func NewNotFoundError(view, space, externalID string) *NotFoundError {
	return &NotFoundError{View: view, Space: space, ExternalID: externalID}
}

// NotSingularError reports that more than one node matched where one was
// expected. Count is the number of nodes seen, a lower bound when the read
// was limited.
type NotSingularError struct {
	View  string
	Count int
}

func (e *NotSingularError) Error() string {
	return fmt.Sprintf("dmgen: at least %d %s nodes match, expected one", e.Count, e.View)
}

func (e *NotSingularError) Is(target error) bool { return target == ErrNotSingular }

// NewNotSingularError returns a NotSingularError.
func NewNotSingularError(view string, count int) *NotSingularError {
	return &NotSingularError{View: view, Count: count}
}

// NotLoadedError is returned by the edge accessors of a read object whose
// query did not traverse the edge.
type NotLoadedError struct {
	Edge string
}

func (e *NotLoadedError) Error() string {
	return fmt.Sprintf("dmgen: edge %q was not loaded", e.Edge)
}

// NewNotLoadedError returns a NotLoadedError for edge.
func NewNotLoadedError(edge string) *NotLoadedError {
	return &NotLoadedError{Edge: edge}
}

// ValidationError reports a write object that cannot be sent, such as a
// relation to a node without an external ID.
type ValidationError struct {
	Name string // property or edge type
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("dmgen: invalid %s: %s", e.Name, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError returns a ValidationError for the property or edge
// type name.
func NewValidationError(name string, err error) *ValidationError {
	return &ValidationError{Name: name, Err: err}
}

// AggregateError holds the errors of every item of a batch.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "dmgen: %d errors:", len(e.Errors))
	for _, err := range e.Errors {
		sb.WriteString("\n\t")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

func (e *AggregateError) Unwrap() []error { return e.Errors }

// NewAggregateError drops nil errors. It returns nil when none remain and
// the error itself when one does.
func NewAggregateError(errs ...error) error {
	var kept []error
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return &AggregateError{Errors: kept}
}

// QueryError wraps a failed read of a view.
type QueryError struct {
	View string
	Op   string // list, retrieve, search, aggregate, iterate, query or graphql
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("dmgen: %s %s: %v", e.Op, e.View, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }

// NewQueryError returns a QueryError.
func NewQueryError(view, op string, err error) *QueryError {
	return &QueryError{View: view, Op: op, Err: err}
}

// MutationError wraps a failed write of a view.
type MutationError struct {
	View string
	Op   string // apply or delete
	Err  error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("dmgen: %s %s: %v", e.Op, e.View, e.Err)
}

func (e *MutationError) Unwrap() error { return e.Err }

// NewMutationError returns a MutationError.
func NewMutationError(view, op string, err error) *MutationError {
	return &MutationError{View: view, Op: op, Err: err}
}

package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrInvalidSchema    = errors.New("dmgen: invalid data model")
	ErrMissingConfig    = errors.New("dmgen: missing configuration")
	ErrInvalidEdge      = errors.New("dmgen: invalid relation")
	ErrGenerationFailed = errors.New("dmgen: code generation failed")
)

// message renders "dmgen: <kind>[ <context>][: msg][: cause]".
func message(kind, context, msg string, cause error) string {
	var b strings.Builder
	b.WriteString("dmgen: ")
	b.WriteString(kind)
	if context != "" {
		b.WriteString(" ")
		b.WriteString(context)
	}
	for _, s := range []string{msg, errString(cause)} {
		if s != "" {
			b.WriteString(": ")
			b.WriteString(s)
		}
	}
	return b.String()
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// SchemaError reports an invalid view or property of the data model.
type SchemaError struct {
	View     string
	Property string
	Message  string
	Cause    error
}

func (e *SchemaError) Error() string {
	var where []string
	if e.View != "" {
		where = append(where, "on view "+e.View)
	}
	if e.Property != "" {
		where = append(where, "property "+e.Property)
	}
	return message("schema error", strings.Join(where, " "), e.Message, e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

func (e *SchemaError) Is(target error) bool { return target == ErrInvalidSchema }

// NewSchemaError returns a SchemaError. view and property may be empty.
func NewSchemaError(view, property, msg string, cause error) *SchemaError {
	return &SchemaError{View: view, Property: property, Message: msg, Cause: cause}
}

// ConfigError reports an invalid or missing setting.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

func (e *ConfigError) Error() string {
	context := fmt.Sprintf("for %q", e.Option)
	if e.Value != nil {
		context += fmt.Sprintf(" (value: %v)", e.Value)
	}
	return message("config error", context, e.Message, nil)
}

func (e *ConfigError) Is(target error) bool { return target == ErrMissingConfig }

// NewConfigError returns a ConfigError. value is nil when the setting is
// missing.
func NewConfigError(option string, value any, msg string) *ConfigError {
	return &ConfigError{Option: option, Value: value, Message: msg}
}

// EdgeError reports a relation whose target cannot be resolved.
type EdgeError struct {
	From    string
	To      string
	Edge    string
	Message string
	Cause   error
}

func (e *EdgeError) Error() string {
	var where []string
	if e.Edge != "" {
		where = append(where, "on edge "+e.Edge)
	}
	switch {
	case e.From != "" && e.To != "":
		where = append(where, fmt.Sprintf("(%s -> %s)", e.From, e.To))
	case e.From != "":
		where = append(where, "from "+e.From)
	}
	return message("edge error", strings.Join(where, " "), e.Message, e.Cause)
}

func (e *EdgeError) Unwrap() error { return e.Cause }

func (e *EdgeError) Is(target error) bool { return target == ErrInvalidEdge }

// NewEdgeError returns an EdgeError for the relation edge of view from.
func NewEdgeError(from, to, edge, msg string, cause error) *EdgeError {
	return &EdgeError{From: from, To: to, Edge: edge, Message: msg, Cause: cause}
}

// GenerationError reports a failure to render, format or write a file, or
// to remove the files of a disabled feature.
type GenerationError struct {
	Phase   string // render, format, write or cleanup
	File    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	var where []string
	if e.Phase != "" {
		where = append(where, "in phase "+e.Phase)
	}
	if e.File != "" {
		where = append(where, "(file: "+e.File+")")
	}
	return message("generation error", strings.Join(where, " "), e.Message, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

func (e *GenerationError) Is(target error) bool { return target == ErrGenerationFailed }

// NewGenerationError returns a GenerationError.
func NewGenerationError(phase, file, msg string, cause error) *GenerationError {
	return &GenerationError{Phase: phase, File: file, Message: msg, Cause: cause}
}

// IsSchemaError reports whether err wraps a *SchemaError.
func IsSchemaError(err error) bool {
	var target *SchemaError
	return errors.As(err, &target)
}

// IsConfigError reports whether err wraps a *ConfigError.
func IsConfigError(err error) bool {
	var target *ConfigError
	return errors.As(err, &target)
}

// IsEdgeError reports whether err wraps an *EdgeError.
func IsEdgeError(err error) bool {
	var target *EdgeError
	return errors.As(err, &target)
}

// IsGenerationError reports whether err wraps a *GenerationError.
func IsGenerationError(err error) bool {
	var target *GenerationError
	return errors.As(err, &target)
}

package orchestrator

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Error types for each stage that can fail
var (
	ErrConfigurationInvalid = errors.New("configuration error")
	ErrCatalogInvalid       = errors.New("catalog error")
	ErrInputFailed          = errors.New("input error")
	ErrTemplateRead         = errors.New("template read error")
	ErrRenderFailed         = errors.New("render error")
	ErrWriteFailed          = errors.New("write error")
	ErrOutputFailed         = errors.New("output error")
)

// SetupError represents a structured error with actionable guidance
type SetupError struct {
	Type     error
	Message  string
	Guidance string
	Cause    error
}

func (e *SetupError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Guidance != "" {
		msg = fmt.Sprintf("%s\n\nSuggestion: %s", msg, e.Guidance)
	}
	return msg
}

func (e *SetupError) Unwrap() error {
	return e.Cause
}

// Is matches the error category so callers can test with errors.Is
func (e *SetupError) Is(target error) bool {
	return e.Type == target
}

// Stage names the pipeline stage an error came from, for the diagnostic line
func Stage(err error) string {
	var setupErr *SetupError
	if !errors.As(err, &setupErr) {
		return "unknown"
	}

	switch setupErr.Type {
	case ErrConfigurationInvalid:
		return "configuration"
	case ErrCatalogInvalid:
		return "catalog"
	case ErrInputFailed:
		return "input"
	case ErrTemplateRead:
		return "template read"
	case ErrRenderFailed:
		return "render"
	case ErrWriteFailed:
		return "write"
	case ErrOutputFailed:
		return "output"
	default:
		return "unknown"
	}
}

// Error constructors with actionable guidance

func NewConfigurationError(message string, cause error) *SetupError {
	guidance := "Check your setup configuration file syntax. " +
		"Use 'setup --config /path/to/setup.toml' to specify a different file."

	if cause != nil && errors.Is(cause, os.ErrPermission) {
		guidance = "Check file permissions for the setup configuration file."
	}

	return &SetupError{
		Type:     ErrConfigurationInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewCatalogError(path string, cause error) *SetupError {
	message := fmt.Sprintf("failed to load values from '%s'", path)
	guidance := "The values file must define 'defaultValues' and 'testValues' " +
		"and end in .yaml, .yml, .toml or .json."

	if cause != nil && errors.Is(cause, os.ErrNotExist) {
		guidance = fmt.Sprintf("Values file '%s' does not exist. Create it or point to another "+
			"one with --values.", path)
	}

	return &SetupError{
		Type:     ErrCatalogInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewInputError(cause error) *SetupError {
	return &SetupError{
		Type:     ErrInputFailed,
		Message:  "failed to read operator input",
		Guidance: "Run setup from an interactive terminal, or set APP_ENV=test to use the catalog values directly.",
		Cause:    cause,
	}
}

func NewTemplateReadError(path string, cause error) *SetupError {
	message := fmt.Sprintf("failed to read template '%s'", path)
	guidance := "Ensure the template exists and is readable."

	if cause != nil && errors.Is(cause, os.ErrNotExist) {
		guidance = fmt.Sprintf("Template '%s' does not exist. Check config_template and "+
			"env_template in your setup configuration.", path)
	}

	return &SetupError{
		Type:     ErrTemplateRead,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewRenderError(path string, cause error) *SetupError {
	message := fmt.Sprintf("failed to render template '%s'", path)
	guidance := "Check the template for valid Go template syntax with {{ }} delimiters, " +
		"for example {{ .projectName }}."

	return &SetupError{
		Type:     ErrRenderFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewWriteError(path string, cause error) *SetupError {
	message := fmt.Sprintf("failed to write '%s'", path)
	guidance := fmt.Sprintf("Check that the directory of '%s' exists and you have write permissions.", path)

	if cause != nil && strings.Contains(cause.Error(), "permission") {
		guidance = fmt.Sprintf("Permission denied writing '%s'.", path)
	}

	return &SetupError{
		Type:     ErrWriteFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewOutputError(target string, cause error) *SetupError {
	message := fmt.Sprintf("failed to output to '%s'", target)
	guidance := "Check that the output target is valid and accessible."

	if target == "clipboard" {
		guidance = "Clipboard access failed. Ensure you're running in a graphical environment " +
			"or drop --clipboard to print to stdout."
	}

	return &SetupError{
		Type:     ErrOutputFailed,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

package errors

import (
	"fmt"
)

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *HookError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("hook configuration file not found: %s", path)).
		WithDetail("path", path)
}

// MalformedDocument creates a syntax-level parse failure error
func MalformedDocument(err error) *HookError {
	return Wrap(err, ErrCodeMalformedDocument, "document is not well-formed YAML")
}

// MissingField creates a schema-level validation error for an absent required field
func MissingField(path string) *HookError {
	return New(ErrCodeMissingField, fmt.Sprintf("required field missing: %s", path)).
		WithPath(path)
}

// InvalidFieldType creates an error for a field present but of the wrong shape
func InvalidFieldType(path, expected string) *HookError {
	return New(ErrCodeInvalidFieldType, fmt.Sprintf("field %s must be %s", path, expected)).
		WithPath(path).
		WithDetail("expected", expected)
}

// UnknownHook creates an error for a hook id not present in a known-hook registry
func UnknownHook(repo, id string) *HookError {
	return New(ErrCodeUnknownHook, fmt.Sprintf("hook '%s' is not provided by %s", id, repo)).
		WithDetail("repo", repo).
		WithDetail("hook", id)
}

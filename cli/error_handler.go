package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/hookcfg/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	// Check for specific error codes
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ No hook configuration found. Create a .pre-commit-config.yaml in the repository root.\n")
		return err

	case errors.ErrCodeMalformedDocument:
		fmt.Fprintf(os.Stderr, "❌ The configuration is not well-formed YAML.\n")
		if hookErr, ok := err.(*errors.HookError); ok && hookErr.Cause != nil {
			fmt.Fprintf(os.Stderr, "%v\n", hookErr.Cause)
		}
		return err

	case errors.ErrCodeMissingField:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Required field missing: %s\n", hookErr.Details["path"])
		}
		return err

	case errors.ErrCodeInvalidFieldType:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ %s\n", hookErr.Message)
			if expected, ok := hookErr.Details["expected"]; ok {
				fmt.Fprintf(os.Stderr, "Expected %v\n", expected)
			}
		}
		return err

	case errors.ErrCodeUnknownHook:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ Hook '%s' is not provided by %s\n",
				hookErr.Details["hook"], hookErr.Details["repo"])
			fmt.Fprintf(os.Stderr, "Check the hook id against the repository's .pre-commit-hooks.yaml\n")
		}
		return err

	case errors.ErrCodeSchemaValidation:
		if hookErr, ok := err.(*errors.HookError); ok {
			fmt.Fprintf(os.Stderr, "❌ %s\n", hookErr.Message)
		}
		return err

	default:
		// Generic error handling
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		// If verbose mode, show full error details
		if h.Verbose {
			if hookErr, ok := err.(*errors.HookError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", hookErr.ToJSON())
			}
		}
		return err
	}
}

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeParse,
//	    "failed to parse record",
//	    cause,
//	    map[string]interface{}{
//	        "path": rcPath,
//	    },
//	)
package errors

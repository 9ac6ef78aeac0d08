// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeParse,
//	    "failed to parse candidate version",
//	    cause,
//	    map[string]interface{}{
//	        "raw": rawVersion,
//	        "scheme": schemeName,
//	    },
//	)
package errors

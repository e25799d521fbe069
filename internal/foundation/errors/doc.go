// Package errors provides the classified error primitives used across docnav.
//
// A ClassifiedError carries a category, a severity and structured context so the
// CLI can pick an exit code and a message without string matching:
//
//	err := errors.NewError(errors.CategoryFileSystem, "docs root not readable").
//		WithContext("root", root).
//		WithCause(statErr).
//		Build()
package errors

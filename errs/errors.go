// Package errs defines the sentinel errors returned by the checked cursor
// operations in this module.
//
// Callers should match errors with errors.Is, since operations may wrap a
// sentinel with additional context:
//
//	if errors.Is(err, errs.ErrUnexpectedEOF) {
//	    // input was truncated
//	}
package errs

import "errors"

var (
	// ErrUnexpectedEOF indicates a checked read, skip, split or truncate
	// requested more bytes than remain in the view. Recoverable: the caller
	// decides whether to abort the current structure or report truncation.
	ErrUnexpectedEOF = errors.New("unexpected end of data")

	// ErrBadUTF8 indicates strict string conversion encountered bytes that
	// are not valid UTF-8. Recoverable: lossy conversion never fails.
	ErrBadUTF8 = errors.New("invalid UTF-8 string data")
)

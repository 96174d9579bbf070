// Package should provides utilities for cleanup operations that should
// succeed but may fail in practice. Instead of returning errors, these
// functions log failures, making them suitable for defer statements and
// cleanup code.
package should

import (
	"io"
	"log/slog"
)

// Close attempts to close the given io.Closer and logs an error through the
// default slog logger if it fails. This is useful for cleanup in defer
// statements where you want to ensure resources are closed but don't want to
// complicate error handling.
//
// Example:
//
//	q := queue.NewOwned[*session](byExpiry)
//	defer should.Close(q, "failed to release sessions")
func Close(closer io.Closer, msg string) {
	CloseWith(slog.Default(), closer, msg)
}

// CloseWith attempts to close the given io.Closer and logs an error through
// the provided logger if it fails. Use this variant when the calling code
// carries its own logger instead of relying on the process-wide default.
func CloseWith(logger *slog.Logger, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Error(msg, "error", err)
	}
}

// Package testutil holds helpers shared across test suites.
package testutil

import (
	"io"
	"log/slog"
)

// NopLogger satisfies constructors that require a logger without polluting
// test output.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

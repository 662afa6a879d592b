package impl

import (
	"io"
	"log/slog"
)

// discardLogger silences service logging in tests.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

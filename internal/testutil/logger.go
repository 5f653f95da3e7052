package testutil

import (
	"io"

	"github.com/dtroode/carlisting-server/internal/logger"
)

// MakeNoopLogger returns a logger that discards every record.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, 100)
}

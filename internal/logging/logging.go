// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the bmad command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported encodings.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// ErrInvalidFormat is returned for an encoding other than json or console.
var ErrInvalidFormat = errors.New("logging: format must be json or console")

// New returns a logger writing to w (stderr when nil) at the given level.
//
// Errors:
//   - ErrInvalidFormat, or the zapcore error for an unknown level.
func New(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging.New: %w", err)
	}
	enc, err := newEncoder(format)
	if err != nil {
		return nil, fmt.Errorf("logging.New: %w", err)
	}
	if w == nil {
		w = os.Stderr
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), lvl)

	return zap.New(core), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case FormatJSON, "":
		return zapcore.NewJSONEncoder(cfg), nil
	case FormatConsole:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrInvalidFormat)
	}
}

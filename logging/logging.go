// SPDX-License-Identifier: MIT

// Package logging builds the zap logger shared by the paescore command line.
//
// Library packages (matrix, loader, interaction, report) never log. Only the
// batch runner and the CLI take a *zap.Logger.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultLevel is used when no level is configured.
	DefaultLevel = "info"
	// DefaultFormat is used when no encoding is configured.
	DefaultFormat = "console"
)

// ErrInvalidSetting indicates an unknown level or format name.
var ErrInvalidSetting = errors.New("logging: invalid setting")

// ParseLevel maps debug, info, warn, error (case-insensitive) to a zap level.
// An empty string yields DefaultLevel.
func ParseLevel(s string) (zapcore.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		s = DefaultLevel
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("logging: level %q: %w", s, ErrInvalidSetting)
	}

	return lvl, nil
}

// ParseFormat accepts "console" (alias "text") and "json".
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "console", "text":
		return "console", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("logging: format %q: %w", s, ErrInvalidSetting)
	}
}

// New builds a production logger writing to stderr at the given level and
// encoding.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	enc, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = enc
	config.OutputPaths = []string{"stderr"}
	if enc == "console" {
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}

	return l
}

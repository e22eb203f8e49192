// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/katalvlaran/paescore/interaction"
)

// Format writes scores in one serialization.
type Format struct {
	Rows   func(w io.Writer, rows []Row) error
	Result func(w io.Writer, res interaction.Result) error
}

var formats = map[string]Format{}

// Register adds or replaces a format (last wins). Call it from init.
func Register(name string, f Format) { formats[strings.ToLower(name)] = f }

// Formats lists the registered format names in sorted order.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Lookup returns the format registered under name (case-insensitive).
func Lookup(name string) (Format, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Format{}, fmt.Errorf("report: format %q (have %s): %w",
			name, strings.Join(Formats(), ", "), ErrUnknownFormat)
	}

	return f, nil
}

// WriteRows writes batch rows in the named format.
func WriteRows(format string, w io.Writer, rows []Row) error {
	f, err := Lookup(format)
	if err != nil {
		return err
	}

	return suppressBrokenPipe(f.Rows(w, rows))
}

// WriteResult writes a single result in the named format.
func WriteResult(format string, w io.Writer, res interaction.Result) error {
	f, err := Lookup(format)
	if err != nil {
		return err
	}

	return suppressBrokenPipe(f.Result(w, res))
}

func suppressBrokenPipe(err error) error {
	if IsBrokenPipe(err) {
		return nil
	}

	return err
}

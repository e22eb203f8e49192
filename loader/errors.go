// SPDX-License-Identifier: MIT

package loader

import "errors"

var (
	// ErrSourceNotFound indicates the source path does not exist.
	ErrSourceNotFound = errors.New("loader: source not found")

	// ErrUnreadable indicates the source exists but could not be read
	// (permissions, a directory, an I/O failure mid-read).
	ErrUnreadable = errors.New("loader: source unreadable")

	// ErrDecode indicates the payload is not a structured record of the expected
	// format, or the named field is not an array of number arrays.
	ErrDecode = errors.New("loader: decode failed")

	// ErrMissingField indicates the record has no field with the requested name.
	ErrMissingField = errors.New("loader: missing field")
)

// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"io"
	"syscall"
)

// ErrUnknownFormat indicates no writer is registered under the requested name.
var ErrUnknownFormat = errors.New("report: unknown format")

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}

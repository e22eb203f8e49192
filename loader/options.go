// SPDX-License-Identifier: MIT

package loader

import (
	"path/filepath"
	"strings"

	"github.com/katalvlaran/paescore/matrix"
)

const (
	// DefaultField is the PAE field of AlphaFold 3 *_full_data_*.json records.
	DefaultField = "pae"

	// DefaultChainField holds one chain id per token in the same records.
	DefaultChainField = "token_chain_ids"
)

// Format selects the payload decoder.
type Format int

const (
	// FormatAuto picks YAML for .yaml/.yml paths and JSON otherwise.
	FormatAuto Format = iota
	// FormatJSON decodes a JSON object.
	FormatJSON
	// FormatYAML decodes a YAML mapping.
	FormatYAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat maps "json", "yaml"/"yml" and "auto"/"" to a Format.
// Unknown names fall back to FormatAuto.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "yaml", "yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// Option configures a load.
type Option func(*options)

type options struct {
	format     Format
	chainField string
	matrixOpts []matrix.Option
}

// WithFormat forces the payload format instead of guessing from the path.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithChainField overrides the name of the per-token chain id field read by
// LoadRecord and DecodeRecord.
func WithChainField(name string) Option {
	return func(o *options) { o.chainField = name }
}

// WithMatrixOptions forwards a numeric policy to matrix.FromRows.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOpts = append(o.matrixOpts, opts...) }
}

func gatherOptions(user ...Option) options {
	o := options{format: FormatAuto, chainField: DefaultChainField}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolveFormat turns FormatAuto into a concrete format using the path extension.
func resolveFormat(f Format, path string) Format {
	if f != FormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

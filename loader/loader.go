// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paescore/matrix"
)

// Record is one decoded prediction: the PAE matrix plus, when the payload
// carries them, the chain id of every token.
type Record struct {
	Source   string        // path or "<reader>"
	Field    string        // field the matrix was read from
	Matrix   *matrix.Dense // N×N matrix
	ChainIDs []string      // len N, or nil when the chain field is absent
}

const readerSource = "<reader>"

// Load reads path, extracts field and returns it as a square matrix.
// One read per call; nothing is cached or retried.
//
// Errors:
//   - ErrSourceNotFound, ErrUnreadable (open/read).
//   - ErrDecode (payload or field shape), ErrMissingField.
//   - matrix.ErrMalformedMatrix, matrix.ErrNaNInf, matrix.ErrNegative.
func Load(path, field string, opts ...Option) (*matrix.Dense, error) {
	rec, err := loadRecord(path, field, false, opts...)
	if err != nil {
		return nil, err
	}

	return rec.Matrix, nil
}

// LoadRecord is Load plus the optional per-token chain id column.
func LoadRecord(path, field string, opts ...Option) (*Record, error) {
	return loadRecord(path, field, true, opts...)
}

// Decode reads a payload from r. FormatAuto means JSON here.
func Decode(r io.Reader, field string, opts ...Option) (*matrix.Dense, error) {
	rec, err := decodeRecord(r, readerSource, field, false, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}

	return rec.Matrix, nil
}

// DecodeRecord is Decode plus the optional per-token chain id column.
func DecodeRecord(r io.Reader, field string, opts ...Option) (*Record, error) {
	return decodeRecord(r, readerSource, field, true, gatherOptions(opts...))
}

func loadRecord(path, field string, withChains bool, opts ...Option) (*Record, error) {
	o := gatherOptions(opts...)
	o.format = resolveFormat(o.format, path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loader: %s: %w", path, ErrSourceNotFound)
		}
		return nil, fmt.Errorf("loader: %s: %v: %w", path, err, ErrUnreadable)
	}
	defer f.Close()

	return decodeRecord(f, path, field, withChains, o)
}

func decodeRecord(r io.Reader, source, field string, withChains bool, o options) (*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %v: %w", source, err, ErrUnreadable)
	}

	format := o.format
	if format == FormatAuto {
		format = FormatJSON
	}
	doc, err := parseDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: %s payload: %v: %w", source, format, err, ErrDecode)
	}

	if !doc.has(field) {
		return nil, fmt.Errorf("loader: %s: field %q: %w", source, field, ErrMissingField)
	}
	if doc.isNull(field) {
		return nil, fmt.Errorf("loader: %s: field %q is null: %w", source, field, ErrDecode)
	}
	var cells [][]*float64
	if err = doc.decode(field, &cells); err != nil {
		return nil, fmt.Errorf("loader: %s: field %q is not an array of number arrays: %v: %w",
			source, field, err, ErrDecode)
	}
	rows, err := derefRows(cells)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: field %q: %w", source, field, err)
	}
	m, err := matrix.FromRows(rows, o.matrixOpts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %s: field %q: %w", source, field, err)
	}

	rec := &Record{Source: source, Field: field, Matrix: m}
	if !withChains || o.chainField == "" || !doc.has(o.chainField) || doc.isNull(o.chainField) {
		return rec, nil
	}
	var ids []string
	if err = doc.decode(o.chainField, &ids); err != nil {
		return nil, fmt.Errorf("loader: %s: field %q is not an array of strings: %v: %w",
			source, o.chainField, err, ErrDecode)
	}
	if len(ids) != m.Size() {
		return nil, fmt.Errorf("loader: %s: field %q has %d entries, matrix has %d tokens: %w",
			source, o.chainField, len(ids), m.Size(), ErrDecode)
	}
	rec.ChainIDs = ids

	return rec, nil
}

// derefRows converts decoded cells to values. A null row or cell has no
// numeric meaning and is reported instead of being read as zero.
func derefRows(cells [][]*float64) ([][]float64, error) {
	rows := make([][]float64, len(cells))
	for i, row := range cells {
		if row == nil {
			return nil, fmt.Errorf("row %d is null: %w", i, ErrDecode)
		}
		rows[i] = make([]float64, len(row))
		for j, v := range row {
			if v == nil {
				return nil, fmt.Errorf("cell (%d,%d) is null: %w", i, j, ErrDecode)
			}
			rows[i][j] = *v
		}
	}

	return rows, nil
}

// document is a decoded top-level mapping whose fields are decoded lazily,
// so large unrelated fields (atom_plddts, contact_probs) are never converted.
type document interface {
	has(name string) bool
	isNull(name string) bool
	decode(name string, v any) error
}

func parseDocument(data []byte, format Format) (document, error) {
	switch format {
	case FormatYAML:
		var m map[string]yaml.Node
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		if m == nil {
			return nil, errors.New("empty document")
		}
		return yamlDocument(m), nil
	default:
		var m map[string]json.RawMessage
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, err
		}
		if m == nil {
			return nil, errors.New("top-level value is null")
		}
		return jsonDocument(m), nil
	}
}

type jsonDocument map[string]json.RawMessage

func (d jsonDocument) has(name string) bool {
	_, ok := d[name]
	return ok
}

func (d jsonDocument) isNull(name string) bool {
	return bytes.Equal(bytes.TrimSpace(d[name]), []byte("null"))
}

func (d jsonDocument) decode(name string, v any) error { return json.Unmarshal(d[name], v) }

type yamlDocument map[string]yaml.Node

func (d yamlDocument) has(name string) bool {
	_, ok := d[name]
	return ok
}

func (d yamlDocument) isNull(name string) bool {
	n := d[name]
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func (d yamlDocument) decode(name string, v any) error {
	n := d[name]
	return n.Decode(v)
}

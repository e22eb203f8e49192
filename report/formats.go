// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/katalvlaran/paescore/interaction"
)

func init() {
	// JSON array / single object, indented.
	Register("json", Format{
		Rows: func(w io.Writer, rows []Row) error {
			if rows == nil {
				rows = []Row{}
			}
			return EncodePretty(w, rows)
		},
		Result: func(w io.Writer, res interaction.Result) error {
			return EncodePretty(w, res)
		},
	})

	// One compact object per line.
	Register("jsonl", Format{
		Rows: func(w io.Writer, rows []Row) error {
			pipe, done := StartJSONL[Row](w, len(rows))
			for _, r := range rows {
				pipe <- r
			}
			close(pipe)
			return <-done
		},
		Result: func(w io.Writer, res interaction.Result) error {
			return json.NewEncoder(w).Encode(res)
		},
	})

	// Header plus tab-separated rows.
	Register("tsv", Format{
		Rows: func(w io.Writer, rows []Row) error {
			bw := bufio.NewWriter(w)
			if _, err := io.WriteString(bw, TSVHeader+"\n"); err != nil {
				return err
			}
			for _, r := range rows {
				if _, err := io.WriteString(bw, FormatRowTSV(r)+"\n"); err != nil {
					return err
				}
			}
			return bw.Flush()
		},
		Result: func(w io.Writer, res interaction.Result) error {
			_, err := io.WriteString(w, ResultTSVHeader+"\n"+FormatResultTSV(res)+"\n")
			return err
		},
	})
}

// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/paescore/batch"
	"github.com/katalvlaran/paescore/interaction"
)

// Row is the wire form of one batch outcome. Score fields are absent for
// failed jobs, which carry Error instead.
type Row struct {
	RunID        string `json:"run_id,omitempty"`
	Rank         int    `json:"rank"`
	Name         string `json:"name"`
	Source       string `json:"source"`
	Tokens       int    `json:"tokens,omitempty"`
	BinderLength int    `json:"binder_length,omitempty"`

	*interaction.Result

	Error string `json:"error,omitempty"`
}

// FromRun returns the rows of run in rank order.
func FromRun(run *batch.Run) []Row {
	ranked := run.Ranked()
	rows := make([]Row, len(ranked))
	for i, o := range ranked {
		rows[i] = FromOutcome(o)
		rows[i].RunID = run.ID.String()
	}

	return rows
}

// FromOutcome converts one outcome; RunID is left empty.
func FromOutcome(o batch.Outcome) Row {
	row := Row{
		Rank:   o.Rank,
		Name:   o.Job.Name,
		Source: o.Job.Source,
	}
	if o.Err != nil {
		row.Error = o.Err.Error()
		return row
	}
	res := o.Result
	row.Tokens = o.Tokens
	row.BinderLength = o.BinderLength
	row.Result = &res

	return row
}

// TSVHeader is the header row of the tsv format for batch rows.
const TSVHeader = "rank\tname\tpae_interaction\tpae_binder\tpae_target\ttokens\tbinder_length\tsource\terror"

// ResultTSVHeader is the header row of the tsv format for a single result.
const ResultTSVHeader = "pae_binder\tpae_target\tpae_interaction"

// FormatFloat renders a score with the shortest exact representation.
func FormatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// FormatRowTSV returns the columns of TSVHeader for r (no trailing newline).
// Score cells are empty for failed rows; tabs and newlines in free text
// become spaces.
func FormatRowTSV(r Row) string {
	cols := make([]string, 0, 9)
	cols = append(cols, strconv.Itoa(r.Rank), clean(r.Name))
	if r.Result != nil {
		cols = append(cols,
			FormatFloat(r.PAEInteraction),
			FormatFloat(r.PAEBinder),
			FormatFloat(r.PAETarget),
			strconv.Itoa(r.Tokens),
			strconv.Itoa(r.BinderLength))
	} else {
		cols = append(cols, "", "", "", "", "")
	}
	cols = append(cols, clean(r.Source), clean(r.Error))

	return strings.Join(cols, "\t")
}

// FormatResultTSV returns the columns of ResultTSVHeader for res.
func FormatResultTSV(res interaction.Result) string {
	return FormatFloat(res.PAEBinder) + "\t" + FormatFloat(res.PAETarget) + "\t" + FormatFloat(res.PAEInteraction)
}

var tsvCleaner = strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")

func clean(s string) string { return tsvCleaner.Replace(s) }

package batch_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/paescore/batch"
	"github.com/katalvlaran/paescore/interaction"
	"github.com/katalvlaran/paescore/loader"
	"github.com/katalvlaran/paescore/matrix"
)

// writeRecord stores a full-data style record and returns its path.
func writeRecord(t *testing.T, dir, name string, pae [][]float64, chains []string) string {
	t.Helper()
	doc := map[string]any{"pae": pae}
	if chains != nil {
		doc["token_chain_ids"] = chains
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	path := filepath.Join(dir, name+"_full_data_0.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

// crossMatrix builds a 4×4 record with a 2-token binder whose cross blocks
// are all equal to cross, so pae_interaction == cross.
func crossMatrix(cross float64) [][]float64 {
	return [][]float64{
		{1, 1, cross, cross},
		{1, 1, cross, cross},
		{cross, cross, 2, 2},
		{cross, cross, 2, 2},
	}
}

func TestRunner_ScoresAndRanks(t *testing.T) {
	dir := t.TempDir()
	chains := []string{"A", "A", "B", "B"}
	jobs := []batch.Job{
		{Name: "d3", Source: writeRecord(t, dir, "d3", crossMatrix(12), chains), BinderChain: "A"},
		{Name: "missing", Source: filepath.Join(dir, "nope.json"), BinderLength: 2},
		{Name: "d1", Source: writeRecord(t, dir, "d1", crossMatrix(4), nil), BinderLength: 2},
		{Name: "d2", Source: writeRecord(t, dir, "d2", crossMatrix(8), chains), BinderChain: "A"},
		{Name: "d0", Source: writeRecord(t, dir, "d0", crossMatrix(8), nil), BinderLength: 2},
		{Name: "edge", Source: writeRecord(t, dir, "edge", crossMatrix(1), nil), BinderLength: 4},
	}

	r := &batch.Runner{Workers: 3}
	run, err := r.Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, run.Outcomes, len(jobs))
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.False(t, run.Finished.Before(run.Started))
	assert.Equal(t, 4, run.Succeeded())
	assert.Equal(t, 2, run.Failed())

	// Outcomes stay in job order.
	for i, o := range run.Outcomes {
		assert.Equal(t, jobs[i].Name, o.Job.Name)
	}
	assert.ErrorIs(t, run.Outcomes[1].Err, loader.ErrSourceNotFound)
	assert.ErrorIs(t, run.Outcomes[5].Err, interaction.ErrEmptyPartition)

	d3 := run.Outcomes[0]
	require.NoError(t, d3.Err)
	assert.Equal(t, 4, d3.Tokens)
	assert.Equal(t, 2, d3.BinderLength)
	assert.Equal(t, interaction.Result{PAEBinder: 1, PAETarget: 2, PAEInteraction: 12}, d3.Result)

	type row struct {
		Name string
		Rank int
		OK   bool
	}
	var got []row
	for _, o := range run.Ranked() {
		got = append(got, row{o.Job.Name, o.Rank, o.OK()})
	}
	want := []row{
		{"d1", 1, true},
		{"d0", 2, true},
		{"d2", 3, true},
		{"d3", 4, true},
		{"missing", 0, false},
		{"edge", 0, false},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestRunner_ManyJobsBoundedWorkers(t *testing.T) {
	dir := t.TempDir()
	var jobs []batch.Job
	for i := 0; i < 40; i++ {
		name := fmt.Sprintf("design_%02d", i)
		jobs = append(jobs, batch.Job{
			Name:         name,
			Source:       writeRecord(t, dir, name, crossMatrix(float64(40-i)), nil),
			BinderLength: 2,
		})
	}

	run, err := (&batch.Runner{Workers: 2}).Run(context.Background(), jobs)
	require.NoError(t, err)
	assert.Equal(t, 40, run.Succeeded())

	ranked := run.Ranked()
	assert.Equal(t, "design_39", ranked[0].Job.Name)
	assert.Equal(t, "design_00", ranked[39].Job.Name)
	assert.Equal(t, 40, ranked[39].Rank)
}

func TestRunner_ChainResolution(t *testing.T) {
	dir := t.TempDir()
	jobs := []batch.Job{
		{Name: "no-chains", Source: writeRecord(t, dir, "a", crossMatrix(3), nil), BinderChain: "A"},
		{Name: "unknown", Source: writeRecord(t, dir, "b", crossMatrix(3), []string{"A", "A", "B", "B"}), BinderChain: "C"},
		{Name: "target-first", Source: writeRecord(t, dir, "c", crossMatrix(3), []string{"B", "B", "A", "A"}), BinderChain: "A"},
		{Name: "both", Source: writeRecord(t, dir, "d", crossMatrix(3), nil), BinderChain: "A", BinderLength: 2},
	}

	run, err := (&batch.Runner{}).Run(context.Background(), jobs)
	require.NoError(t, err)
	assert.ErrorIs(t, run.Outcomes[0].Err, batch.ErrNoChainIDs)
	assert.ErrorIs(t, run.Outcomes[1].Err, interaction.ErrUnknownChain)
	assert.ErrorIs(t, run.Outcomes[2].Err, interaction.ErrNonContiguousChain)
	assert.ErrorIs(t, run.Outcomes[3].Err, batch.ErrInvalidJob)
}

func TestRunner_CustomFieldAndLoaderOptions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "neg.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"predicted_aligned_error": [[0, -2], [-4, 0]]}`), 0o644))
	job := batch.Job{Name: "neg", Source: path, Field: "predicted_aligned_error", BinderLength: 1}

	run, err := (&batch.Runner{}).Run(context.Background(), []batch.Job{job})
	require.NoError(t, err)
	assert.ErrorIs(t, run.Outcomes[0].Err, matrix.ErrNegative)

	r := &batch.Runner{LoaderOptions: []loader.Option{loader.WithMatrixOptions(matrix.WithAllowNegative())}}
	run, err = r.Run(context.Background(), []batch.Job{job})
	require.NoError(t, err)
	require.NoError(t, run.Outcomes[0].Err)
	assert.Equal(t, -3.0, run.Outcomes[0].Result.PAEInteraction)
}

func TestRunner_FailFast(t *testing.T) {
	dir := t.TempDir()
	jobs := []batch.Job{
		{Name: "bad", Source: filepath.Join(dir, "missing.json"), BinderLength: 2},
		{Name: "good", Source: writeRecord(t, dir, "good", crossMatrix(5), nil), BinderLength: 2},
		{Name: "also-good", Source: writeRecord(t, dir, "also", crossMatrix(6), nil), BinderLength: 2},
	}

	run, err := (&batch.Runner{Workers: 1, FailFast: true}).Run(context.Background(), jobs)
	require.ErrorIs(t, err, loader.ErrSourceNotFound)
	assert.Contains(t, err.Error(), `job "bad"`)
	require.NotNil(t, run)
	assert.ErrorIs(t, run.Outcomes[1].Err, batch.ErrSkipped)
	assert.ErrorIs(t, run.Outcomes[2].Err, batch.ErrSkipped)
	assert.Equal(t, 0, run.Succeeded())
}

func TestRunner_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	jobs := []batch.Job{
		{Name: "a", Source: writeRecord(t, dir, "a", crossMatrix(5), nil), BinderLength: 2},
		{Name: "b", Source: writeRecord(t, dir, "b", crossMatrix(6), nil), BinderLength: 2},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run, err := (&batch.Runner{}).Run(ctx, jobs)
	require.ErrorIs(t, err, context.Canceled)
	for _, o := range run.Outcomes {
		assert.ErrorIs(t, o.Err, batch.ErrSkipped)
		assert.ErrorIs(t, o.Err, context.Canceled)
	}
}

func TestRunner_CancelAfterAllJobsFinished(t *testing.T) {
	dir := t.TempDir()
	jobs := []batch.Job{
		{Name: "a", Source: writeRecord(t, dir, "a", crossMatrix(5), nil), BinderLength: 2},
		{Name: "b", Source: writeRecord(t, dir, "b", crossMatrix(6), nil), BinderLength: 2},
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	core, _ := observer.New(zap.InfoLevel)
	// The summary line is logged after every worker returned.
	logger := zap.New(core, zap.Hooks(func(e zapcore.Entry) error {
		if e.Message == "Batch finished" {
			cancel()
		}
		return nil
	}))

	run, err := (&batch.Runner{Logger: logger}).Run(ctx, jobs)
	require.NoError(t, err)
	require.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Equal(t, len(jobs), run.Succeeded())
}

func TestRunner_Logs(t *testing.T) {
	dir := t.TempDir()
	core, logs := observer.New(zap.DebugLevel)
	jobs := []batch.Job{
		{Name: "ok", Source: writeRecord(t, dir, "ok", crossMatrix(5), nil), BinderLength: 2},
		{Name: "bad", Source: filepath.Join(dir, "missing.json"), BinderLength: 2},
	}

	run, err := (&batch.Runner{Workers: 1, Logger: zap.New(core)}).Run(context.Background(), jobs)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("Batch started").Len())
	assert.Equal(t, 1, logs.FilterMessage("Job scored").Len())
	failed := logs.FilterMessage("Job failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "bad", failed[0].ContextMap()["job"])
	assert.Equal(t, run.ID.String(), failed[0].ContextMap()["run_id"])
	assert.Equal(t, 1, logs.FilterMessage("Batch finished").Len())
}

func TestRunner_NoJobs(t *testing.T) {
	run, err := (&batch.Runner{}).Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, run.Outcomes)
	assert.Empty(t, run.Ranked())
}

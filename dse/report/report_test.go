package report

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storage-dse/tierdse/dse"
	"github.com/storage-dse/tierdse/dse/catalog"
	"github.com/storage-dse/tierdse/dse/trace"
	"github.com/storage-dse/tierdse/dse/workload"
)

func search(t *testing.T, budget float64, obj dse.Objective) *dse.Outcome {
	t.Helper()
	e := dse.NewExplorer(catalog.Reference())
	out, err := e.FindBest(context.Background(), workload.Reference(), budget, obj)
	require.NoError(t, err)
	return out
}

func TestWriteText_FeasibleOutcome(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, catalog.Reference(), search(t, 2000, dse.Throughput)))

	out := buf.String()
	assert.Contains(t, out, "cost budget $2000\n")
	assert.Contains(t, out, "ops/s: 4409.34 (throughput)\n")
	assert.Contains(t, out, "RAM 64 GiB ($500): 0.461261\n")
	assert.Contains(t, out, "NVM 0 B ($0): 0\n")
	assert.Contains(t, out, "HDD 12 TiB ($600): 0.0225713\n")
	assert.Contains(t, out, "totalCost: $1600\n")
	assert.NotContains(t, out, "avg latency")
}

func TestWriteText_LatencyShowsAverage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, catalog.Reference(), search(t, 2000, dse.Latency)))
	assert.Contains(t, buf.String(), "(latency)")
	assert.Contains(t, buf.String(), "avg latency: 0.000277376 s")
}

func TestWriteText_InfeasibleOutcome_NoSentinelArithmetic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, catalog.Reference(), search(t, 1000, dse.Throughput)))

	out := buf.String()
	assert.Contains(t, out, "no feasible configuration under budget $1000")
	assert.NotContains(t, out, "ops/s")
	assert.NotContains(t, out, "totalCost")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteText_PropagatesWriteError(t *testing.T) {
	err := WriteText(failingWriter{}, catalog.Reference(), search(t, 2000, dse.Throughput))
	assert.EqualError(t, err, "disk full")
}

func TestWriteJSON_Shape(t *testing.T) {
	outs := []*dse.Outcome{search(t, 4000, dse.Throughput), search(t, 1000, dse.Latency)}

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, catalog.Reference(), outs))

	var views []OutcomeView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &views))
	require.Len(t, views, 2)

	assert.True(t, views[0].Feasible)
	assert.Equal(t, dse.Throughput, views[0].Objective)
	assert.Equal(t, 3600.0, views[0].TotalCost)
	require.Len(t, views[0].Tiers, 4)
	assert.Equal(t, "SSD", views[0].Tiers[2].Name)
	assert.Equal(t, 5, views[0].Tiers[2].Devices)
	assert.Equal(t, "5.0 TiB", views[0].Tiers[2].Capacity)

	assert.False(t, views[1].Feasible)
	assert.Equal(t, dse.Latency, views[1].Objective)
	assert.Empty(t, views[1].Tiers)
	assert.Zero(t, views[1].OpsPerSecond)
}

func TestWriteTraceSummary(t *testing.T) {
	var buf bytes.Buffer
	s := &trace.TraceSummary{TotalCandidates: 10, InvalidCount: 4, OverBudgetCount: 3, ScoredCount: 3, Improvements: 2, MinScoredCost: 1100, MaxScoredCost: 1900}
	require.NoError(t, WriteTraceSummary(&buf, s))
	assert.Contains(t, buf.String(), "Candidates     : 10")
	assert.Contains(t, buf.String(), "Scored cost    : $1100 - $1900")
}

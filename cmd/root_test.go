package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storage-dse/tierdse/dse/catalog"
	"github.com/storage-dse/tierdse/dse/report"
)

// runCLI executes the root command with args plus explicit values for every
// shared flag, since cobra keeps flag values between executions.
func runCLI(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	args = append(args, "--log=error", "--catalog=", "--workload=", "--normalize=false", "--parallel=2")
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String(), errOut.String()
}

func TestSearchCommand_TextOutput(t *testing.T) {
	out, _ := runCLI(t, "search", "--budget=2000", "--objective=throughput", "--output=text",
		"--trace-level=none", "--summarize-trace=false")

	assert.Contains(t, out, "cost budget $2000")
	assert.Contains(t, out, "ops/s: 4409.34 (throughput)")
	assert.Contains(t, out, "totalCost: $1600")
}

func TestSearchCommand_TraceSummaryOnStderr(t *testing.T) {
	out, errOut := runCLI(t, "search", "--budget=2000", "--objective=latency", "--output=text",
		"--trace-level=decisions", "--summarize-trace=true")

	assert.Contains(t, out, "(latency)")
	assert.Contains(t, errOut, "Candidates     : 32768")
	assert.Contains(t, errOut, "Scored         : 11")
}

func TestSweepCommand_JSONOutput(t *testing.T) {
	out, _ := runCLI(t, "sweep", "--budgets=2000,4000", "--objective=both", "--output=json",
		"--trace-level=none", "--summarize-trace=false")

	var views []report.OutcomeView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 4)
	assert.Equal(t, 2000.0, views[0].Budget)
	assert.Equal(t, 4000.0, views[1].Budget)
	assert.Equal(t, 5, views[1].Tiers[2].Devices)
	assert.Equal(t, 5, views[3].Tiers[1].Devices)
}

func TestCatalogCommand_RoundTrips(t *testing.T) {
	out, _ := runCLI(t, "catalog")

	cat, err := catalog.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, catalog.Reference().Tiers(), cat.Tiers())
}

package dse

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storage-dse/tierdse/dse/catalog"
	"github.com/storage-dse/tierdse/dse/units"
	"github.com/storage-dse/tierdse/dse/workload"
)

func TestIsValid_TwoTierCases(t *testing.T) {
	e := NewExplorer(twoTierCatalog(t))
	w := workload.Workload{{Fraction: 1, Size: 150}}

	tests := []struct {
		name   string
		config Configuration
		want   bool
	}{
		{"no fast tier", Configuration{0, 1}, false},
		{"fast only, too small", Configuration{1, 0}, false},
		{"fast only, large enough", Configuration{2, 0}, true},
		{"fast then slow", Configuration{1, 1}, true},
		{"fast only, spare devices", Configuration{3, 0}, true},
		{"both tiers full", Configuration{3, 3}, true},
		{"wrong length", Configuration{1}, false},
		{"negative count", Configuration{1, -1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.IsValid(tt.config, w))
		})
	}
}

func TestIsValid_ShrinkingActiveTier_Infeasible(t *testing.T) {
	// GIVEN 12 RAM devices (768 GiB) above a single 256 GiB NVM device
	e := referenceExplorer()
	w := workload.Workload{{Fraction: 1, Size: 1 * units.GiB}}

	// THEN the NVM level cannot include what RAM holds
	assert.False(t, e.IsValid(Configuration{12, 1, 0, 0}, w))
	// AND skipping the empty NVM tier compares RAM directly with SSD
	assert.True(t, e.IsValid(Configuration{12, 0, 1, 0}, w))
	assert.False(t, e.IsValid(Configuration{12, 2, 1, 0}, w))
	// AND equal capacities on adjacent levels are allowed
	assert.True(t, e.IsValid(Configuration{12, 3, 1, 0}, w))
}

func TestIsValid_SingleDeviceExactFit(t *testing.T) {
	// Scenario B: one group exactly the size of one RAM device
	e := referenceExplorer()
	w := workload.Workload{{Fraction: 1, Size: 64 * units.GiB}}
	assert.True(t, e.IsValid(Configuration{1, 0, 0, 0}, w))
	assert.False(t, e.IsValid(Configuration{1, 0, 0, 0}, workload.Workload{{Fraction: 1, Size: 64*units.GiB + 1}}))
}

func TestIsValid_OversizedWorkload_NothingFeasible(t *testing.T) {
	// Scenario C: the workload exceeds every allowed combination
	e := referenceExplorer()
	w := oversizedWorkload()
	it := NewEnumerator(e.Catalog().DeviceLimits())
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		if e.IsValid(c, w) {
			t.Fatalf("configuration %v unexpectedly valid", c)
		}
	}
}

func TestIsValid_NearByteLimitCapacities(t *testing.T) {
	// GIVEN a fast tier whose devices approach the int64 byte range above a small slow tier
	cat, err := catalog.New(
		catalog.TierDescriptor{Name: "fast", Capacity: units.ByteSize(math.MaxInt64 / 3), Cost: 10, IOPS: 1000, Latency: time.Millisecond, MaxDevices: 4},
		catalog.TierDescriptor{Name: "slow", Capacity: units.TiB, Cost: 1, IOPS: 100, Latency: 10 * time.Millisecond, MaxDevices: 4},
	)
	require.NoError(t, err)
	e := NewExplorer(cat)
	w := workload.Workload{{Fraction: 1, Size: units.GiB}}

	// WHEN more fast capacity sits above less slow capacity
	// THEN the hierarchy is infeasible at every fast count
	for fast := 1; fast < 4; fast++ {
		assert.False(t, e.IsValid(Configuration{fast, 1}, w), "fast=%d", fast)
	}
	assert.True(t, e.IsValid(Configuration{3, 0}, w))
}

package dse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/storage-dse/tierdse/dse/catalog"
	"github.com/storage-dse/tierdse/dse/units"
	"github.com/storage-dse/tierdse/dse/workload"
)

// twoTierCatalog is a small fast/slow hierarchy with round numbers:
// fast holds 100 bytes at 1000 IOPS and 1ms, slow holds 1000 bytes at 100 IOPS and 10ms.
func twoTierCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		catalog.TierDescriptor{Name: "fast", Capacity: 100, Cost: 10, IOPS: 1000, Latency: time.Millisecond, MaxDevices: 4},
		catalog.TierDescriptor{Name: "slow", Capacity: 1000, Cost: 1, IOPS: 100, Latency: 10 * time.Millisecond, MaxDevices: 4},
	)
	require.NoError(t, err)
	return cat
}

func referenceExplorer(opts ...Option) *Explorer {
	return NewExplorer(catalog.Reference(), opts...)
}

// oversizedWorkload needs more space than any allowed configuration provides.
func oversizedWorkload() workload.Workload {
	return workload.Workload{
		{Fraction: 0.5, Size: 1 * units.TiB},
		{Fraction: 0.5, Size: 100 * units.TiB},
	}
}

package dse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumerator_OdometerOrder_LastTierFastest(t *testing.T) {
	// GIVEN limits 2x3
	it := NewEnumerator([]int{2, 3})

	// WHEN drained
	var got []Configuration
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		got = append(got, c)
	}

	// THEN every combination appears once, last tier changing fastest
	want := []Configuration{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	assert.Equal(t, want, got)
}

func TestEnumerator_YieldsIndependentValues(t *testing.T) {
	it := NewEnumerator([]int{3})
	first, _ := it.Next()
	second, _ := it.Next()
	first[0] = 99
	assert.Equal(t, Configuration{1}, second)
	third, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, Configuration{2}, third)
}

func TestEnumerator_EmptySpace(t *testing.T) {
	tests := []struct {
		name   string
		limits []int
	}{
		{"no tiers", nil},
		{"zero limit", []int{2, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := NewEnumerator(tt.limits).Next()
			assert.False(t, ok)
		})
	}
}

func TestEnumerator_ReferenceCatalog_CountMatchesSearchSpace(t *testing.T) {
	e := referenceExplorer()
	it := NewEnumerator(e.Catalog().DeviceLimits())
	var n int64
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	assert.Equal(t, e.Catalog().SearchSpace(), n)
	assert.Equal(t, int64(16*8*16*16), n)
}

func TestRangeEnumerator_FixedFirstTier(t *testing.T) {
	it := newRangeEnumerator([]int{2, 0}, []int{3, 2})
	var got []Configuration
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		got = append(got, c)
	}
	assert.Equal(t, []Configuration{{2, 0}, {2, 1}}, got)
}

func TestConfiguration_ActiveTiers(t *testing.T) {
	assert.Equal(t, []int{0, 2}, Configuration{3, 0, 1, 0}.ActiveTiers())
	assert.Empty(t, Configuration{0, 0}.ActiveTiers())
}

func TestConfiguration_CloneAndEqual(t *testing.T) {
	c := Configuration{1, 2, 3}
	cp := c.Clone()
	assert.True(t, c.Equal(cp))
	cp[0] = 5
	assert.False(t, c.Equal(cp))
	assert.False(t, c.Equal(Configuration{1, 2}))
	assert.Equal(t, "[1 2 3]", c.String())
}

func TestConfiguration_Equal(t *testing.T) {
	assert.True(t, Configuration{1, 0, 3}.Equal(Configuration{1, 0, 3}))
	assert.False(t, Configuration{1, 0, 3}.Equal(Configuration{1, 0, 2}))
	assert.False(t, Configuration{1, 0}.Equal(Configuration{1, 0, 0}))
	assert.True(t, Configuration{}.Equal(nil))
}

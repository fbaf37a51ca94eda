package area

import (
	"math"
	"testing"

	"leaf-cells/internal/labelmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMap(t *testing.T, w, h int, labels []int) *labelmap.Map {
	t.Helper()
	m, err := labelmap.New(w, h, labels)
	require.NoError(t, err)
	return m
}

func TestCompute(t *testing.T) {
	m := mustMap(t, 4, 4, []int{
		1, 1, 2, 2,
		2, 2, 2, 2,
		2, 2, 2, 2,
		2, 2, 2, 2,
	})

	table, err := Compute(m)
	require.NoError(t, err)
	assert.Equal(t, Table{{ID: 1, Area: 2}, {ID: 2, Area: 14}}, table)
}

func TestCompute_AreasMatchRegions(t *testing.T) {
	m := mustMap(t, 5, 3, []int{
		1, 1, 0, 3, 3,
		1, 0, 0, 3, 4,
		7, 7, 0, 0, 4,
	})

	table, err := Compute(m)
	require.NoError(t, err)
	require.Len(t, table, len(m.Identifiers()))

	for _, r := range table {
		region, err := m.Region(r.ID)
		require.NoError(t, err)
		assert.Equal(t, len(region), r.Area, "cell %d", r.ID)
	}
	assert.Equal(t, m.Width()*m.Height(), table.Total()+m.BackgroundCount())
}

func TestCompute_Idempotent(t *testing.T) {
	m := mustMap(t, 3, 2, []int{4, 4, 0, 9, 4, 9})

	first, err := Compute(m)
	require.NoError(t, err)
	second, err := Compute(m)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCompute_Empty(t *testing.T) {
	m := mustMap(t, 2, 2, []int{0, 0, 0, 0})

	table, err := Compute(m)
	require.NoError(t, err)
	assert.Empty(t, table)

	_, _, err = table.Range()
	assert.ErrorIs(t, err, ErrEmptySegmentation)
	_, err = Summarize(table)
	assert.ErrorIs(t, err, ErrEmptySegmentation)
}

func TestTable_Helpers(t *testing.T) {
	table := Table{{ID: 3, Area: 10}, {ID: 5, Area: 2}, {ID: 8, Area: 7}}

	lo, hi, err := table.Range()
	require.NoError(t, err)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 10, hi)

	assert.Equal(t, 19, table.Total())
}

func TestSummarize(t *testing.T) {
	s, err := Summarize(Table{{1, 2}, {2, 4}, {3, 4}, {4, 6}})
	require.NoError(t, err)

	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 16, s.Total)
	assert.Equal(t, 2, s.Min)
	assert.Equal(t, 6, s.Max)
	assert.InDelta(t, 4.0, s.Mean, 1e-9)
	assert.InDelta(t, math.Sqrt(8.0/3.0), s.StdDev, 1e-9)
	assert.InDelta(t, 4.0, s.Median, 1e-9)
}

func TestSummarize_SingleCell(t *testing.T) {
	s, err := Summarize(Table{{ID: 1, Area: 9}})
	require.NoError(t, err)
	assert.Equal(t, 9, s.Min)
	assert.Equal(t, 9, s.Max)
	assert.Zero(t, s.StdDev)
}

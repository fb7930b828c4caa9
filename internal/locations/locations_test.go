package locations

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDataset(t *testing.T) *Dataset {
	t.Helper()
	d, err := NewDataset(
		Entry{Region: "Nyeri", SubRegions: []string{"Tetu", "Kieni", "Mathira"}},
		Entry{Region: "Embu", SubRegions: []string{"Manyatta", "Runyenjes"}},
		Entry{Region: "Empty"},
	)
	require.NoError(t, err)
	return d
}

func TestParseKeepsDocumentOrder(t *testing.T) {
	d, err := Parse([]byte("Zeta:\n  - b\n  - a\nAlpha:\n  - x\nMid:\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, d.Regions())
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, d.SortedRegions())

	subs, ok := d.SubRegions("Zeta")
	assert.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, subs)

	subs, ok = d.SubRegions("Mid")
	assert.True(t, ok)
	assert.Empty(t, subs)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(nil)
	assert.ErrorIs(t, err, ErrEmptyDataset)

	_, err = Parse([]byte("- a\n- b\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("A:\n  - x\nA:\n  - y\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("A: not-a-list\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locations.yaml")
	require.NoError(t, os.WriteFile(path, []byte("Kwale:\n  - Matuga\n"), 0o600))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kwale"}, d.Regions())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestKenya(t *testing.T) {
	d, err := Kenya()
	require.NoError(t, err)

	regions := d.Regions()
	require.NotEmpty(t, regions)
	assert.Equal(t, "Mombasa", regions[0])
	assert.Equal(t, "Nairobi", regions[len(regions)-1])
	assert.Len(t, regions, 47)

	total := 0
	for _, r := range regions {
		subs, ok := d.SubRegions(r)
		require.True(t, ok)
		assert.NotEmpty(t, subs, r)
		total += len(subs)
	}
	assert.Equal(t, 290, total)

	subs, ok := d.SubRegions("Nyeri")
	require.True(t, ok)
	assert.Contains(t, subs, "Othaya")

	subs, ok = d.SubRegions("Murang'a")
	require.True(t, ok)
	assert.Equal(t, "Kangema", subs[0])
}

func TestPopulate(t *testing.T) {
	d := testDataset(t)

	sel := NewSelector("county", RegionPlaceholder)
	Populate(d, sel)
	assert.Equal(t, []string{"Nyeri", "Embu", "Empty"}, sel.Values())
	assert.Equal(t, "", sel.Options[0].Value)

	// absent dataset or selector is a no-op
	Populate(nil, sel)
	assert.Len(t, sel.Options, 4)
	Populate(d, nil)
}

func TestCascade(t *testing.T) {
	d := testDataset(t)
	c := NewCascade(d, "county", "constituency")
	assert.True(t, c.SubRegion.Disabled)

	t.Run("KnownRegion", func(t *testing.T) {
		for _, region := range d.Regions()[:2] {
			sub := c.SelectRegion(region)
			want, _ := d.SubRegions(region)
			assert.False(t, sub.Disabled)
			assert.Equal(t, want, sub.Values())
			assert.Equal(t, SubRegionPlaceholder, sub.Options[0].Label)
		}
	})

	t.Run("EmptySelection", func(t *testing.T) {
		c.SelectRegion("Nyeri")
		sub := c.SelectRegion("")
		assert.True(t, sub.Disabled)
		assert.Empty(t, sub.Values())
		assert.Len(t, sub.Options, 1)
	})

	t.Run("RegionWithoutEntries", func(t *testing.T) {
		sub := c.SelectRegion("Empty")
		assert.True(t, sub.Disabled)
		assert.Empty(t, sub.Values())
	})

	t.Run("UnknownRegion", func(t *testing.T) {
		sub := c.SelectRegion("Atlantis")
		assert.True(t, sub.Disabled)
		assert.Equal(t, "Atlantis", c.Region.Value)
	})

	t.Run("SubRegionSetAfterCascade", func(t *testing.T) {
		c.SelectRegion("Embu")
		c.SubRegion.Select("Runyenjes")
		assert.Equal(t, "Runyenjes", c.SubRegion.Value)

		// a new region clears the stale selection
		c.SelectRegion("Nyeri")
		assert.Equal(t, "", c.SubRegion.Value)
	})
}

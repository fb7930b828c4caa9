package destinations

import (
	"testing"

	"github.com/central-adventures/trips/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModalOpenKnown(t *testing.T) {
	catalog := Default()
	m := NewModal(catalog)

	for _, d := range catalog.List("") {
		require.True(t, m.Open(d.ID))

		assert.True(t, m.Active)
		assert.Equal(t, OverflowHidden, m.BodyOverflow)
		assert.Equal(t, "url('"+d.Image+"')", m.Fields[FieldImage])
		assert.Equal(t, d.Title, m.Fields[FieldTitle])
		assert.Equal(t, d.Description, m.Fields[FieldDescription])
		assert.Equal(t, d.Location, m.Fields[FieldLocation])
		assert.Equal(t, d.Duration, m.Fields[FieldDuration])
		assert.Equal(t, d.Expectations, m.Fields[FieldExpectations])
		assert.Equal(t, d.Requirements, m.Fields[FieldRequirements])
		assert.Equal(t, d.Price, m.Fields[FieldPrice])
	}
}

func TestModalOpenUnknown(t *testing.T) {
	m := NewModal(Default())

	assert.False(t, m.Open(99))
	assert.False(t, m.OpenCard("abc"))
	assert.False(t, m.Active)
	assert.Equal(t, OverflowAuto, m.BodyOverflow)
	assert.Empty(t, m.Fields)

	// an unknown id does not replace what is shown
	require.True(t, m.OpenCard("2"))
	assert.False(t, m.Open(3))
	assert.Equal(t, "Diani Beach Getaway", m.Fields[FieldTitle])
}

func TestModalClose(t *testing.T) {
	m := NewModal(Default())
	require.True(t, m.Open(1))

	m.BackdropClick(false)
	assert.True(t, m.Active)

	m.BackdropClick(true)
	assert.False(t, m.Active)
	assert.Equal(t, OverflowAuto, m.BodyOverflow)

	require.True(t, m.Open(1))
	m.Close()
	assert.False(t, m.Active)
	assert.Equal(t, OverflowAuto, m.BodyOverflow)
}

func TestCatalogList(t *testing.T) {
	c := NewCatalog(
		models.Destination{ID: 3, Title: "c", Status: models.DestinationCancelled},
		models.Destination{ID: 1, Title: "a", Status: models.DestinationUpcoming},
		models.Destination{ID: 2, Title: "b", Status: models.DestinationSuccess},
	)

	all := c.List("all")
	require.Len(t, all, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{all[0].ID, all[1].ID, all[2].ID})

	cancelled := c.List("cancelled")
	require.Len(t, cancelled, 1)
	assert.Equal(t, 3, cancelled[0].ID)

	assert.Empty(t, c.List("unknown"))
}

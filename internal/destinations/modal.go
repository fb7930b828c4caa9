package destinations

import (
	"fmt"
	"strconv"
)

// Element ids of the destination modal.
const (
	FieldImage        = "modalImage"
	FieldTitle        = "modalTitle"
	FieldDescription  = "modalDescription"
	FieldLocation     = "modalLocation"
	FieldDuration     = "modalDuration"
	FieldExpectations = "modalExpectations"
	FieldRequirements = "modalRequirements"
	FieldPrice        = "modalPrice"
)

const (
	OverflowHidden = "hidden"
	OverflowAuto   = "auto"
)

// Modal is the destination detail overlay together with the page scroll lock.
type Modal struct {
	catalog *Catalog

	Active       bool              `json:"active"`
	Fields       map[string]string `json:"fields"`
	BodyOverflow string            `json:"bodyOverflow"`
}

func NewModal(catalog *Catalog) *Modal {
	return &Modal{catalog: catalog, Fields: map[string]string{}, BodyOverflow: OverflowAuto}
}

// OpenCard opens the modal for a card's data-destination attribute.
// Attributes that are not a known id are ignored.
func (m *Modal) OpenCard(attr string) bool {
	id, err := strconv.Atoi(attr)
	if err != nil {
		return false
	}
	return m.Open(id)
}

// Open fills every field from the record and locks page scroll. Unknown ids
// leave the modal untouched.
func (m *Modal) Open(id int) bool {
	d, ok := m.catalog.Get(id)
	if !ok {
		return false
	}

	m.Fields = map[string]string{
		FieldImage:        fmt.Sprintf("url('%s')", d.Image),
		FieldTitle:        d.Title,
		FieldDescription:  d.Description,
		FieldLocation:     d.Location,
		FieldDuration:     d.Duration,
		FieldExpectations: d.Expectations,
		FieldRequirements: d.Requirements,
		FieldPrice:        d.Price,
	}
	m.Active = true
	m.BodyOverflow = OverflowHidden
	return true
}

func (m *Modal) Close() {
	m.Active = false
	m.BodyOverflow = OverflowAuto
}

// BackdropClick closes the modal only when the click landed on the backdrop itself.
func (m *Modal) BackdropClick(onBackdrop bool) {
	if onBackdrop {
		m.Close()
	}
}

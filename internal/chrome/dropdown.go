package chrome

const ActiveClass = "active"

// Dropdown is a toggled menu panel that closes on clicks outside of it.
type Dropdown struct {
	ID     string          `json:"id"`
	Active bool            `json:"active"`
	items  map[string]bool // element ids inside the panel
}

func NewDropdown(id string, items ...string) *Dropdown {
	d := &Dropdown{ID: id, items: make(map[string]bool, len(items))}
	for _, it := range items {
		d.items[it] = true
	}
	return d
}

func (d *Dropdown) Toggle() {
	d.Active = !d.Active
}

// Contains reports whether the element is the panel or one of its items.
func (d *Dropdown) Contains(target string) bool {
	return target == d.ID || d.items[target]
}

// Click handles a document click that did not hit the toggle button.
func (d *Dropdown) Click(target string) {
	if !d.Contains(target) {
		d.Active = false
	}
}

// ItemClicked closes the menu after one of its entries was chosen.
func (d *Dropdown) ItemClicked() {
	d.Active = false
}

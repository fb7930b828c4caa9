package locations

const (
	RegionPlaceholder    = "Select your county"
	SubRegionPlaceholder = "Select your constituency"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Selector is the state of a <select> control.
type Selector struct {
	ID       string   `json:"id"`
	Options  []Option `json:"options"`
	Value    string   `json:"value"`
	Disabled bool     `json:"disabled"`
}

func NewSelector(id, placeholder string) *Selector {
	return &Selector{ID: id, Options: []Option{{Value: "", Label: placeholder}}}
}

// Select sets the selected value without checking it against the options.
func (s *Selector) Select(value string) {
	s.Value = value
}

func (s *Selector) Values() []string {
	values := make([]string, 0, len(s.Options))
	for _, o := range s.Options {
		if o.Value != "" {
			values = append(values, o.Value)
		}
	}
	return values
}

// Populate appends one option per region, in dataset order.
func Populate(d *Dataset, sel *Selector) {
	if d == nil || sel == nil {
		return
	}
	for _, r := range d.regions {
		sel.Options = append(sel.Options, Option{Value: r, Label: r})
	}
}

// Cascade links a region selector to its dependent sub-region selector.
type Cascade struct {
	dataset   *Dataset
	Region    *Selector `json:"region"`
	SubRegion *Selector `json:"subRegion"`
}

// NewCascade builds both selectors and fills the region one. The sub-region
// selector starts disabled with only its placeholder.
func NewCascade(d *Dataset, regionID, subRegionID string) *Cascade {
	c := &Cascade{
		dataset:   d,
		Region:    NewSelector(regionID, RegionPlaceholder),
		SubRegion: NewSelector(subRegionID, SubRegionPlaceholder),
	}
	c.SubRegion.Disabled = true
	Populate(d, c.Region)
	return c
}

// SelectRegion selects region and rebuilds the sub-region selector from it.
// The returned selector is complete when SelectRegion returns, so callers may
// set a sub-region value right away.
func (c *Cascade) SelectRegion(region string) *Selector {
	c.Region.Select(region)

	c.SubRegion.Options = []Option{{Value: "", Label: SubRegionPlaceholder}}
	c.SubRegion.Value = ""

	subs, ok := c.dataset.SubRegions(region)
	if region == "" || !ok || len(subs) == 0 {
		c.SubRegion.Disabled = true
		return c.SubRegion
	}

	c.SubRegion.Disabled = false
	for _, s := range subs {
		c.SubRegion.Options = append(c.SubRegion.Options, Option{Value: s, Label: s})
	}
	return c.SubRegion
}

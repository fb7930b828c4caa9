// Package locations holds the region/sub-region dataset (counties and their
// constituencies) and the cascading selectors populated from it.
package locations

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"go.yaml.in/yaml/v3"
)

//go:embed kenya_locations.yaml
var kenyaLocations []byte

var ErrEmptyDataset = errors.New("location dataset is empty")

// Entry is one region and its ordered sub-regions.
type Entry struct {
	Region     string
	SubRegions []string
}

// Dataset maps regions to ordered sub-regions and remembers the order regions
// were declared in. It is read-only once built.
type Dataset struct {
	regions    []string
	subRegions map[string][]string
}

func NewDataset(entries ...Entry) (*Dataset, error) {
	d := &Dataset{subRegions: make(map[string][]string, len(entries))}
	for _, e := range entries {
		if _, dup := d.subRegions[e.Region]; dup {
			return nil, fmt.Errorf("duplicate region %q", e.Region)
		}
		d.regions = append(d.regions, e.Region)
		d.subRegions[e.Region] = append([]string(nil), e.SubRegions...)
	}
	return d, nil
}

// Parse reads a YAML mapping of region -> list of sub-regions, keeping the
// document's key order.
func Parse(data []byte) (*Dataset, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("cannot parse location dataset: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, ErrEmptyDataset
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("location dataset must be a mapping, got kind %d at line %d", doc.Kind, doc.Line)
	}

	entries := make([]Entry, 0, len(doc.Content)/2)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i], doc.Content[i+1]
		var subs []string
		if val.Kind != yaml.ScalarNode || val.Tag != "!!null" {
			if err := val.Decode(&subs); err != nil {
				return nil, fmt.Errorf("region %q at line %d: %w", key.Value, key.Line, err)
			}
		}
		entries = append(entries, Entry{Region: key.Value, SubRegions: subs})
	}

	return NewDataset(entries...)
}

func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read location dataset: %w", err)
	}
	return Parse(data)
}

// Kenya returns the built-in county/constituency dataset.
func Kenya() (*Dataset, error) {
	return Parse(kenyaLocations)
}

// Regions returns the regions in declaration order.
func (d *Dataset) Regions() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.regions...)
}

// SortedRegions returns the regions alphabetically.
func (d *Dataset) SortedRegions() []string {
	r := d.Regions()
	sort.Strings(r)
	return r
}

// SubRegions returns the ordered sub-regions of region and whether the region exists.
func (d *Dataset) SubRegions(region string) ([]string, bool) {
	if d == nil {
		return nil, false
	}
	subs, ok := d.subRegions[region]
	if !ok {
		return nil, false
	}
	return append([]string(nil), subs...), true
}

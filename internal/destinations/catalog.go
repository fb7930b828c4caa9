package destinations

import (
	"sort"

	"github.com/central-adventures/trips/internal/models"
)

// Catalog is the fixed destination table.
type Catalog struct {
	byID map[int]models.Destination
}

func NewCatalog(ds ...models.Destination) *Catalog {
	c := &Catalog{byID: make(map[int]models.Destination, len(ds))}
	for _, d := range ds {
		c.byID[d.ID] = d
	}
	return c
}

func Default() *Catalog {
	return NewCatalog(defaultDestinations...)
}

func (c *Catalog) Get(id int) (models.Destination, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// List returns destinations ordered by id. An empty status or "all" matches everything.
func (c *Catalog) List(status string) []models.Destination {
	out := make([]models.Destination, 0, len(c.byID))
	for _, d := range c.byID {
		if status == "" || status == "all" || string(d.Status) == status {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var defaultDestinations = []models.Destination{
	{
		ID:           1,
		Title:        "Mount Kenya Expedition",
		Image:        "https://images.unsplash.com/photo-1589182373726-e4f658ab50f0?w=1200",
		Description:  "Experience the thrill of climbing Africa's second-highest peak. This 5-day expedition takes you through diverse ecosystems, from bamboo forests to alpine moorlands. Perfect for adventure enthusiasts looking for a challenging yet rewarding trek.",
		Location:     "Mount Kenya National Park, Central Kenya",
		Duration:     "5 Days, 4 Nights",
		Expectations: "Expect moderate to challenging hiking conditions. You'll traverse through various climate zones, witness stunning glaciers, and enjoy breathtaking sunrise views from Point Lenana (4,985m). Professional guides will accompany you throughout the journey.",
		Requirements: "Hiking boots, warm clothing (temperatures drop below freezing at night), rain gear, sleeping bag, personal medications, water bottles, headlamp, and sunscreen. We provide tents, cooking equipment, and meals.",
		Price:        "KES 45,000 per person",
		Status:       models.DestinationUpcoming,
	},
	{
		ID:           2,
		Title:        "Diani Beach Getaway",
		Image:        "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=1200",
		Description:  "Relax on pristine white sands and crystal-clear waters. This 3-day coastal retreat includes snorkeling, beach games, seafood dinners, and optional water sports. Perfect for those looking to unwind and enjoy Kenya's beautiful coastline.",
		Location:     "Diani Beach, South Coast, Mombasa",
		Duration:     "3 Days, 2 Nights",
		Expectations: "Expect warm tropical weather, gentle ocean breezes, and plenty of sunshine. Activities include snorkeling at the coral reef, beach volleyball, sunset dhow cruises, and visits to nearby attractions like Shimba Hills National Reserve.",
		Requirements: "Swimwear, light cotton clothing, sunscreen (SPF 50+), sunglasses, beach hat, sandals, snorkeling gear (can be rented), and a light jacket for evenings. We provide accommodation and meals.",
		Price:        "KES 25,000 per person",
		Status:       models.DestinationUpcoming,
	},
}

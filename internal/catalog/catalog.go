package catalog

import (
	"sort"

	"github.com/nestfinder/browse-api/internal/canon"
)

// Catalog is the read-only listing and agent collection the whole service
// works from. It is built once from a seed dataset and never mutated; a
// reload swaps the whole catalog behind the Provider.
type Catalog struct {
	listings  []Listing
	agents    []Agent
	byID      map[string]int
	agentByID map[string]int
}

func New(listings []Listing, agents []Agent) *Catalog {
	c := &Catalog{
		listings:  append([]Listing(nil), listings...),
		agents:    append([]Agent(nil), agents...),
		byID:      make(map[string]int, len(listings)),
		agentByID: make(map[string]int, len(agents)),
	}
	for i, l := range c.listings {
		c.byID[l.ID] = i
	}
	for i, a := range c.agents {
		c.agentByID[a.ID] = i
	}
	return c
}

// Listings returns a copy of the full collection in seed order.
func (c *Catalog) Listings() []Listing {
	return append([]Listing(nil), c.listings...)
}

func (c *Catalog) Len() int { return len(c.listings) }

func (c *Catalog) ListingByID(id string) (Listing, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Listing{}, false
	}
	return c.listings[i], true
}

// ListingsByCity matches the city field exactly, ignoring case.
func (c *Catalog) ListingsByCity(city string) []Listing {
	var out []Listing
	for _, l := range c.listings {
		if canon.EqualFold(l.City, city) {
			out = append(out, l)
		}
	}
	return out
}

func (c *Catalog) ListingsByAgent(agentID string) []Listing {
	var out []Listing
	for _, l := range c.listings {
		if l.AgentID == agentID {
			out = append(out, l)
		}
	}
	return out
}

func (c *Catalog) Featured() []Listing {
	var out []Listing
	for _, l := range c.listings {
		if l.Featured {
			out = append(out, l)
		}
	}
	return out
}

// Search matches text against title, city, address and type,
// case-insensitively.
func (c *Catalog) Search(text string) []Listing {
	var out []Listing
	for _, l := range c.listings {
		if canon.Contains(l.Title, text) ||
			canon.Contains(l.City, text) ||
			canon.Contains(l.Address, text) ||
			canon.Contains(string(l.Type), text) {
			out = append(out, l)
		}
	}
	return out
}

func (c *Catalog) Agents() []Agent {
	return append([]Agent(nil), c.agents...)
}

func (c *Catalog) AgentByID(id string) (Agent, bool) {
	i, ok := c.agentByID[id]
	if !ok {
		return Agent{}, false
	}
	return c.agents[i], true
}

// TopAgents returns up to n agents by rating descending. Ties keep seed
// order (stable sort).
func (c *Catalog) TopAgents(n int) []Agent {
	if n <= 0 {
		return nil
	}
	out := append([]Agent(nil), c.agents...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Cities returns the distinct city names in first-seen order.
func (c *Catalog) Cities() []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range c.listings {
		if !seen[l.City] {
			seen[l.City] = true
			out = append(out, l.City)
		}
	}
	return out
}

// Types returns the distinct property types in first-seen order.
func (c *Catalog) Types() []PropertyType {
	seen := make(map[PropertyType]bool)
	var out []PropertyType
	for _, l := range c.listings {
		if !seen[l.Type] {
			seen[l.Type] = true
			out = append(out, l.Type)
		}
	}
	return out
}

// PriceRange returns the lowest and highest listing price, or zeros for an
// empty catalog.
func (c *Catalog) PriceRange() (min, max int) {
	for i, l := range c.listings {
		if i == 0 || l.Price < min {
			min = l.Price
		}
		if l.Price > max {
			max = l.Price
		}
	}
	return min, max
}

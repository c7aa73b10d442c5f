package catalog

import (
	"fmt"
	"strings"
	"time"
)

type PropertyType string

const (
	TypeApartment PropertyType = "Apartment"
	TypeHouse     PropertyType = "House"
	TypeVilla     PropertyType = "Villa"
	TypePlot      PropertyType = "Plot"
	TypePenthouse PropertyType = "Penthouse"
)

func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeHouse, TypeVilla, TypePlot, TypePenthouse:
		return true
	}
	return false
}

// Date is a civil date carried as "2006-01-02" in seed data and API
// responses.
type Date struct{ time.Time }

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

type Listing struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Price       int          `json:"price"`
	Type        PropertyType `json:"type"`
	Beds        int          `json:"beds"`
	Baths       int          `json:"baths"`
	AreaSqft    float64      `json:"area_sqft"`
	Address     string       `json:"address"`
	City        string       `json:"city"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	Images      []string     `json:"images"`
	Description string       `json:"description"`
	Features    []string     `json:"features"`
	AgentID     string       `json:"agent_id"`
	Featured    bool         `json:"featured"`
	CreatedAt   Date         `json:"createdAt"`
}

type Agent struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Image          string   `json:"image"`
	Bio            string   `json:"bio"`
	Specialization []string `json:"specialization"`
	Experience     int      `json:"experience"`
	Rating         float64  `json:"rating"`
	ReviewCount    int      `json:"reviewCount"`
	// ListingCount is the advertised figure from the seed data. It is not
	// kept in sync with the live count of listings referencing the agent.
	ListingCount int  `json:"listings"`
	Verified     bool `json:"verified"`
}

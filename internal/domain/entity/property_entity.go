package entity

import "time"

type PropertyType string

const (
	PropertyApartment  PropertyType = "Apartment"
	PropertyHouse      PropertyType = "House"
	PropertyVilla      PropertyType = "Villa"
	PropertyPlot       PropertyType = "Plot"
	PropertyCommercial PropertyType = "Commercial"
)

// PropertyTypes lists the supported listing types in display order.
var PropertyTypes = []PropertyType{
	PropertyApartment,
	PropertyHouse,
	PropertyVilla,
	PropertyPlot,
	PropertyCommercial,
}

func (t PropertyType) Valid() bool {
	for _, pt := range PropertyTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Location is plain text; no geocoding is done.
type Location struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Address string `json:"address"`
}

// Property is a single listing. Price is in the smallest currency unit,
// Area in square feet. Features and Images keep insertion order.
type Property struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       int64        `json:"price"`
	Location    Location     `json:"location"`
	Type        PropertyType `json:"type"`
	Bedrooms    int          `json:"bedrooms"`
	Bathrooms   int          `json:"bathrooms"`
	Area        float64      `json:"area"`
	Features    []string     `json:"features"`
	Images      []string     `json:"images"`
	PostedBy    string       `json:"postedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Clone returns a deep copy so callers cannot alias store-owned slices.
func (p Property) Clone() Property {
	out := p
	out.Features = append([]string(nil), p.Features...)
	out.Images = append([]string(nil), p.Images...)
	if out.Features == nil {
		out.Features = []string{}
	}
	if out.Images == nil {
		out.Images = []string{}
	}
	return out
}

package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oksasatya/ghardekho-api/internal/domain/entity"
)

// PropertyFilter narrows a listing query. Zero-value fields are not applied;
// the applied ones are ANDed.
type PropertyFilter struct {
	// Location is matched case-insensitively as a substring of city, state or address.
	Location string
	Type     entity.PropertyType
	MinPrice *int64
	MaxPrice *int64
	// Bedrooms is a lower bound.
	Bedrooms *int
}

// ParsePropertyFilter reads the query keys location, type, minPrice,
// maxPrice and bedrooms. Empty values count as absent.
func ParsePropertyFilter(raw map[string]string) (PropertyFilter, error) {
	var f PropertyFilter
	f.Location = strings.TrimSpace(raw["location"])
	f.Type = entity.PropertyType(strings.TrimSpace(raw["type"]))

	var err error
	if f.MinPrice, err = parseBound(raw, "minPrice"); err != nil {
		return PropertyFilter{}, err
	}
	if f.MaxPrice, err = parseBound(raw, "maxPrice"); err != nil {
		return PropertyFilter{}, err
	}
	if v := strings.TrimSpace(raw["bedrooms"]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return PropertyFilter{}, fmt.Errorf("%w: bedrooms must be an integer", ErrInvalidFilter)
		}
		f.Bedrooms = &n
	}
	return f, nil
}

func parseBound(raw map[string]string, key string) (*int64, error) {
	v := strings.TrimSpace(raw[key])
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrInvalidFilter, key)
	}
	return &n, nil
}

// Matches reports whether p satisfies every applied criterion.
func (f PropertyFilter) Matches(p entity.Property) bool {
	if f.Location != "" {
		needle := strings.ToLower(f.Location)
		if !strings.Contains(strings.ToLower(p.Location.City), needle) &&
			!strings.Contains(strings.ToLower(p.Location.State), needle) &&
			!strings.Contains(strings.ToLower(p.Location.Address), needle) {
			return false
		}
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Bedrooms != nil && p.Bedrooms < *f.Bedrooms {
		return false
	}
	return true
}

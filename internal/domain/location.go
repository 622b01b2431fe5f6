// Package domain contains the core data types for the Travel Global planner.
// This package has zero external dependencies and is imported by every other
// internal package (catalog, itinerary, service, handler).
package domain

import (
	"fmt"
	"strings"
)

// Category classifies a Location. The set is closed; see ParseCategory.
type Category string

const (
	CategoryThemePark  Category = "theme-park"
	CategoryCity       Category = "city"
	CategoryCruisePort Category = "cruise-port"
	CategoryLandmark   Category = "landmark"
)

// Categories lists every valid Category in display order.
var Categories = []Category{CategoryThemePark, CategoryCity, CategoryCruisePort, CategoryLandmark}

// ParseCategory converts a raw string into a Category.
// Returns ErrValidation for anything outside the closed set.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
}

// Color returns the marker colour used for the category on the globe.
func (c Category) Color() string {
	switch c {
	case CategoryCity:
		return "#0ea5e9"
	case CategoryCruisePort:
		return "#8b5cf6"
	case CategoryLandmark:
		return "#22c55e"
	default:
		return "#f97316"
	}
}

// Coordinates is a point on the globe in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a point of interest from the catalog.
// Locations are created once when the catalog loads and never mutated.
type Location struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Category    Category    `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
}

// Validate checks the catalog-level invariants of a Location.
func (l Location) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("%w: id is required", ErrValidation)
	}
	if _, err := ParseCategory(string(l.Category)); err != nil {
		return err
	}
	if l.Coordinates.Lat < -90 || l.Coordinates.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range", ErrValidation, l.Coordinates.Lat)
	}
	if l.Coordinates.Lng < -180 || l.Coordinates.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range", ErrValidation, l.Coordinates.Lng)
	}
	return nil
}

// Package models defines data structures and domain types.
package models

import (
	"fmt"
	"strings"
)

// City identifies one of the bikeshare systems with trip data.
type City string

const (
	// Chicago is the Divvy system.
	Chicago City = "chicago"
	// NewYorkCity is the Citi Bike system.
	NewYorkCity City = "new_york_city"
	// Washington is the Capital Bikeshare system.
	Washington City = "washington"
)

// Cities lists every supported city in prompt order.
var Cities = []City{Chicago, NewYorkCity, Washington}

// String returns the display name for a city.
func (c City) String() string {
	switch c {
	case Chicago:
		return "Chicago"
	case NewYorkCity:
		return "New York City"
	case Washington:
		return "Washington"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the supported cities.
func (c City) Valid() bool {
	switch c {
	case Chicago, NewYorkCity, Washington:
		return true
	}
	return false
}

// ParseCity resolves user input to a City. Matching is case-insensitive and
// accepts both "new york city" and "new_york_city".
func ParseCity(input string) (City, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	city := City(normalized)
	if !city.Valid() {
		return "", &InvalidChoiceError{Field: "city", Value: input}
	}
	return city, nil
}

// InvalidChoiceError reports user input outside a recognized enumeration.
type InvalidChoiceError struct {
	Field string
	Value string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", strings.TrimSpace(e.Value), e.Field)
}

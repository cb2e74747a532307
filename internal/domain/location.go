package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Validation errors for Location
var (
	ErrEmptyGridID = fmt.Errorf("%w: location grid ID cannot be empty", ErrValidation)
)

// Location is the forecast grid cell and coordinates an address resolves to.
// GridID, GridX and GridY identify the forecast office grid point used when
// polling for rain; Longitude and Latitude are stored as given, without range checks.
type Location struct {
	ID        uuid.UUID `json:"id"        yaml:"id"`
	GridID    string    `json:"grid_id"   yaml:"grid_id"`
	GridX     int       `json:"grid_x"    yaml:"grid_x"`
	GridY     int       `json:"grid_y"    yaml:"grid_y"`
	Longitude float64   `json:"longitude" yaml:"longitude"`
	Latitude  float64   `json:"latitude"  yaml:"latitude"`
}

// NewLocation creates a validated Location. The ID is left empty; stores assign it on insert.
func NewLocation(gridID string, gridX, gridY int, longitude, latitude float64) (*Location, error) {
	l := &Location{
		GridID:    gridID,
		GridX:     gridX,
		GridY:     gridY,
		Longitude: longitude,
		Latitude:  latitude,
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// Validate checks if the Location has valid data.
func (l *Location) Validate() error {
	if l.GridID == "" {
		return ErrEmptyGridID
	}
	return nil
}

// Equal reports whether both locations hold the same values, ignoring IDs.
func (l *Location) Equal(other *Location) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.GridID == other.GridID &&
		l.GridX == other.GridX &&
		l.GridY == other.GridY &&
		l.Longitude == other.Longitude &&
		l.Latitude == other.Latitude
}

// Clone returns a copy of l.
func (l *Location) Clone() *Location {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

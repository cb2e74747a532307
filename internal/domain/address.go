package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Validation errors for Address
var (
	ErrEmptyAddressLine1 = fmt.Errorf("%w: address line 1 cannot be empty", ErrValidation)
	ErrMissingLocation   = fmt.Errorf("%w: address location cannot be empty", ErrValidation)
)

// Address is the street address of a project together with its resolved Location.
type Address struct {
	ID         uuid.UUID `json:"id"          yaml:"id"`
	Line1      string    `json:"line1"       yaml:"line1"`
	Line2      string    `json:"line2"       yaml:"line2"`
	City       string    `json:"city"        yaml:"city"`
	State      string    `json:"state"       yaml:"state"`
	PostalCode string    `json:"postal_code" yaml:"postal_code"`
	Location   *Location `json:"location"    yaml:"location"`
}

// NewAddress creates a validated Address. The ID is left empty; stores assign it on insert.
func NewAddress(line1, line2, city, state, postalCode string, location *Location) (*Address, error) {
	a := &Address{
		Line1:      line1,
		Line2:      line2,
		City:       city,
		State:      state,
		PostalCode: postalCode,
		Location:   location,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate checks the address and its location.
func (a *Address) Validate() error {
	if a.Line1 == "" {
		return ErrEmptyAddressLine1
	}
	if a.Location == nil {
		return ErrMissingLocation
	}
	return a.Location.Validate()
}

// Equal reports whether both addresses hold the same values, ignoring IDs
// (including the nested location's).
func (a *Address) Equal(other *Address) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Line1 == other.Line1 &&
		a.Line2 == other.Line2 &&
		a.City == other.City &&
		a.State == other.State &&
		a.PostalCode == other.PostalCode &&
		a.Location.Equal(other.Location)
}

// Clone returns a deep copy of a.
func (a *Address) Clone() *Address {
	if a == nil {
		return nil
	}
	c := *a
	c.Location = a.Location.Clone()
	return &c
}

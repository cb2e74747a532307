package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Validation errors for Project
var (
	ErrEmptyProjectName = fmt.Errorf("%w: project name cannot be empty", ErrValidation)
	ErrMissingAddress   = fmt.Errorf("%w: project address cannot be empty", ErrValidation)
)

// Project is a site a user wants rain alerts for.
type Project struct {
	ID          uuid.UUID `json:"id"          yaml:"id"`
	UserID      uuid.UUID `json:"user_id"     yaml:"user_id"`
	Name        string    `json:"name"        yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Address     *Address  `json:"address"     yaml:"address"`
}

// NewProject creates a validated Project owned by userID.
// Project, address and location IDs are left empty; stores assign them on insert.
func NewProject(userID uuid.UUID, name, description string, address *Address) (*Project, error) {
	p := &Project{
		UserID:      userID,
		Name:        name,
		Description: description,
		Address:     address,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the project and its nested address and location.
func (p *Project) Validate() error {
	if p.Name == "" {
		return ErrEmptyProjectName
	}
	if p.Address == nil {
		return ErrMissingAddress
	}
	return p.Address.Validate()
}

// Equal reports whether both projects hold the same name, description and
// address. Identifiers and the owner are not compared.
func (p *Project) Equal(other *Project) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.Name == other.Name &&
		p.Description == other.Description &&
		p.Address.Equal(other.Address)
}

// Clone returns a deep copy of p.
func (p *Project) Clone() *Project {
	if p == nil {
		return nil
	}
	c := *p
	c.Address = p.Address.Clone()
	return &c
}

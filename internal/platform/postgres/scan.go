package postgres

import (
	"github.com/Masterminds/squirrel"
	"github.com/jrescalona/rainalert/internal/domain"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var (
	locationColumns = []string{
		"l.id", "l.grid_id", "l.grid_x", "l.grid_y", "l.longitude", "l.latitude",
	}
	addressColumns = []string{
		"a.id", "a.address_line1", "a.address_line2", "a.city", "a.state", "a.postal_code",
	}
	projectColumns = []string{
		"p.id", "p.user_id", "p.name", "p.description",
	}
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func locationSelect() squirrel.SelectBuilder {
	return psql.Select(locationColumns...).From("location l")
}

func addressSelect() squirrel.SelectBuilder {
	cols := append(append([]string{}, addressColumns...), locationColumns...)
	return psql.Select(cols...).
		From("address a").
		Join("location l ON l.id = a.location_id")
}

// projectSelect selects the project × address × location join that scanProject maps.
func projectSelect() squirrel.SelectBuilder {
	cols := append(append(append([]string{}, projectColumns...), addressColumns...), locationColumns...)
	return psql.Select(cols...).
		From("project p").
		Join("address a ON a.id = p.address_id").
		Join("location l ON l.id = a.location_id")
}

func locationDest(l *domain.Location) []any {
	return []any{&l.ID, &l.GridID, &l.GridX, &l.GridY, &l.Longitude, &l.Latitude}
}

func addressDest(a *domain.Address) []any {
	return []any{&a.ID, &a.Line1, &a.Line2, &a.City, &a.State, &a.PostalCode}
}

func scanLocation(row rowScanner) (*domain.Location, error) {
	l := &domain.Location{}
	if err := row.Scan(locationDest(l)...); err != nil {
		return nil, err
	}
	return l, nil
}

func scanAddress(row rowScanner) (*domain.Address, error) {
	a := &domain.Address{Location: &domain.Location{}}
	dest := append(addressDest(a), locationDest(a.Location)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return a, nil
}

// scanProject maps one joined row into a fully populated project graph.
func scanProject(row rowScanner) (*domain.Project, error) {
	p := &domain.Project{Address: &domain.Address{Location: &domain.Location{}}}
	dest := []any{&p.ID, &p.UserID, &p.Name, &p.Description}
	dest = append(dest, addressDest(p.Address)...)
	dest = append(dest, locationDest(p.Address.Location)...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return p, nil
}

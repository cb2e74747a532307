package postgres

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testLocation() *domain.Location {
	return &domain.Location{
		GridID:    "DAS",
		GridX:     48,
		GridY:     8,
		Longitude: -261.253486,
		Latitude:  -196.207582,
	}
}

func testAddress() *domain.Address {
	return &domain.Address{
		Line1:      "1 Main St",
		Line2:      "Suite 4",
		City:       "Dallas",
		State:      "TX",
		PostalCode: "75201",
		Location:   testLocation(),
	}
}

func testProject(userID uuid.UUID) *domain.Project {
	return &domain.Project{
		UserID:      userID,
		Name:        "Roof repair",
		Description: "Replace shingles before the storm season",
		Address:     testAddress(),
	}
}

func locationRowValues(id uuid.UUID, l *domain.Location) []driver.Value {
	return []driver.Value{id.String(), l.GridID, int64(l.GridX), int64(l.GridY), l.Longitude, l.Latitude}
}

func addressRowValues(id, locationID uuid.UUID, a *domain.Address) []driver.Value {
	l := a.Location
	return []driver.Value{
		id.String(), a.Line1, a.Line2, a.City, a.State, a.PostalCode,
		locationID.String(), l.GridID, int64(l.GridX), int64(l.GridY), l.Longitude, l.Latitude,
	}
}

func projectRowValues(id, addressID, locationID uuid.UUID, p *domain.Project) []driver.Value {
	values := []driver.Value{id.String(), p.UserID.String(), p.Name, p.Description}
	return append(values, addressRowValues(addressID, locationID, p.Address)...)
}

var (
	locationRowColumns = []string{"id", "grid_id", "grid_x", "grid_y", "longitude", "latitude"}
	addressRowColumns  = append(
		[]string{"id", "address_line1", "address_line2", "city", "state", "postal_code"},
		locationRowColumns...,
	)
	projectRowColumns = append([]string{"id", "user_id", "name", "description"}, addressRowColumns...)
)

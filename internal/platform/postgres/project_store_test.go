package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/jrescalona/rainalert/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostgresProjectStore(t *testing.T) {
	assert.Panics(t, func() {
		NewPostgresProjectStore(nil, discardLogger())
	})

	s := NewPostgresProjectStore(&sql.DB{}, nil)
	assert.NotNil(t, s.logger)
	assert.NotNil(t, s.addresses)
	assert.NotNil(t, s.addresses.locations)
}

func TestPostgresProjectStore_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("writes_graph_in_one_transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		id, userID := uuid.New(), uuid.New()
		p := testProject(userID)
		p.ID = uuid.New()
		p.Address.ID = uuid.New()
		p.Address.Location.ID = uuid.New()
		staleAddressID, staleLocationID := p.Address.ID, p.Address.Location.ID

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO location")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO address")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO project")).
			WithArgs(id, userID, "Roof repair", "Replace shingles before the storm season", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, s.Insert(ctx, id, p))
		assert.Equal(t, id, p.ID)
		assert.NotEqual(t, staleAddressID, p.Address.ID)
		assert.NotEqual(t, staleLocationID, p.Address.Location.ID)
		assert.NotEqual(t, uuid.Nil, p.Address.ID)
	})

	t.Run("unknown_owner_rolls_back_with_invalid_entity", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO location")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO address")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO project")).
			WillReturnError(&pgconn.PgError{Code: foreignKeyViolationCode, ConstraintName: "project_user_id_fkey"})
		mock.ExpectRollback()

		err := s.Insert(ctx, uuid.New(), testProject(uuid.New()))
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "project_user_id_fkey")
	})

	t.Run("validation_happens_before_storage", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		p := testProject(uuid.New())
		p.Name = ""
		assert.ErrorIs(t, s.Insert(ctx, uuid.New(), p), domain.ErrEmptyProjectName)

		p = testProject(uuid.New())
		p.Address = nil
		assert.ErrorIs(t, s.Insert(ctx, uuid.New(), p), domain.ErrMissingAddress)

		assert.ErrorIs(t, s.Insert(ctx, uuid.New(), nil), store.ErrInvalidEntity)
	})
}

func TestPostgresProjectStore_WithTx_JoinsTransaction(t *testing.T) {
	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO location")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO address")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO project")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	s := NewPostgresProjectStore(db, discardLogger()).WithTx(tx)
	require.NoError(t, s.Insert(ctx, uuid.New(), testProject(uuid.New())))
	require.NoError(t, tx.Rollback())
}

func TestPostgresProjectStore_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns_full_graph", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		id, addrID, locID := uuid.New(), uuid.New(), uuid.New()
		want := testProject(uuid.New())

		mock.ExpectQuery(regexp.QuoteMeta(
			"FROM project p JOIN address a ON a.id = p.address_id JOIN location l ON l.id = a.location_id WHERE p.id = $1",
		)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(projectRowColumns).AddRow(projectRowValues(id, addrID, locID, want)...))

		got, err := s.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		assert.Equal(t, want.UserID, got.UserID)
		assert.Equal(t, addrID, got.Address.ID)
		assert.Equal(t, locID, got.Address.Location.ID)
		assert.True(t, want.Equal(got))
	})

	t.Run("not_found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		mock.ExpectQuery(regexp.QuoteMeta("FROM project p")).
			WillReturnRows(sqlmock.NewRows(projectRowColumns))

		got, err := s.GetByID(ctx, uuid.New())
		assert.Nil(t, got)
		assert.ErrorIs(t, err, store.ErrProjectNotFound)
	})
}

func TestPostgresProjectStore_List(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewPostgresProjectStore(db, discardLogger())

	a, b := testProject(uuid.New()), testProject(uuid.New())
	a.Name, b.Name = "Alpha", "Bravo"
	rows := sqlmock.NewRows(projectRowColumns).
		AddRow(projectRowValues(uuid.New(), uuid.New(), uuid.New(), a)...).
		AddRow(projectRowValues(uuid.New(), uuid.New(), uuid.New(), b)...)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.name, p.id")).WillReturnRows(rows)

	projects, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Alpha", projects[0].Name)
	assert.Equal(t, "Bravo", projects[1].Name)
}

func TestPostgresProjectStore_ListByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("single_joined_query", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		userID := uuid.New()
		rows := sqlmock.NewRows(projectRowColumns).
			AddRow(projectRowValues(uuid.New(), uuid.New(), uuid.New(), testProject(userID))...).
			AddRow(projectRowValues(uuid.New(), uuid.New(), uuid.New(), testProject(userID))...)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.user_id = $1 ORDER BY p.name, p.id")).
			WithArgs(userID).
			WillReturnRows(rows)

		projects, err := s.ListByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		for _, p := range projects {
			assert.Equal(t, userID, p.UserID)
			require.NotNil(t, p.Address)
			require.NotNil(t, p.Address.Location)
		}
	})

	t.Run("no_projects_returns_empty_slice", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.user_id = $1")).
			WillReturnRows(sqlmock.NewRows(projectRowColumns))

		projects, err := s.ListByUserID(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, projects)
		assert.Empty(t, projects)
	})

	t.Run("row_error_is_returned", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		rows := sqlmock.NewRows(projectRowColumns).
			AddRow(projectRowValues(uuid.New(), uuid.New(), uuid.New(), testProject(uuid.New()))...).
			RowError(0, sql.ErrConnDone)
		mock.ExpectQuery(regexp.QuoteMeta("WHERE p.user_id = $1")).WillReturnRows(rows)

		_, err := s.ListByUserID(ctx, uuid.New())
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestPostgresProjectStore_UpdateByID(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces_name_and_description", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		id := uuid.New()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE project SET name = $1, description = $2 WHERE id = $3")).
			WithArgs("Gutters", "Clear before rain", id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		status, err := s.UpdateByID(ctx, id, &domain.Project{Name: "Gutters", Description: "Clear before rain"})
		require.NoError(t, err)
		assert.Equal(t, store.StatusOK, status)
	})

	t.Run("missing_id_reports_not_found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE project SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		status, err := s.UpdateByID(ctx, uuid.New(), &domain.Project{Name: "Gutters"})
		require.NoError(t, err)
		assert.Equal(t, store.StatusNotFound, status)
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		db, _ := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		status, err := s.UpdateByID(ctx, uuid.New(), &domain.Project{})
		assert.Equal(t, store.StatusNotFound, status)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrEmptyProjectName)
	})

	t.Run("rows_affected_failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		mock.ExpectExec(regexp.QuoteMeta("UPDATE project SET")).
			WillReturnResult(sqlmock.NewErrorResult(sql.ErrConnDone))

		status, err := s.UpdateByID(ctx, uuid.New(), &domain.Project{Name: "Gutters"})
		assert.Equal(t, store.StatusNotFound, status)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

func TestPostgresProjectStore_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades_to_address_and_location", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		id, addrID, locID := uuid.New(), uuid.New(), uuid.New()

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM project WHERE id = $1 RETURNING address_id")).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"address_id"}).AddRow(addrID.String()))
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM address WHERE id = $1 RETURNING location_id")).
			WithArgs(addrID).
			WillReturnRows(sqlmock.NewRows([]string{"location_id"}).AddRow(locID.String()))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM location WHERE id = $1")).
			WithArgs(locID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		status, err := s.DeleteByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, store.StatusOK, status)
	})

	t.Run("missing_id_reports_not_found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM project")).
			WillReturnRows(sqlmock.NewRows([]string{"address_id"}))
		mock.ExpectCommit()

		status, err := s.DeleteByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, store.StatusNotFound, status)
	})

	t.Run("address_failure_rolls_back", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := NewPostgresProjectStore(db, discardLogger())

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM project")).
			WillReturnRows(sqlmock.NewRows([]string{"address_id"}).AddRow(uuid.New().String()))
		mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM address")).
			WillReturnError(sql.ErrConnDone)
		mock.ExpectRollback()

		status, err := s.DeleteByID(ctx, uuid.New())
		assert.Equal(t, store.StatusNotFound, status)
		assert.ErrorIs(t, err, sql.ErrConnDone)
	})
}

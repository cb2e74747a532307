//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jrescalona/rainalert/internal/domain"
	"github.com/jrescalona/rainalert/internal/platform/postgres"
	"github.com/jrescalona/rainalert/internal/store"
	"github.com/jrescalona/rainalert/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestUser(t *testing.T, ctx context.Context, tx *sql.Tx) *domain.User {
	t.Helper()

	email := fmt.Sprintf("user-%s@example.com", uuid.NewString()[:8])
	u, err := domain.NewUser("Test", "User", domain.RoleUser, email, "integration-password")
	require.NoError(t, err)
	require.NoError(t, postgres.NewPostgresUserStore(tx, nil, bcrypt.MinCost).Create(ctx, u))
	return u
}

func newProject(t *testing.T, userID uuid.UUID, name string) *domain.Project {
	t.Helper()

	loc, err := domain.NewLocation("DAS", 48, 8, -261.253486, -196.207582)
	require.NoError(t, err)
	addr, err := domain.NewAddress("1 Main St", "", "Dallas", "TX", "75201", loc)
	require.NoError(t, err)
	p, err := domain.NewProject(userID, name, "integration", addr)
	require.NoError(t, err)
	return p
}

func TestProjectStore_Integration(t *testing.T) {
	db := testdb.GetTestDB(t)
	ctx := context.Background()

	t.Run("insert_then_get_returns_equal_graph", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			user := createTestUser(t, ctx, tx)
			projects := postgres.NewPostgresProjectStore(tx, nil)

			p := newProject(t, user.ID, "Roof")
			id := uuid.New()
			require.NoError(t, projects.Insert(ctx, id, p))

			got, err := projects.GetByID(ctx, id)
			require.NoError(t, err)
			assert.True(t, p.Equal(got))
			assert.Equal(t, id, got.ID)
			assert.Equal(t, user.ID, got.UserID)
			assert.NotEqual(t, uuid.Nil, got.Address.ID)
			assert.NotEqual(t, uuid.Nil, got.Address.Location.ID)
		})
	})

	t.Run("list_by_user_and_delete_cascade", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			user := createTestUser(t, ctx, tx)
			projects := postgres.NewPostgresProjectStore(tx, nil)
			addresses := postgres.NewPostgresAddressStore(tx, nil)
			locations := postgres.NewPostgresLocationStore(tx, nil)

			a, b := newProject(t, user.ID, "A"), newProject(t, user.ID, "B")
			require.NoError(t, projects.Insert(ctx, uuid.New(), a))
			require.NoError(t, projects.Insert(ctx, uuid.New(), b))

			owned, err := projects.ListByUserID(ctx, user.ID)
			require.NoError(t, err)
			require.Len(t, owned, 2)

			addrs, err := addresses.ListByUserID(ctx, user.ID)
			require.NoError(t, err)
			assert.Len(t, addrs, 2)

			status, err := projects.DeleteByID(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, store.StatusOK, status)

			_, err = projects.GetByID(ctx, a.ID)
			assert.ErrorIs(t, err, store.ErrProjectNotFound)
			_, err = addresses.GetByID(ctx, a.Address.ID)
			assert.ErrorIs(t, err, store.ErrAddressNotFound)
			_, err = locations.GetByID(ctx, a.Address.Location.ID)
			assert.ErrorIs(t, err, store.ErrLocationNotFound)

			status, err = projects.DeleteByID(ctx, a.ID)
			require.NoError(t, err)
			assert.Equal(t, store.StatusNotFound, status)
		})
	})

	t.Run("update_changes_name_and_description_only", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			user := createTestUser(t, ctx, tx)
			projects := postgres.NewPostgresProjectStore(tx, nil)

			p := newProject(t, user.ID, "Before")
			require.NoError(t, projects.Insert(ctx, uuid.New(), p))

			status, err := projects.UpdateByID(ctx, p.ID, &domain.Project{Name: "After", Description: "new"})
			require.NoError(t, err)
			assert.Equal(t, store.StatusOK, status)

			got, err := projects.GetByID(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, "After", got.Name)
			assert.Equal(t, "new", got.Description)
			assert.Equal(t, p.Address.ID, got.Address.ID)

			status, err = projects.UpdateByID(ctx, uuid.New(), &domain.Project{Name: "X"})
			require.NoError(t, err)
			assert.Equal(t, store.StatusNotFound, status)
		})
	})

	t.Run("unknown_owner_is_invalid", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			projects := postgres.NewPostgresProjectStore(tx, nil)
			err := projects.Insert(ctx, uuid.New(), newProject(t, uuid.New(), "Orphan"))
			assert.ErrorIs(t, err, store.ErrInvalidEntity)
		})
	})

	t.Run("deleting_user_removes_projects", func(t *testing.T) {
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			user := createTestUser(t, ctx, tx)
			projects := postgres.NewPostgresProjectStore(tx, nil)
			p := newProject(t, user.ID, "Owned")
			require.NoError(t, projects.Insert(ctx, uuid.New(), p))

			require.NoError(t, postgres.NewPostgresUserStore(tx, nil, bcrypt.MinCost).Delete(ctx, user.ID))

			_, err := projects.GetByID(ctx, p.ID)
			assert.ErrorIs(t, err, store.ErrProjectNotFound)
		})
	})
}

func TestLocationStore_Integration(t *testing.T) {
	db := testdb.GetTestDB(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		locations := postgres.NewPostgresLocationStore(tx, nil)

		ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		for i, id := range ids {
			loc, err := domain.NewLocation(fmt.Sprintf("GRID-%d", i), i, i, 1.5, 2.5)
			require.NoError(t, err)
			require.NoError(t, locations.Insert(ctx, id, loc))
		}

		update, err := domain.NewLocation("LOL", 10, 1, 1.5, 2.5)
		require.NoError(t, err)
		status, err := locations.UpdateByID(ctx, ids[0], update)
		require.NoError(t, err)
		assert.Equal(t, store.StatusOK, status)

		got, err := locations.GetByID(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "LOL", got.GridID)
		assert.Equal(t, 10, got.GridX)
		assert.Equal(t, 1, got.GridY)
		assert.Equal(t, 1.5, got.Longitude)

		status, err = locations.DeleteByID(ctx, ids[1])
		require.NoError(t, err)
		assert.Equal(t, store.StatusOK, status)

		for _, id := range []uuid.UUID{ids[0], ids[2]} {
			_, err := locations.GetByID(ctx, id)
			assert.NoError(t, err)
		}
		_, err = locations.GetByID(ctx, ids[1])
		assert.ErrorIs(t, err, store.ErrLocationNotFound)
	})
}

func TestUserStore_Integration(t *testing.T) {
	db := testdb.GetTestDB(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, nil, bcrypt.MinCost)
		u := createTestUser(t, ctx, tx)

		byEmail, err := users.GetByEmail(ctx, u.Email)
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)

		dup, err := domain.NewUser("Other", "User", domain.RoleUser, u.Email, "integration-password")
		require.NoError(t, err)
		assert.ErrorIs(t, users.Create(ctx, dup), store.ErrEmailExists)
	})
}

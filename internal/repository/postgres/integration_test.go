//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/carlisting-server/internal/model"
	repo "github.com/dtroode/carlisting-server/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "carlisting_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/carlisting_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(email string) model.User {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return model.User{
		ID:           uuid.New(),
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=8,t=1,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.Ping(ctx))

	ur := repo.NewUserRepository(conn)
	owner, err := ur.Create(ctx, newUser("owner@example.com"))
	require.NoError(t, err)
	other, err := ur.Create(ctx, newUser("other@example.com"))
	require.NoError(t, err)

	t.Run("user_repository", func(t *testing.T) {
		byEmail, err := ur.GetByEmail(ctx, owner.Email)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, byEmail.ID)
		assert.Equal(t, owner.PasswordHash, byEmail.PasswordHash)

		byID, err := ur.GetByID(ctx, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, owner.Email, byID.Email)

		_, err = ur.Create(ctx, newUser(owner.Email))
		assert.ErrorIs(t, err, model.ErrAlreadyExists)

		_, err = ur.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("token_repository", func(t *testing.T) {
		tr := repo.NewTokenRepository(conn)
		base := time.Now().UTC()
		for i := range 4 {
			require.NoError(t, tr.Create(ctx, model.UserToken{
				UserID:    owner.ID,
				Token:     fmt.Sprintf("token-%d", i),
				CreatedAt: base.Add(time.Duration(i) * time.Second),
			}))
		}

		require.NoError(t, tr.PruneByUser(ctx, owner.ID, 2))

		var count int
		require.NoError(t, conn.QueryRow(ctx, `SELECT count(*) FROM user_tokens WHERE user_id = $1`, owner.ID).Scan(&count))
		assert.Equal(t, 2, count)

		var oldest string
		require.NoError(t, conn.QueryRow(ctx,
			`SELECT token FROM user_tokens WHERE user_id = $1 ORDER BY created_at LIMIT 1`, owner.ID).Scan(&oldest))
		assert.Equal(t, "token-2", oldest)
	})

	t.Run("car_repository", func(t *testing.T) {
		cr := repo.NewCarRepository(conn)
		now := time.Now().UTC().Truncate(time.Microsecond)
		car := model.Car{
			ID:          uuid.New(),
			OwnerID:     owner.ID,
			Title:       "Civic",
			Description: "2019, low mileage",
			Tags:        []string{"honda", "sedan"},
			Images:      []string{"1_abc_front.jpg"},
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		saved, err := cr.Create(ctx, car)
		require.NoError(t, err)
		assert.Equal(t, car.Tags, saved.Tags)

		_, err = cr.Create(ctx, model.Car{ID: uuid.New(), OwnerID: owner.ID, Title: "Golf", Description: "100% rust free", CreatedAt: now.Add(time.Second), UpdatedAt: now})
		require.NoError(t, err)

		all, err := cr.ListByOwner(ctx, owner.ID, "")
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "Golf", all[0].Title)
		assert.Equal(t, []string{}, all[0].Tags)

		byTag, err := cr.ListByOwner(ctx, owner.ID, "SEDAN")
		require.NoError(t, err)
		require.Len(t, byTag, 1)
		assert.Equal(t, car.ID, byTag[0].ID)

		literal, err := cr.ListByOwner(ctx, owner.ID, "100%")
		require.NoError(t, err)
		require.Len(t, literal, 1)
		assert.Equal(t, "Golf", literal[0].Title)

		none, err := cr.ListByOwner(ctx, other.ID, "")
		require.NoError(t, err)
		assert.Empty(t, none)

		_, err = cr.GetByIDAndOwner(ctx, car.ID, other.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		saved.Title = "Civic Type R"
		saved.Images = []string{}
		updated, err := cr.Update(ctx, saved)
		require.NoError(t, err)
		assert.Equal(t, "Civic Type R", updated.Title)
		assert.Empty(t, updated.Images)

		foreign := saved
		foreign.OwnerID = other.ID
		_, err = cr.Update(ctx, foreign)
		assert.ErrorIs(t, err, model.ErrNotFound)

		n, err := cr.DeleteByIDAndOwner(ctx, car.ID, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		n, err = cr.DeleteByIDAndOwner(ctx, car.ID, owner.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

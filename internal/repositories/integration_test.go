package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/blog-ms/internal/migrations"
	"github.com/sbilibin2017/blog-ms/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, migrations.Up(db.DB))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}
	return db, teardown
}

func TestPostgresRepositories(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()
	ctx := context.Background()

	userWrite := NewUserWriteRepository(db, nil)
	userRead := NewUserReadRepository(db)
	blogWrite := NewBlogWriteRepository(db)
	blogRead := NewBlogReadRepository(db)
	notificationWrite := NewNotificationWriteRepository(db)
	notificationRead := NewNotificationReadRepository(db)

	userID, err := userWrite.Save(ctx, &models.UserDB{Email: "Ada@Example.com", Forename: "Ada", Surname: "Lovelace", PasswordHash: "h"})
	require.NoError(t, err)

	t.Run("user lookups", func(t *testing.T) {
		user, err := userRead.GetByEmail(ctx, "ada@example.com")
		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)

		user, err = userRead.GetByID(ctx, userID+100)
		assert.NoError(t, err)
		assert.Nil(t, user)

		_, err = userWrite.Save(ctx, &models.UserDB{Email: "ada@example.com", Forename: "x", Surname: "y", PasswordHash: "h"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("blogs", func(t *testing.T) {
		categories, err := blogRead.ListCategories(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, categories)

		for i := 0; i < 3; i++ {
			_, err := blogWrite.Save(ctx, userID, &models.CreateBlogRequest{
				Title:      fmt.Sprintf("post %d", i),
				Content:    "body",
				CategoryID: categories[0].ID,
			})
			require.NoError(t, err)
		}

		page, err := blogRead.List(ctx, models.Page{Number: 0, Size: 2})
		assert.NoError(t, err)
		assert.Len(t, page, 2)
		assert.Equal(t, "Ada", page[0].AuthorName)

		page, err = blogRead.List(ctx, models.Page{Number: 1, Size: 2})
		assert.NoError(t, err)
		assert.Len(t, page, 1)

		_, err = blogWrite.Save(ctx, userID, &models.CreateBlogRequest{Title: "t", Content: "c", CategoryID: 9999})
		assert.ErrorIs(t, err, ErrReferenceNotFound)

		assert.NoError(t, blogWrite.DeleteByID(ctx, page[0].ID))
		blog, err := blogRead.GetByID(ctx, page[0].ID)
		assert.NoError(t, err)
		assert.Nil(t, blog)
	})

	t.Run("notifications", func(t *testing.T) {
		id, err := notificationWrite.Save(ctx, userID, "Welcome")
		require.NoError(t, err)

		list, err := notificationRead.FindAllByUserID(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, list, 1)

		assert.NoError(t, notificationWrite.RemoveByID(ctx, id))
		n, err := notificationRead.GetByID(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, n)
	})
}

func TestSessionRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSessionRepository(rdb)

	t.Run("save, get and delete", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, "tok-1", 42, time.Minute))

		userID, err := repo.GetUserID(ctx, "tok-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(42), userID)

		removed, err := repo.Delete(ctx, "tok-1")
		assert.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Delete(ctx, "tok-1")
		assert.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("missing session", func(t *testing.T) {
		userID, err := repo.GetUserID(ctx, "nope")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), userID)
	})

	t.Run("session expires", func(t *testing.T) {
		assert.NoError(t, repo.Save(ctx, "tok-2", 1, time.Second))
		time.Sleep(2 * time.Second)

		userID, err := repo.GetUserID(ctx, "tok-2")
		assert.NoError(t, err)
		assert.Equal(t, int64(0), userID)
	})
}

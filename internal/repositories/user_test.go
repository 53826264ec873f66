package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestUserReadRepository_GetByUsernameOrEmail(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserReadRepository(sqlxDB)
	ctx := context.Background()

	userID := uuid.New()
	username := "testuser"
	email := "test@example.com"
	createdAt := time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC)

	t.Run("found by username", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(userID.String(), username, email, "bcrypt-hash", createdAt)

		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at").
			WithArgs(&username, nil).
			WillReturnRows(rows)

		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, userID, user.ID)
		assert.Equal(t, username, user.Username)
		assert.Equal(t, "bcrypt-hash", user.PasswordHash)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no match yields nil, nil", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at").
			WithArgs(&username, &email).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByUsernameOrEmail(ctx, &username, &email)
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error is propagated", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email, password_hash, created_at").
			WithArgs(&username, nil).
			WillReturnError(sql.ErrConnDone)

		user, err := repo.GetByUsernameOrEmail(ctx, &username, nil)
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserWriteRepository_Save(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserWriteRepository(sqlxDB)
	ctx := context.Background()

	createdAt := time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC)

	t.Run("returns the created row", func(t *testing.T) {
		insertedID := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
			AddRow(insertedID.String(), "testuser", "test@example.com", "bcrypt-hash", createdAt)

		mock.ExpectQuery("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "testuser", "test@example.com", "bcrypt-hash").
			WillReturnRows(rows)

		user, err := repo.Save(ctx, "testuser", "test@example.com", "bcrypt-hash")
		assert.NoError(t, err)
		assert.Equal(t, insertedID, user.ID)
		assert.Equal(t, createdAt, user.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is propagated", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(sqlmock.AnyArg(), "testuser", "test@example.com", "bcrypt-hash").
			WillReturnError(sql.ErrConnDone)

		user, err := repo.Save(ctx, "testuser", "test@example.com", "bcrypt-hash")
		assert.Error(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

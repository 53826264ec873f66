package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/models"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	username := "testuser"
	email := "test@example.com"

	t.Run("success stores a bcrypt hash, not the plaintext", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		writer := NewMockUserWriter(ctrl)

		reader.EXPECT().
			GetByUsernameOrEmail(ctx, &username, &email).
			Return(nil, nil)

		writer.EXPECT().
			Save(ctx, username, email, gomock.Any()).
			DoAndReturn(func(_ context.Context, username, email, passwordHash string) (*models.UserDB, error) {
				assert.NotEqual(t, "password", passwordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("password")))
				return &models.UserDB{
					ID:           uuid.New(),
					Username:     username,
					Email:        email,
					PasswordHash: passwordHash,
					CreatedAt:    time.Now(),
				}, nil
			})

		svc := NewAuthService(reader, writer, NewMockJWTGenerator(ctrl))

		user, err := svc.Register(ctx, username, email, "password")
		assert.NoError(t, err)
		assert.Equal(t, username, user.Username)
		assert.Equal(t, email, user.Email)
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByUsernameOrEmail(ctx, &username, &email).
			Return(&models.UserDB{ID: uuid.New(), Username: username}, nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockJWTGenerator(ctrl))

		user, err := svc.Register(ctx, username, email, "password")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
		assert.Nil(t, user)
	})

	t.Run("reader error is propagated", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByUsernameOrEmail(ctx, &username, &email).
			Return(nil, errors.New("database failure"))

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockJWTGenerator(ctrl))

		user, err := svc.Register(ctx, username, email, "password")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	username := "testuser"
	userID := uuid.New()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &models.UserDB{
		ID:           userID,
		Username:     username,
		Email:        "test@example.com",
		PasswordHash: string(hash),
	}

	t.Run("success returns a token bound to the user", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)
		jwtGen := NewMockJWTGenerator(ctrl)

		reader.EXPECT().
			GetByUsernameOrEmail(ctx, &username, nil).
			Return(user, nil)
		jwtGen.EXPECT().
			Generate(ctx, userID).
			Return("signed.jwt.token", nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), jwtGen)

		token, err := svc.Login(ctx, username, "password")
		assert.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByUsernameOrEmail(ctx, &username, nil).
			Return(user, nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockJWTGenerator(ctrl))

		token, err := svc.Login(ctx, username, "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("unknown username", func(t *testing.T) {
		reader := NewMockUserReader(ctrl)

		reader.EXPECT().
			GetByUsernameOrEmail(ctx, &username, nil).
			Return(nil, nil)

		svc := NewAuthService(reader, NewMockUserWriter(ctrl), NewMockJWTGenerator(ctrl))

		token, err := svc.Login(ctx, username, "password")
		assert.ErrorIs(t, err, ErrUserDoesNotExist)
		assert.Empty(t, token)
	})
}

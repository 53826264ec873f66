package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/models"
	"github.com/rradebe/meal-planner-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	createdAt := time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC)
	user := &models.UserDB{
		ID:        uuid.New(),
		Username:  "testuser",
		Email:     "test@example.com",
		CreatedAt: createdAt,
	}

	tests := []struct {
		name            string
		body            string
		mockSetup       func(m *MockRegisterer)
		expectedCode    int
		expectedMessage string
	}{
		{
			name: "success",
			body: `{"username":"testuser","email":"test@example.com","password":"password"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "testuser", "test@example.com", "password").
					Return(user, nil)
			},
			expectedCode:    201,
			expectedMessage: "User registered successfully",
		},
		{
			name: "user already exists",
			body: `{"username":"testuser","email":"test@example.com","password":"password"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "testuser", "test@example.com", "password").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode:    400,
			expectedMessage: "User already exists",
		},
		{
			name: "internal server error",
			body: `{"username":"testuser","email":"test@example.com","password":"password"}`,
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "testuser", "test@example.com", "password").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:    500,
			expectedMessage: "Internal server error",
		},
		{
			name:            "invalid json",
			body:            "{invalid json}",
			expectedCode:    400,
			expectedMessage: "Input payload validation failed",
		},
		{
			name:            "missing email",
			body:            `{"username":"testuser","password":"password"}`,
			expectedCode:    400,
			expectedMessage: "Input payload validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMessage, resp["message"])

			if tt.expectedCode == 201 {
				userResp, ok := resp["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, user.ID.String(), userResp["id"])
				assert.Equal(t, "testuser", userResp["username"])
				assert.Equal(t, "test@example.com", userResp["email"])
				assert.Equal(t, "2025-02-01 10:30:00", userResp["createdAt"])
				_, hasHash := userResp["password_hash"]
				assert.False(t, hasHash)
			}
		})
	}
}

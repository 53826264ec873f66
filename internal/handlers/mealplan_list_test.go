package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListMealPlansHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	plan := samplePlan(userID)

	tests := []struct {
		name          string
		mockSetup     func(m *MockMealPlanLister)
		expectedCode  int
		expectedCount int
	}{
		{
			name: "two plans",
			mockSetup: func(m *MockMealPlanLister) {
				m.EXPECT().
					List(gomock.Any(), userID).
					Return([]models.MealPlanDB{*plan, *samplePlan(userID)}, nil)
			},
			expectedCode:  200,
			expectedCount: 2,
		},
		{
			name: "no plans",
			mockSetup: func(m *MockMealPlanLister) {
				m.EXPECT().
					List(gomock.Any(), userID).
					Return(nil, nil)
			},
			expectedCode:  200,
			expectedCount: 0,
		},
		{
			name: "store error",
			mockSetup: func(m *MockMealPlanLister) {
				m.EXPECT().
					List(gomock.Any(), userID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMealPlanLister(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewListMealPlansHandler(mockSvc)

			req := authedRequest(http.MethodGet, "/api/v1/meal-planner/mealplan", nil, userID, "")
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)

			if tt.expectedCode == 200 {
				plans, ok := resp["mealPlans"].([]any)
				assert.True(t, ok, "mealPlans must be a JSON array even when empty")
				assert.Len(t, plans, tt.expectedCount)
			}
		})
	}
}

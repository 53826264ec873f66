package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetMealPlanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	plan := samplePlan(userID)

	tests := []struct {
		name         string
		planID       string
		mockSetup    func(m *MockMealPlanGetter)
		expectedCode int
	}{
		{
			name:   "success",
			planID: plan.ID.String(),
			mockSetup: func(m *MockMealPlanGetter) {
				m.EXPECT().
					Get(gomock.Any(), userID, plan.ID).
					Return(plan, nil)
			},
			expectedCode: 200,
		},
		{
			name:   "not found or not owned",
			planID: plan.ID.String(),
			mockSetup: func(m *MockMealPlanGetter) {
				m.EXPECT().
					Get(gomock.Any(), userID, plan.ID).
					Return(nil, services.ErrMealPlanNotFound)
			},
			expectedCode: 404,
		},
		{
			name:         "malformed id",
			planID:       "not-a-uuid",
			expectedCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMealPlanGetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewGetMealPlanHandler(mockSvc)

			req := authedRequest(http.MethodGet, "/api/v1/meal-planner/mealplan/"+tt.planID, nil, userID, tt.planID)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)

			if tt.expectedCode == 200 {
				mp, ok := resp["mealPlan"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, plan.ID.String(), mp["id"])
				assert.Equal(t, userID.String(), mp["userId"])
				assert.Equal(t, "2025-02-10", mp["weekStart"])
				meals, ok := mp["meals"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, []any{"Breakfast", "Lunch", "Dinner"}, meals["Monday"])
			} else {
				assert.Equal(t, "Meal plan not found", resp["message"])
			}
		})
	}
}

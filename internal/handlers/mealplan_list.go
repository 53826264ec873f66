package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/logger"
	"github.com/rradebe/meal-planner-api/internal/middlewares"
	"github.com/rradebe/meal-planner-api/internal/models"
)

// MealPlanLister defines the interface that the service must implement.
type MealPlanLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MealPlanDB, error)
}

// ListMealPlansResponse represents the list of the caller's meal plans
// swagger:model ListMealPlansResponse
type ListMealPlansResponse struct {
	// Meal plans owned by the authenticated user
	MealPlans []*models.MealPlan `json:"mealPlans"`
}

// NewListMealPlansHandler returns an HTTP handler that lists the
// authenticated user's meal plans.
// @Summary List meal plans
// @Description Returns all meal plans owned by the authenticated user
// @Tags meal-planner
// @Produce json
// @Success 200 {object} handlers.ListMealPlansResponse "Meal plans"
// @Failure 401 {object} handlers.MealPlanErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MealPlanErrorResponse "Internal server error"
// @Router /meal-planner/mealplan [get]
// @Security BearerAuth
func NewListMealPlansHandler(svc MealPlanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(MealPlanErrorResponse{
				Message: "Unauthorized",
			})
			return
		}

		plans, err := svc.List(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("error listing meal plans", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(MealPlanErrorResponse{
				Message: "An error occurred while fetching meal plans",
				Error:   err.Error(),
			})
			return
		}

		resp := ListMealPlansResponse{
			MealPlans: make([]*models.MealPlan, 0, len(plans)),
		}
		for i := range plans {
			resp.MealPlans = append(resp.MealPlans, plans[i].ToAPI())
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

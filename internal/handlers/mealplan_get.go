package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/logger"
	"github.com/rradebe/meal-planner-api/internal/middlewares"
	"github.com/rradebe/meal-planner-api/internal/models"
	"github.com/rradebe/meal-planner-api/internal/services"
)

// MealPlanGetter defines the interface that the service must implement.
type MealPlanGetter interface {
	Get(ctx context.Context, userID, id uuid.UUID) (*models.MealPlanDB, error)
}

// GetMealPlanResponse represents a single meal plan response
// swagger:model GetMealPlanResponse
type GetMealPlanResponse struct {
	// Requested meal plan
	MealPlan *models.MealPlan `json:"mealPlan"`
}

// NewGetMealPlanHandler returns an HTTP handler that fetches one meal plan
// by id. A plan owned by another user is reported as not found.
// @Summary Get a meal plan
// @Description Returns the meal plan with the given id if owned by the authenticated user
// @Tags meal-planner
// @Produce json
// @Param id path string true "Meal plan ID"
// @Success 200 {object} handlers.GetMealPlanResponse "Meal plan"
// @Failure 401 {object} handlers.MealPlanErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MealPlanErrorResponse "Meal plan not found"
// @Router /meal-planner/mealplan/{id} [get]
// @Security BearerAuth
func NewGetMealPlanHandler(svc MealPlanGetter) http.HandlerFunc {
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

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(MealPlanErrorResponse{
				Message: "Meal plan not found",
			})
			return
		}

		plan, err := svc.Get(r.Context(), userID, id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMealPlanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "Meal plan not found",
				})
			default:
				logger.Log.Errorw("error fetching meal plan", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "An error occurred while fetching the meal plan",
					Error:   err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(GetMealPlanResponse{
			MealPlan: plan.ToAPI(),
		})
	}
}

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
	"github.com/rradebe/meal-planner-api/internal/services"
)

// MealPlanDeleter defines the interface that the service must implement.
type MealPlanDeleter interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// DeleteMealPlanResponse represents a successful deletion response
// swagger:model DeleteMealPlanResponse
type DeleteMealPlanResponse struct {
	// Success message
	// example: Meal plan deleted successfully
	Message string `json:"message"`
}

// NewDeleteMealPlanHandler returns an HTTP handler that deletes a meal plan.
// A plan owned by another user is reported as not found.
// @Summary Delete a meal plan
// @Description Deletes the meal plan with the given id if owned by the authenticated user
// @Tags meal-planner
// @Produce json
// @Param id path string true "Meal plan ID"
// @Success 200 {object} handlers.DeleteMealPlanResponse "Meal plan deleted"
// @Failure 401 {object} handlers.MealPlanErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MealPlanErrorResponse "Meal plan not found"
// @Failure 500 {object} handlers.MealPlanErrorResponse "Internal server error"
// @Router /meal-planner/mealplan/{id} [delete]
// @Security BearerAuth
func NewDeleteMealPlanHandler(svc MealPlanDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), userID, id); err != nil {
			switch {
			case errors.Is(err, services.ErrMealPlanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "Meal plan not found",
				})
			default:
				logger.Log.Errorw("error deleting meal plan", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "An error occurred while deleting the meal plan",
					Error:   err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteMealPlanResponse{
			Message: "Meal plan deleted successfully",
		})
	}
}

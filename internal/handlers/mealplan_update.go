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

// MealPlanUpdater defines the interface that the service must implement.
type MealPlanUpdater interface {
	Update(ctx context.Context, userID, id uuid.UUID, weekStart *string, meals models.MealDocument) (*models.MealPlanDB, error)
}

// UpdateMealPlanRequest represents the JSON body for a partial meal plan
// update. Absent fields leave the stored values unchanged.
// swagger:model UpdateMealPlanRequest
type UpdateMealPlanRequest struct {
	// Week start date
	// example: 2025-02-17
	WeekStart *string `json:"weekStart"`

	// Replacement meals document
	Meals models.MealDocument `json:"meals"`
}

// UpdateMealPlanResponse represents a successful update response
// swagger:model UpdateMealPlanResponse
type UpdateMealPlanResponse struct {
	// Success message
	// example: Meal plan updated successfully
	Message string `json:"message"`

	// Updated meal plan
	MealPlan *models.MealPlan `json:"mealPlan"`
}

// NewUpdateMealPlanHandler returns an HTTP handler for partial meal plan
// updates. A plan owned by another user is reported as not found.
// @Summary Update a meal plan
// @Description Applies a partial update to a meal plan owned by the authenticated user
// @Tags meal-planner
// @Accept json
// @Produce json
// @Param id path string true "Meal plan ID"
// @Param mealPlanRequest body handlers.UpdateMealPlanRequest true "Fields to update"
// @Success 200 {object} handlers.UpdateMealPlanResponse "Meal plan updated"
// @Failure 400 {object} handlers.MealPlanErrorResponse "Invalid request"
// @Failure 401 {object} handlers.MealPlanErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.MealPlanErrorResponse "Meal plan not found"
// @Failure 500 {object} handlers.MealPlanErrorResponse "Internal server error"
// @Router /meal-planner/mealplan/{id} [put]
// @Security BearerAuth
func NewUpdateMealPlanHandler(svc MealPlanUpdater) http.HandlerFunc {
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

		var req UpdateMealPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MealPlanErrorResponse{
				Message: "Input payload validation failed",
			})
			return
		}

		plan, err := svc.Update(r.Context(), userID, id, req.WeekStart, req.Meals)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMealPlanNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "Meal plan not found",
				})
			case errors.Is(err, services.ErrInvalidWeekStart):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "Input payload validation failed",
					Error:   err.Error(),
				})
			default:
				logger.Log.Errorw("error updating meal plan", "id", id, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "An error occurred while updating the meal plan",
					Error:   err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateMealPlanResponse{
			Message:  "Meal plan updated successfully",
			MealPlan: plan.ToAPI(),
		})
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/logger"
	"github.com/rradebe/meal-planner-api/internal/middlewares"
	"github.com/rradebe/meal-planner-api/internal/models"
	"github.com/rradebe/meal-planner-api/internal/services"
)

// MealPlanCreator defines the interface that the service must implement.
type MealPlanCreator interface {
	Create(ctx context.Context, userID uuid.UUID, weekStart string, meals models.MealDocument) (*models.MealPlanDB, error)
}

// CreateMealPlanRequest represents the JSON body for meal plan creation.
// The userId field is accepted for compatibility but ignored: ownership
// always comes from the authenticated identity.
// swagger:model CreateMealPlanRequest
type CreateMealPlanRequest struct {
	// Ignored; ownership comes from the access token
	UserID string `json:"userId"`

	// Week start date
	// required: true
	// example: 2025-02-10
	WeekStart string `json:"weekStart"`

	// Meals document, any JSON shape, e.g. {"Monday": ["Breakfast", "Lunch", "Dinner"]}
	// required: true
	Meals models.MealDocument `json:"meals"`
}

// CreateMealPlanResponse represents a successful creation response
// swagger:model CreateMealPlanResponse
type CreateMealPlanResponse struct {
	// Success message
	// example: Meal plan created successfully
	Message string `json:"message"`

	// Created meal plan
	MealPlan *models.MealPlan `json:"mealPlan"`
}

// MealPlanErrorResponse represents an error response for meal plan endpoints
// swagger:model MealPlanErrorResponse
type MealPlanErrorResponse struct {
	// Error message
	// example: Meal plan not found
	Message string `json:"message"`

	// Underlying error description, present on server errors only
	Error string `json:"error,omitempty"`
}

// NewCreateMealPlanHandler returns an HTTP handler for creating a meal plan.
// @Summary Create a meal plan
// @Description Creates a new meal plan owned by the authenticated user
// @Tags meal-planner
// @Accept json
// @Produce json
// @Param mealPlanRequest body handlers.CreateMealPlanRequest true "Meal plan request"
// @Success 201 {object} handlers.CreateMealPlanResponse "Meal plan created"
// @Failure 400 {object} handlers.MealPlanErrorResponse "Invalid request"
// @Failure 401 {object} handlers.MealPlanErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.MealPlanErrorResponse "Internal server error"
// @Router /meal-planner/mealplan [post]
// @Security BearerAuth
func NewCreateMealPlanHandler(svc MealPlanCreator) http.HandlerFunc {
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

		var req CreateMealPlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MealPlanErrorResponse{
				Message: "Input payload validation failed",
			})
			return
		}
		if req.WeekStart == "" || req.Meals == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(MealPlanErrorResponse{
				Message: "Input payload validation failed",
			})
			return
		}

		plan, err := svc.Create(r.Context(), userID, req.WeekStart, req.Meals)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidWeekStart):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "Input payload validation failed",
					Error:   err.Error(),
				})
			default:
				logger.Log.Errorw("error creating meal plan", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(MealPlanErrorResponse{
					Message: "An error occurred while creating the meal plan",
					Error:   err.Error(),
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateMealPlanResponse{
			Message:  "Meal plan created successfully",
			MealPlan: plan.ToAPI(),
		})
	}
}

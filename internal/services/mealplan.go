package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rradebe/meal-planner-api/internal/logger"
	"github.com/rradebe/meal-planner-api/internal/models"
)

var (
	// ErrMealPlanNotFound covers both a truly missing plan and a plan owned
	// by another user; callers cannot tell the two apart.
	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrInvalidWeekStart = errors.New("weekStart must be a date in YYYY-MM-DD format")
)

// MealPlanReader defines read operations for meal plans.
type MealPlanReader interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.MealPlanDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MealPlanDB, error)
}

// MealPlanWriter defines write operations for meal plans.
type MealPlanWriter interface {
	Save(ctx context.Context, userID uuid.UUID, weekStart time.Time, meals models.MealDocument) (*models.MealPlanDB, error)
	Update(ctx context.Context, userID, id uuid.UUID, weekStart *time.Time, meals models.MealDocument) (*models.MealPlanDB, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (bool, error)
}

// MealPlanService enforces ownership and date validation on top of the
// meal plan repositories. The userID argument always comes from the
// authenticated request identity, never from a request body.
type MealPlanService struct {
	reader MealPlanReader
	writer MealPlanWriter
}

// NewMealPlanService creates a new MealPlanService instance.
func NewMealPlanService(reader MealPlanReader, writer MealPlanWriter) *MealPlanService {
	return &MealPlanService{
		reader: reader,
		writer: writer,
	}
}

// Create validates weekStart and persists a new plan owned by userID.
func (svc *MealPlanService) Create(ctx context.Context, userID uuid.UUID, weekStart string, meals models.MealDocument) (*models.MealPlanDB, error) {
	ws, err := time.Parse(models.DateFormat, weekStart)
	if err != nil {
		logger.Log.Errorw("invalid week start", "weekStart", weekStart, "err", err)
		return nil, ErrInvalidWeekStart
	}

	plan, err := svc.writer.Save(ctx, userID, ws, meals)
	if err != nil {
		logger.Log.Errorw("failed to save meal plan", "err", err)
		return nil, err
	}

	return plan, nil
}

// List returns all plans owned by userID.
func (svc *MealPlanService) List(ctx context.Context, userID uuid.UUID) ([]models.MealPlanDB, error) {
	plans, err := svc.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list meal plans", "err", err)
		return nil, err
	}
	return plans, nil
}

// Get returns the plan with the given id if userID owns it.
func (svc *MealPlanService) Get(ctx context.Context, userID, id uuid.UUID) (*models.MealPlanDB, error) {
	plan, err := svc.reader.GetByID(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to get meal plan", "id", id, "err", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrMealPlanNotFound
	}
	return plan, nil
}

// Update applies a partial update to an owned plan. A nil weekStart or nil
// meals leaves the stored field unchanged; with neither field present no
// row is written and updated_at keeps its value.
func (svc *MealPlanService) Update(ctx context.Context, userID, id uuid.UUID, weekStart *string, meals models.MealDocument) (*models.MealPlanDB, error) {
	if weekStart == nil && meals == nil {
		return svc.Get(ctx, userID, id)
	}

	var ws *time.Time
	if weekStart != nil {
		parsed, err := time.Parse(models.DateFormat, *weekStart)
		if err != nil {
			logger.Log.Errorw("invalid week start", "weekStart", *weekStart, "err", err)
			return nil, ErrInvalidWeekStart
		}
		ws = &parsed
	}

	plan, err := svc.writer.Update(ctx, userID, id, ws, meals)
	if err != nil {
		logger.Log.Errorw("failed to update meal plan", "id", id, "err", err)
		return nil, err
	}
	if plan == nil {
		return nil, ErrMealPlanNotFound
	}
	return plan, nil
}

// Delete removes an owned plan.
func (svc *MealPlanService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	deleted, err := svc.writer.Delete(ctx, userID, id)
	if err != nil {
		logger.Log.Errorw("failed to delete meal plan", "id", id, "err", err)
		return err
	}
	if !deleted {
		return ErrMealPlanNotFound
	}
	return nil
}

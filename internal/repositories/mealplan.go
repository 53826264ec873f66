package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rradebe/meal-planner-api/internal/logger"
	"github.com/rradebe/meal-planner-api/internal/models"
)

// Every query below is scoped by user_id, so a plan owned by another user
// behaves exactly like a missing one.

// MealPlanReadRepository handles meal plan read operations
type MealPlanReadRepository struct {
	db *sqlx.DB
}

func NewMealPlanReadRepository(db *sqlx.DB) *MealPlanReadRepository {
	return &MealPlanReadRepository{db: db}
}

// GetByID returns the plan with the given id if it is owned by userID.
// Returns (nil, nil) when no such plan is visible to the user.
func (r *MealPlanReadRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.MealPlanDB, error) {
	const query = `
		SELECT id, user_id, week_start, meals, created_at, updated_at
		FROM meal_plans
		WHERE id = $1 AND user_id = $2
	`

	var plan models.MealPlanDB
	err := r.db.GetContext(ctx, &plan, query, id, userID)

	logger.Log.Infow("meal plan select",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// ListByUserID returns all plans owned by userID. Ordering by creation time
// keeps responses stable but is not part of the API contract.
func (r *MealPlanReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MealPlanDB, error) {
	const query = `
		SELECT id, user_id, week_start, meals, created_at, updated_at
		FROM meal_plans
		WHERE user_id = $1
		ORDER BY created_at
	`

	var plans []models.MealPlanDB
	err := r.db.SelectContext(ctx, &plans, query, userID)

	logger.Log.Infow("meal plan list",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"count", len(plans),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return plans, nil
}

// MealPlanWriteRepository handles meal plan write operations
type MealPlanWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMealPlanWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MealPlanWriteRepository {
	return &MealPlanWriteRepository{db: db, txGetter: txGetter}
}

// executor returns the request transaction when one is present in the
// context, falling back to the plain connection pool.
func (r *MealPlanWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new plan owned by userID and returns the created row.
func (r *MealPlanWriteRepository) Save(ctx context.Context, userID uuid.UUID, weekStart time.Time, meals models.MealDocument) (*models.MealPlanDB, error) {
	const query = `
		INSERT INTO meal_plans (id, user_id, week_start, meals, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, user_id, week_start, meals, created_at, updated_at
	`

	var plan models.MealPlanDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &plan, query, uuid.New(), userID, weekStart, meals)

	logger.Log.Infow("meal plan insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, weekStart},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// Update applies a partial update to the plan owned by userID. Nil fields
// are left unchanged; updated_at is refreshed on any successful update.
// Returns (nil, nil) when no owned plan with that id exists.
func (r *MealPlanWriteRepository) Update(ctx context.Context, userID, id uuid.UUID, weekStart *time.Time, meals models.MealDocument) (*models.MealPlanDB, error) {
	const query = `
		UPDATE meal_plans
		SET week_start = COALESCE($3::DATE, week_start),
		    meals = COALESCE($4::JSONB, meals),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, week_start, meals, created_at, updated_at
	`

	var mealsArg any
	if meals != nil {
		mealsArg = meals
	}

	var plan models.MealPlanDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &plan, query, id, userID, weekStart, mealsArg)

	logger.Log.Infow("meal plan update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID, weekStart},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

// Delete removes the plan owned by userID. Returns false when no owned plan
// with that id exists.
func (r *MealPlanWriteRepository) Delete(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM meal_plans
		WHERE id = $1 AND user_id = $2
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("meal plan delete",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

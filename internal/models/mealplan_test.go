package models

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestMealDocument_ValueScanRoundTrip(t *testing.T) {
	// Any JSON shape must survive storage untouched, not just objects.
	docs := []string{
		`{"Monday":["Breakfast","Lunch","Dinner"],"Tuesday":["Soup"]}`,
		`["Breakfast","Lunch"]`,
		`"fasting week"`,
		`42`,
	}

	for _, raw := range docs {
		doc := MealDocument(raw)

		val, err := doc.Value()
		assert.NoError(t, err, "doc=%s", raw)

		var got MealDocument
		assert.NoError(t, got.Scan(val))
		assert.Equal(t, doc, got, "doc=%s", raw)
	}
}

func TestMealDocument_JSONRoundTrip(t *testing.T) {
	for _, raw := range []string{
		`{"Monday":["Oats"]}`,
		`["Breakfast","Lunch"]`,
	} {
		var got MealDocument
		assert.NoError(t, json.Unmarshal([]byte(raw), &got))
		assert.Equal(t, MealDocument(raw), got)

		b, err := json.Marshal(got)
		assert.NoError(t, err)
		assert.Equal(t, raw, string(b))
	}
}

func TestMealDocument_ScanString(t *testing.T) {
	var got MealDocument
	assert.NoError(t, got.Scan(`{"Monday":["Oats"]}`))
	assert.Equal(t, MealDocument(`{"Monday":["Oats"]}`), got)
}

func TestMealDocument_ScanUnsupported(t *testing.T) {
	var got MealDocument
	assert.Error(t, got.Scan(42))
}

func TestMealPlanDB_ToAPI(t *testing.T) {
	plan := MealPlanDB{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		WeekStart: time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC),
		Meals:     MealDocument(`{"Monday":["Oats"]}`),
		CreatedAt: time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC),
	}

	api := plan.ToAPI()
	assert.Equal(t, plan.ID.String(), api.ID)
	assert.Equal(t, plan.UserID.String(), api.UserID)
	assert.Equal(t, "2025-02-10", api.WeekStart)
	assert.Equal(t, "2025-02-01 10:30:00", api.CreatedAt)
	assert.Nil(t, api.UpdatedAt)

	// updatedAt serializes as null until the first update
	b, err := json.Marshal(api)
	assert.NoError(t, err)
	assert.Contains(t, string(b), `"updatedAt":null`)

	plan.UpdatedAt = sql.NullTime{Time: time.Date(2025, 2, 2, 12, 0, 0, 0, time.UTC), Valid: true}
	api = plan.ToAPI()
	assert.NotNil(t, api.UpdatedAt)
	assert.Equal(t, "2025-02-02 12:00:00", *api.UpdatedAt)
}

func TestUserDB_ToAPI_OmitsPasswordHash(t *testing.T) {
	user := UserDB{
		ID:           uuid.New(),
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "bcrypt-hash",
		CreatedAt:    time.Date(2025, 2, 1, 10, 30, 0, 0, time.UTC),
	}

	api := user.ToAPI()
	assert.Equal(t, user.ID.String(), api.ID)
	assert.Equal(t, "2025-02-01 10:30:00", api.CreatedAt)

	b, err := json.Marshal(api)
	assert.NoError(t, err)
	assert.NotContains(t, string(b), "bcrypt-hash")
	assert.NotContains(t, string(b), "password")
}

package models

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Wire formats for dates and timestamps.
const (
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02 15:04:05"
)

// MealDocument is the schemaless meals payload of a plan, held as raw
// JSON. Any valid JSON value the client sends, object, array or scalar,
// is stored and returned verbatim.
type MealDocument []byte

// MarshalJSON writes the document bytes unchanged.
func (m MealDocument) MarshalJSON() ([]byte, error) {
	if len(m) == 0 {
		return []byte("null"), nil
	}
	return m, nil
}

// UnmarshalJSON keeps the raw JSON value as-is; the outer decoder has
// already checked it for syntax.
func (m *MealDocument) UnmarshalJSON(data []byte) error {
	if m == nil {
		return errors.New("MealDocument: UnmarshalJSON on nil pointer")
	}
	*m = append((*m)[0:0], data...)
	return nil
}

// Value passes the document through for storage in a JSONB column.
func (m MealDocument) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return []byte(m), nil
}

// Scan copies a JSONB column value into the document.
func (m *MealDocument) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		*m = append((*m)[0:0], v...)
		return nil
	case string:
		*m = MealDocument(v)
		return nil
	case nil:
		*m = nil
		return nil
	default:
		return errors.New("unsupported meals column type")
	}
}

// MealPlanDB represents a meal plan row in the database
type MealPlanDB struct {
	ID        uuid.UUID    `db:"id"`         // Primary key
	UserID    uuid.UUID    `db:"user_id"`    // Owning user
	WeekStart time.Time    `db:"week_start"` // First day of the planned week
	Meals     MealDocument `db:"meals"`      // Schemaless meals document
	CreatedAt time.Time    `db:"created_at"` // Creation timestamp
	UpdatedAt sql.NullTime `db:"updated_at"` // Set on first update, null before
}

// MealPlan is the API representation of a meal plan.
type MealPlan struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId"`
	WeekStart string       `json:"weekStart"`
	Meals     MealDocument `json:"meals"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt *string      `json:"updatedAt"`
}

// ToAPI converts a database row to its API representation.
func (p *MealPlanDB) ToAPI() *MealPlan {
	mp := &MealPlan{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		WeekStart: p.WeekStart.Format(DateFormat),
		Meals:     p.Meals,
		CreatedAt: p.CreatedAt.Format(TimestampFormat),
	}
	if p.UpdatedAt.Valid {
		s := p.UpdatedAt.Time.Format(TimestampFormat)
		mp.UpdatedAt = &s
	}
	return mp
}

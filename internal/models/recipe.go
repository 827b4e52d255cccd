package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into JSONBStringArray", value)
	}

	return json.Unmarshal(bytes, a)
}

// SavedRecipe is one row of a user's recipe history. Nutrient values are
// stored as the display strings the model produced ("350 kcal", "20g"); no
// numeric interpretation is attached to them.
type SavedRecipe struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt     time.Time        `json:"created_at"`
	Name          string           `gorm:"size:255;not null" json:"name"`
	Ingredients   JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	MatchQuality  float64          `gorm:"type:float;not null" json:"match_quality"`
	Calories      string           `gorm:"size:50" json:"calories"`
	Protein       string           `gorm:"size:50" json:"protein"`
	Fat           string           `gorm:"size:50" json:"fat"`
	Carbohydrates string           `gorm:"size:50" json:"carbohydrates"`
	UserID        uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	UserEmail     string           `gorm:"size:255" json:"user_email,omitempty"`
	Embedding     pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

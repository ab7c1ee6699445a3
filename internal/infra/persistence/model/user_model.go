package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name     string    `gorm:"type:varchar(100);not null"`
	Role     string    `gorm:"type:varchar(30);not null;index"`
	IsActive bool      `gorm:"not null;default:true"`

	// Rating is the donor-side average rating (0-5), zero when unrated.
	Rating float64 `gorm:"type:decimal(3,2);not null;default:0"`

	// Receiver location; (0,0) means unknown.
	Longitude float64 `gorm:"type:decimal(11,8);not null;default:0"`
	Latitude  float64 `gorm:"type:decimal(10,8);not null;default:0"`

	Preferences PreferencesColumn `gorm:"type:jsonb"`

	// Rolling matching statistics, mutated only by the statistics tracker.
	TotalMatches      int `gorm:"not null;default:0"`
	SuccessfulClaims  int `gorm:"not null;default:0"`
	LastMatchedAt     *time.Time
	AverageMatchScore int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// PreferencesColumn is the JSONB representation of a receiver's matching
// preferences.
type PreferencesColumn struct {
	DietaryPreferences   []string `json:"dietary_preferences"`
	PreferredCategories  []string `json:"preferred_categories"`
	MaxDistanceKm        float64  `json:"max_distance_km"`
	PreferredPickupTimes []string `json:"preferred_pickup_times"`
	MinServings          int      `json:"min_servings"`
	MaxServings          int      `json:"max_servings"`
	NotifyOnMatch        bool     `json:"notify_on_match"`
	AutoMatchEnabled     bool     `json:"auto_match_enabled"`
}

// Value implements driver.Valuer for JSONB storage.
func (p PreferencesColumn) Value() (driver.Value, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal preferences")
	}

	return raw, nil
}

// Scan implements sql.Scanner for JSONB retrieval.
func (p *PreferencesColumn) Scan(value any) error {
	if value == nil {
		*p = PreferencesColumn{}

		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.Errorf("unsupported preferences column type %T", value)
	}

	if err := json.Unmarshal(raw, p); err != nil {
		return errors.Wrap(err, "failed to unmarshal preferences")
	}

	return nil
}

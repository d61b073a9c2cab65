package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Theme is the single per-tenant style record. Every property is stored as a
// string; the editor's typing comes from the schema package, not the values.
type Theme struct {
	TenantID  snowflake.ID      `gorm:"primaryKey;column:tenant_id"`
	Styles    datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Theme) TableName() string { return "themes" }

// Record is a full set of style properties keyed by name.
type Record map[string]string

// Defaults returns a fresh copy of the built-in theme. Persisted records are
// merged over this so newly added keys degrade gracefully on old tenants.
func Defaults() Record {
	return Record{
		"background":          "#ffffff",
		"contentBackground":   "#ffffff",
		"primaryColor":        "#1e40af",
		"secondaryColor":      "#9333ea",
		"fontColor":           "#000000",
		"fontFamily":          "Inter",
		"fontSizeHeading":     "24px",
		"fontSizeDescription": "16px",
		"fontSizeButton":      "14px",
		"borderRadius":        "8px",
		"borderColor":         "#cccccc",
		"borderWidth":         "1px",
		"padding":             "16px",
		"margin":              "10px",
		"boxShadow":           "0 4px 8px rgba(0,0,0,0.2)",
		"opacity":             "1",
		"fontWeight":          "400",
	}
}

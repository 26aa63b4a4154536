package models

import (
	"time"

	"github.com/google/uuid"
)

// Brand is a deduplicated label name. Rows are created on first reference and
// never mutated afterwards; the unique index on name is what makes the upsert
// safe under concurrent submissions.
type Brand struct {
	BaseModel
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Items []Item `json:"items,omitempty"`
}

// Item is a catalog entry scoped to one brand. The (brand_id, name) pair is
// unique; category is free text and may be rewritten by later upserts.
type Item struct {
	BaseModel
	BrandID  uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_items_brand_name;not null" json:"brand_id"`
	Brand    *Brand    `json:"brand,omitempty"`
	Name     string    `gorm:"uniqueIndex:idx_items_brand_name;not null" json:"name"`
	Category *string   `json:"category"`
}

// Candidate is the denormalized brand+item projection served to the search
// and picker endpoints. It is a query result, never a table.
type Candidate struct {
	ID        uuid.UUID `json:"id"`
	BrandName string    `json:"brand_name"`
	ItemName  string    `json:"item_name"`
	Category  *string   `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

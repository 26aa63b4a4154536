package models

import "github.com/google/uuid"

// Outfit is one dated log entry. ShareID is the public lookup token; it is
// assigned at creation and immutable, and the unique index on it is what the
// composer's collision retry leans on.
type Outfit struct {
	BaseModel
	Date      string       `gorm:"not null" json:"date"`
	Memo      *string      `json:"memo"`
	Tags      *string      `json:"tags"`
	ImageURL  *string      `json:"image_url"`
	PublicFlg bool         `json:"public_flg"`
	ShareID   string       `gorm:"uniqueIndex;not null" json:"share_id"`
	Items     []OutfitItem `json:"items,omitempty"`
}

// OutfitItem links an outfit to a catalog item. Position records the order
// the items were submitted in, so the share view lists them stably.
type OutfitItem struct {
	BaseModel
	OutfitID uuid.UUID `gorm:"type:uuid;index;not null" json:"outfit_id"`
	ItemID   uuid.UUID `gorm:"type:uuid;not null" json:"item_id"`
	Position int       `gorm:"not null" json:"position"`
}

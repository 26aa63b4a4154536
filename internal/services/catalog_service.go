package services

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/wearlog/internal/models"
)

// CatalogService manages the shared brand/item catalog.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService constructs CatalogService.
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// UpsertBrand inserts a brand by name or returns the existing row unchanged.
// Uniqueness is enforced by the database, not a prior existence check, so
// concurrent calls with the same name converge on one row.
func (s *CatalogService) UpsertBrand(name string) (*models.Brand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "brand"}
	}

	brand := models.Brand{Name: name}
	err := s.db.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"name": name}),
		},
		clause.Returning{},
	).Create(&brand).Error
	if err != nil {
		return nil, err
	}

	return &brand, nil
}

// UpsertItem inserts an item keyed on (brand_id, name) or returns the
// existing row. Category follows the latest caller; brand and name are
// immutable once created.
func (s *CatalogService) UpsertItem(brandID uuid.UUID, name string, category *string) (*models.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	item := models.Item{BrandID: brandID, Name: name, Category: category}
	err := s.db.Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "brand_id"}, {Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"category": category}),
		},
		clause.Returning{},
	).Create(&item).Error
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// Search returns catalog candidates newest-first, capped at limit. An empty
// query is the "recent items" feed; otherwise the query must appear as a
// case-insensitive substring of the brand or item name.
func (s *CatalogService) Search(query string, limit int) ([]models.Candidate, error) {
	q := s.db.Table("items").
		Select("items.id, brands.name AS brand_name, items.name AS item_name, items.category, items.created_at").
		Joins("JOIN brands ON brands.id = items.brand_id").
		Order("items.created_at DESC").
		Limit(limit)

	if query = strings.TrimSpace(query); query != "" {
		like := "%" + query + "%"
		q = q.Where("brands.name ILIKE ? OR items.name ILIKE ?", like, like)
	}

	candidates := make([]models.Candidate, 0)
	if err := q.Scan(&candidates).Error; err != nil {
		return nil, err
	}

	return candidates, nil
}

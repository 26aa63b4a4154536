package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/example/wearlog/internal/models"
	"github.com/example/wearlog/internal/utils"
)

// OutfitDraft carries a submitted outfit before persistence. ItemIDs must
// reference existing catalog items.
type OutfitDraft struct {
	Date      string
	Memo      *string
	Tags      *string
	ImageURL  *string
	PublicFlg bool
	ItemIDs   []uuid.UUID
}

// PublicOutfitView is the share page payload for a public outfit.
type PublicOutfitView struct {
	Date     string             `json:"date"`
	Memo     *string            `json:"memo"`
	Tags     *string            `json:"tags"`
	ImageURL *string            `json:"image_url"`
	Items    []models.Candidate `json:"items"`
}

// OutfitService composes and resolves outfit records.
type OutfitService struct {
	db              *gorm.DB
	shareIDLength   int
	shareIDAttempts int
}

// NewOutfitService constructs OutfitService. shareIDAttempts bounds how many
// share ids are tried before a collision is treated as fatal.
func NewOutfitService(db *gorm.DB, shareIDLength, shareIDAttempts int) *OutfitService {
	return &OutfitService{
		db:              db,
		shareIDLength:   shareIDLength,
		shareIDAttempts: shareIDAttempts,
	}
}

// Create validates the draft and persists the outfit together with its item
// links. The outfit row and the links commit or roll back as one unit; only a
// share id collision is retried, with a fresh id each attempt.
func (s *OutfitService) Create(draft OutfitDraft) (*models.Outfit, error) {
	draft.Date = strings.TrimSpace(draft.Date)
	if draft.Date == "" {
		return nil, &ValidationError{Field: "date"}
	}

	var lastErr error
	for attempt := 0; attempt < s.shareIDAttempts; attempt++ {
		outfit, err := s.attemptInsert(draft, utils.NewShareID(s.shareIDLength))
		if err == nil {
			return outfit, nil
		}
		if !isShareIDConflict(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("share id allocation failed after %d attempts: %w", s.shareIDAttempts, lastErr)
}

func (s *OutfitService) attemptInsert(draft OutfitDraft, shareID string) (*models.Outfit, error) {
	outfit := models.Outfit{
		Date:      draft.Date,
		Memo:      draft.Memo,
		Tags:      draft.Tags,
		ImageURL:  draft.ImageURL,
		PublicFlg: draft.PublicFlg,
		ShareID:   shareID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&outfit).Error; err != nil {
			return err
		}

		if len(draft.ItemIDs) == 0 {
			return nil
		}

		links := make([]models.OutfitItem, 0, len(draft.ItemIDs))
		for i, itemID := range draft.ItemIDs {
			links = append(links, models.OutfitItem{
				OutfitID: outfit.ID,
				ItemID:   itemID,
				Position: i,
			})
		}

		return tx.Create(&links).Error
	})
	if err != nil {
		return nil, err
	}

	return &outfit, nil
}

// isShareIDConflict reports whether err is a unique violation on the share_id
// column, as opposed to any other persistence failure.
func isShareIDConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "share_id")
	}
	return strings.Contains(err.Error(), "duplicate key value") && strings.Contains(err.Error(), "share_id")
}

// GetByShareID resolves a share id to the public view. A missing outfit
// returns ErrOutfitNotFound; a private one returns ErrOutfitPrivate without
// loading its items.
func (s *OutfitService) GetByShareID(shareID string) (*PublicOutfitView, error) {
	var outfit models.Outfit
	if err := s.db.First(&outfit, "share_id = ?", shareID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOutfitNotFound
		}
		return nil, err
	}

	if !outfit.PublicFlg {
		return nil, ErrOutfitPrivate
	}

	items := make([]models.Candidate, 0)
	err := s.db.Table("outfit_items").
		Select("outfit_items.item_id AS id, brands.name AS brand_name, items.name AS item_name, items.category, items.created_at").
		Joins("JOIN items ON items.id = outfit_items.item_id").
		Joins("JOIN brands ON brands.id = items.brand_id").
		Where("outfit_items.outfit_id = ?", outfit.ID).
		Order("outfit_items.position ASC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return &PublicOutfitView{
		Date:     outfit.Date,
		Memo:     outfit.Memo,
		Tags:     outfit.Tags,
		ImageURL: outfit.ImageURL,
		Items:    items,
	}, nil
}

// ListRecent returns outfits newest-first for the home feed.
func (s *OutfitService) ListRecent(limit, offset int) ([]models.Outfit, int64, error) {
	var total int64
	if err := s.db.Model(&models.Outfit{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var outfits []models.Outfit
	if err := s.db.Limit(limit).Offset(offset).Order("created_at desc").
		Find(&outfits).Error; err != nil {
		return nil, 0, err
	}

	return outfits, total, nil
}

package clothing

import (
	"context"

	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates catalog persistence. The API never writes the
// catalog table; rows arrive through cmd/seed_catalog.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindAllProjected returns every catalog entry in its read projection.
func (r *Repository) FindAllProjected(ctx context.Context) ([]ClothingItemDTO, error) {
	var rows []models.ClothingItem
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	items := make([]ClothingItemDTO, 0, len(rows))
	for i := range rows {
		items = append(items, *FromModel(&rows[i]))
	}
	return items, nil
}

// FindByID loads a single catalog entry.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.ClothingItem, error) {
	var item models.ClothingItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ExistsByID reports whether a catalog entry exists for the given id.
func (r *Repository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ClothingItem{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

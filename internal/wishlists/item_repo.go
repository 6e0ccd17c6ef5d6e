package wishlists

import (
	"context"

	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	"gorm.io/gorm"
)

// ItemRepository encapsulates wishlist item persistence.
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository constructs an item repository bound to the provided GORM DB.
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// FindByID loads a single join row.
func (r *ItemRepository) FindByID(ctx context.Context, id uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWishlistID returns every item in the wishlist.
func (r *ItemRepository) FindByWishlistID(ctx context.Context, wishlistID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.WithContext(ctx).
		Where("wishlist_id = ?", wishlistID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts the join row. The unique (wishlist, clothing item)
// constraint surfaces duplicates as a database error.
func (r *ItemRepository) Create(ctx context.Context, item *models.WishlistItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Delete removes the join row.
func (r *ItemRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.WishlistItem{}, "id = ?", id).Error
}

package wishlists

import (
	"context"

	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByID loads a single wishlist.
func (r *Repository) FindByID(ctx context.Context, id uint) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	if err := r.db.WithContext(ctx).First(&wishlist, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// FindByUserID returns every wishlist owned by the user.
func (r *Repository) FindByUserID(ctx context.Context, userID uint) ([]models.Wishlist, error) {
	var wishlists []models.Wishlist
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&wishlists).Error; err != nil {
		return nil, err
	}
	return wishlists, nil
}

// Save inserts when the wishlist has no id yet, otherwise replaces every
// mapped column.
func (r *Repository) Save(ctx context.Context, wishlist *models.Wishlist) error {
	if wishlist.ID == 0 {
		return r.db.WithContext(ctx).Create(wishlist).Error
	}
	return r.db.WithContext(ctx).Save(wishlist).Error
}

// Delete removes the wishlist row and its items.
func (r *Repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.WishlistItem{}, "wishlist_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.Wishlist{}, "id = ?", id).Error
}

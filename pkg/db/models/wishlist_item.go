package models

import "time"

// WishlistItem joins a wishlist to a catalog entry. A given pair may appear at
// most once; the store enforces that, not the handlers.
type WishlistItem struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement"`
	WishlistID     uint      `gorm:"column:wishlist_id;not null;index:wishlist_items_wishlist_id_idx;uniqueIndex:wishlist_items_wishlist_clothing_key"`
	ClothingItemID uint      `gorm:"column:clothing_item_id;not null;uniqueIndex:wishlist_items_wishlist_clothing_key"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
}

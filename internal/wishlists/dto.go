package wishlists

import (
	"github.com/kmorales-dev/closetwish-backend/internal/users"
	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
)

// WishlistDTO is the wishlist read projection; the owner rides along so
// clients never need a second lookup.
type WishlistDTO struct {
	ID   uint          `json:"id"`
	Name string        `json:"name"`
	User users.UserDTO `json:"user"`
}

// WishlistItemDTO is the flat join-row projection.
type WishlistItemDTO struct {
	ID             uint `json:"id"`
	WishlistID     uint `json:"wishlistId"`
	ClothingItemID uint `json:"clothingItemId"`
}

// UpsertWishlistRequest carries the client-settable wishlist fields. Any id
// or owner supplied by the client is ignored.
type UpsertWishlistRequest struct {
	Name string `json:"name"`
}

// CreateItemRequest references the catalog entry to add.
type CreateItemRequest struct {
	ClothingItemID uint `json:"clothingItemId"`
}

func wishlistToDTO(w *models.Wishlist, owner *models.User) *WishlistDTO {
	if w == nil {
		return nil
	}
	dto := &WishlistDTO{
		ID:   w.ID,
		Name: w.Name,
	}
	if owner != nil {
		dto.User = *users.FromModel(owner)
	}
	return dto
}

func itemToDTO(item *models.WishlistItem) *WishlistItemDTO {
	if item == nil {
		return nil
	}
	return &WishlistItemDTO{
		ID:             item.ID,
		WishlistID:     item.WishlistID,
		ClothingItemID: item.ClothingItemID,
	}
}

package wishlists

import (
	"context"
	"errors"

	"github.com/kmorales-dev/closetwish-backend/internal/clothing"
	"github.com/kmorales-dev/closetwish-backend/internal/ownership"
	"github.com/kmorales-dev/closetwish-backend/internal/users"
	"github.com/kmorales-dev/closetwish-backend/pkg/db"
	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"gorm.io/gorm"
)

const (
	userNotFoundMessage     = "User not found"
	wishlistNotFoundMessage = "wishlist not found"
	itemNotFoundMessage     = "wishlist item not found"
)

// Service exposes business rules for wishlists and their items. Every
// operation is scoped to the user named in the request path; a resource
// owned by anyone else reads as absent.
type Service interface {
	List(ctx context.Context, userID uint) ([]WishlistDTO, error)
	Get(ctx context.Context, userID, wishlistID uint) (*WishlistDTO, error)
	Create(ctx context.Context, userID uint, req UpsertWishlistRequest) (*WishlistDTO, error)
	Update(ctx context.Context, userID, wishlistID uint, req UpsertWishlistRequest) (*WishlistDTO, error)
	Delete(ctx context.Context, userID, wishlistID uint) error

	ListItems(ctx context.Context, userID, wishlistID uint) ([]WishlistItemDTO, error)
	GetItem(ctx context.Context, userID, wishlistID, itemID uint) (*WishlistItemDTO, error)
	CreateItem(ctx context.Context, userID, wishlistID uint, req CreateItemRequest) (*WishlistItemDTO, error)
	DeleteItem(ctx context.Context, userID, wishlistID, itemID uint) error
}

type service struct {
	db           *db.Client
	wishlistRepo *Repository
	itemRepo     *ItemRepository
	userRepo     *users.Repository
	clothingRepo *clothing.Repository
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	DB           *db.Client
	WishlistRepo *Repository
	ItemRepo     *ItemRepository
	UserRepo     *users.Repository
	ClothingRepo *clothing.Repository
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	if params.WishlistRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "wishlist repo required")
	}
	if params.ItemRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "item repo required")
	}
	if params.UserRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "user repo required")
	}
	if params.ClothingRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "clothing repo required")
	}
	return &service{
		db:           params.DB,
		wishlistRepo: params.WishlistRepo,
		itemRepo:     params.ItemRepo,
		userRepo:     params.UserRepo,
		clothingRepo: params.ClothingRepo,
	}, nil
}

// List returns every wishlist the user owns.
func (s *service) List(ctx context.Context, userID uint) ([]WishlistDTO, error) {
	owner, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	rows, err := s.wishlistRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list wishlists")
	}
	dtos := make([]WishlistDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *wishlistToDTO(&rows[i], owner))
	}
	return dtos, nil
}

// Get returns the wishlist when it exists and the user owns it.
func (s *service) Get(ctx context.Context, userID, wishlistID uint) (*WishlistDTO, error) {
	wishlist, err := s.resolveOwnedWishlist(ctx, userID, wishlistID)
	if err != nil {
		return nil, err
	}
	owner, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return wishlistToDTO(wishlist, owner), nil
}

// Create stores a new wishlist owned by the path user. Client-supplied ids
// are never honored.
func (s *service) Create(ctx context.Context, userID uint, req UpsertWishlistRequest) (*WishlistDTO, error) {
	owner, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	wishlist := &models.Wishlist{
		UserID: userID,
		Name:   req.Name,
	}
	if err := s.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save wishlist")
	}
	return wishlistToDTO(wishlist, owner), nil
}

// Update replaces the wishlist's fields while pinning id and owner.
func (s *service) Update(ctx context.Context, userID, wishlistID uint, req UpsertWishlistRequest) (*WishlistDTO, error) {
	wishlist, err := s.resolveOwnedWishlist(ctx, userID, wishlistID)
	if err != nil {
		return nil, err
	}
	wishlist.Name = req.Name
	if err := s.wishlistRepo.Save(ctx, wishlist); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save wishlist")
	}
	owner, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return wishlistToDTO(wishlist, owner), nil
}

// Delete removes the wishlist and its items when the user owns it.
func (s *service) Delete(ctx context.Context, userID, wishlistID uint) error {
	if _, err := s.resolveOwnedWishlist(ctx, userID, wishlistID); err != nil {
		return err
	}
	if err := s.wishlistRepo.Delete(ctx, wishlistID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete wishlist")
	}
	return nil
}

// ListItems returns the wishlist's items when the user owns the wishlist.
func (s *service) ListItems(ctx context.Context, userID, wishlistID uint) ([]WishlistItemDTO, error) {
	if _, err := s.resolveOwnedWishlist(ctx, userID, wishlistID); err != nil {
		return nil, err
	}
	rows, err := s.itemRepo.FindByWishlistID(ctx, wishlistID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list wishlist items")
	}
	dtos := make([]WishlistItemDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, *itemToDTO(&rows[i]))
	}
	return dtos, nil
}

// GetItem returns the item when the full ownership chain matches.
func (s *service) GetItem(ctx context.Context, userID, wishlistID, itemID uint) (*WishlistItemDTO, error) {
	item, err := s.resolveOwnedItem(ctx, userID, wishlistID, itemID)
	if err != nil {
		return nil, err
	}
	return itemToDTO(item), nil
}

// CreateItem adds a catalog entry to an owned wishlist. An unresolvable
// catalog id is a validation failure, not a missing resource.
func (s *service) CreateItem(ctx context.Context, userID, wishlistID uint, req CreateItemRequest) (*WishlistItemDTO, error) {
	if _, err := s.resolveOwnedWishlist(ctx, userID, wishlistID); err != nil {
		return nil, err
	}

	exists, err := s.clothingRepo.ExistsByID(ctx, req.ClothingItemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load clothing item")
	}
	if !exists {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "clothing item not found")
	}

	item := &models.WishlistItem{
		WishlistID:     wishlistID,
		ClothingItemID: req.ClothingItemID,
	}
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		return NewItemRepository(tx).Create(ctx, item)
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "clothing item already in wishlist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save wishlist item")
	}
	return itemToDTO(item), nil
}

// DeleteItem removes the item when the full ownership chain matches.
func (s *service) DeleteItem(ctx context.Context, userID, wishlistID, itemID uint) error {
	if _, err := s.resolveOwnedItem(ctx, userID, wishlistID, itemID); err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete wishlist item")
	}
	return nil
}

func (s *service) loadUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, userNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}
	return user, nil
}

func (s *service) resolveOwnedWishlist(ctx context.Context, userID, wishlistID uint) (*models.Wishlist, error) {
	wishlist, err := s.wishlistRepo.FindByID(ctx, wishlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, wishlistNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist")
	}
	if ownership.ByUser(wishlist.UserID, userID) != ownership.Found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, wishlistNotFoundMessage)
	}
	return wishlist, nil
}

func (s *service) resolveOwnedItem(ctx context.Context, userID, wishlistID, itemID uint) (*models.WishlistItem, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist item")
	}
	wishlist, err := s.wishlistRepo.FindByID(ctx, item.WishlistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist")
	}
	if ownership.ByWishlistChain(item.WishlistID, wishlistID, wishlist.UserID, userID) != ownership.Found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, itemNotFoundMessage)
	}
	return item, nil
}

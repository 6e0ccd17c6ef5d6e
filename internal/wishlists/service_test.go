package wishlists

import (
	"context"
	"testing"

	"github.com/kmorales-dev/closetwish-backend/internal/clothing"
	"github.com/kmorales-dev/closetwish-backend/internal/users"
	"github.com/kmorales-dev/closetwish-backend/pkg/db"
	"github.com/kmorales-dev/closetwish-backend/pkg/db/models"
	pkgerrors "github.com/kmorales-dev/closetwish-backend/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestClient(t *testing.T) *db.Client {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := conn.AutoMigrate(
		&models.User{},
		&models.ClothingItem{},
		&models.Wishlist{},
		&models.WishlistItem{},
	); err != nil {
		t.Fatalf("failed to migrate sqlite: %v", err)
	}
	return db.NewWithConn(conn)
}

func newTestService(t *testing.T, client *db.Client) Service {
	t.Helper()
	conn := client.DB()
	svc, err := NewService(ServiceParams{
		DB:           client,
		WishlistRepo: NewRepository(conn),
		ItemRepo:     NewItemRepository(conn),
		UserRepo:     users.NewRepository(conn),
		ClothingRepo: clothing.NewRepository(conn),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func mustCreateUser(t *testing.T, client *db.Client, email string) *models.User {
	t.Helper()
	user, err := users.NewRepository(client.DB()).Create(context.Background(), users.CreateUserDTO{
		Email:        email,
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateClothingItem(t *testing.T, client *db.Client) *models.ClothingItem {
	t.Helper()
	item := &models.ClothingItem{
		Name:           "Linen Shirt",
		Color:          "white",
		TypeOfClothing: "shirt",
	}
	if err := client.DB().Create(item).Error; err != nil {
		t.Fatalf("create clothing item: %v", err)
	}
	return item
}

func assertCode(t *testing.T, err error, code pkgerrors.Code) {
	t.Helper()
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != code {
		t.Fatalf("expected %s error, got %v", code, err)
	}
}

func TestCreateAndListWishlists(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()
	user := mustCreateUser(t, client, "owner@example.com")

	created, err := svc.Create(ctx, user.ID, UpsertWishlistRequest{Name: "Summer"})
	if err != nil {
		t.Fatalf("create wishlist: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected an assigned id")
	}
	if created.User.ID != user.ID || created.User.Email != user.Email {
		t.Fatalf("expected owner %d/%s, got %+v", user.ID, user.Email, created.User)
	}

	listed, err := svc.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("list wishlists: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Summer" {
		t.Fatalf("unexpected listing: %+v", listed)
	}
}

func TestListUnknownUserIsNotFound(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)

	_, err := svc.List(context.Background(), 9999)
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestForeignWishlistReadsAsAbsent(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()
	owner := mustCreateUser(t, client, "a@example.com")
	other := mustCreateUser(t, client, "b@example.com")

	created, err := svc.Create(ctx, owner.ID, UpsertWishlistRequest{Name: "Mine"})
	if err != nil {
		t.Fatalf("create wishlist: %v", err)
	}

	_, err = svc.Get(ctx, other.ID, created.ID)
	assertCode(t, err, pkgerrors.CodeNotFound)

	_, err = svc.CreateItem(ctx, other.ID, created.ID, CreateItemRequest{ClothingItemID: 1})
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestUpdateKeepsOwner(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()
	user := mustCreateUser(t, client, "owner@example.com")

	created, err := svc.Create(ctx, user.ID, UpsertWishlistRequest{Name: "Old"})
	if err != nil {
		t.Fatalf("create wishlist: %v", err)
	}

	updated, err := svc.Update(ctx, user.ID, created.ID, UpsertWishlistRequest{Name: "New"})
	if err != nil {
		t.Fatalf("update wishlist: %v", err)
	}
	if updated.ID != created.ID || updated.Name != "New" || updated.User.ID != user.ID {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestDeleteRemovesWishlistAndItems(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()
	user := mustCreateUser(t, client, "owner@example.com")
	garment := mustCreateClothingItem(t, client)

	created, err := svc.Create(ctx, user.ID, UpsertWishlistRequest{Name: "Short lived"})
	if err != nil {
		t.Fatalf("create wishlist: %v", err)
	}
	if _, err := svc.CreateItem(ctx, user.ID, created.ID, CreateItemRequest{ClothingItemID: garment.ID}); err != nil {
		t.Fatalf("create item: %v", err)
	}

	if err := svc.Delete(ctx, user.ID, created.ID); err != nil {
		t.Fatalf("delete wishlist: %v", err)
	}

	_, err = svc.Get(ctx, user.ID, created.ID)
	assertCode(t, err, pkgerrors.CodeNotFound)

	var count int64
	if err := client.DB().Model(&models.WishlistItem{}).Where("wishlist_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected orphaned items to be removed, got %d", count)
	}
}

func TestCreateItemRejectsUnknownClothing(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()
	user := mustCreateUser(t, client, "owner@example.com")

	created, err := svc.Create(ctx, user.ID, UpsertWishlistRequest{Name: "Picks"})
	if err != nil {
		t.Fatalf("create wishlist: %v", err)
	}

	_, err = svc.CreateItem(ctx, user.ID, created.ID, CreateItemRequest{ClothingItemID: 424242})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestCreateItemRejectsDuplicatePair(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()
	user := mustCreateUser(t, client, "owner@example.com")
	garment := mustCreateClothingItem(t, client)

	created, err := svc.Create(ctx, user.ID, UpsertWishlistRequest{Name: "Picks"})
	if err != nil {
		t.Fatalf("create wishlist: %v", err)
	}

	first, err := svc.CreateItem(ctx, user.ID, created.ID, CreateItemRequest{ClothingItemID: garment.ID})
	if err != nil {
		t.Fatalf("first item: %v", err)
	}
	if first.WishlistID != created.ID || first.ClothingItemID != garment.ID {
		t.Fatalf("unexpected projection: %+v", first)
	}

	_, err = svc.CreateItem(ctx, user.ID, created.ID, CreateItemRequest{ClothingItemID: garment.ID})
	assertCode(t, err, pkgerrors.CodeConflict)

	var count int64
	if err := client.DB().Model(&models.WishlistItem{}).Where("wishlist_id = ?", created.ID).Count(&count).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one row for the pair, got %d", count)
	}
}

func TestItemOwnershipChain(t *testing.T) {
	client := newTestClient(t)
	svc := newTestService(t, client)
	ctx := context.Background()
	owner := mustCreateUser(t, client, "a@example.com")
	other := mustCreateUser(t, client, "b@example.com")
	garment := mustCreateClothingItem(t, client)

	mine, err := svc.Create(ctx, owner.ID, UpsertWishlistRequest{Name: "Mine"})
	if err != nil {
		t.Fatalf("create wishlist: %v", err)
	}
	item, err := svc.CreateItem(ctx, owner.ID, mine.ID, CreateItemRequest{ClothingItemID: garment.ID})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	if _, err := svc.GetItem(ctx, owner.ID, mine.ID, item.ID); err != nil {
		t.Fatalf("owner lookup should succeed: %v", err)
	}

	_, err = svc.GetItem(ctx, other.ID, mine.ID, item.ID)
	assertCode(t, err, pkgerrors.CodeNotFound)

	theirs, err := svc.Create(ctx, other.ID, UpsertWishlistRequest{Name: "Theirs"})
	if err != nil {
		t.Fatalf("create second wishlist: %v", err)
	}
	_, err = svc.GetItem(ctx, other.ID, theirs.ID, item.ID)
	assertCode(t, err, pkgerrors.CodeNotFound)

	err = svc.DeleteItem(ctx, other.ID, mine.ID, item.ID)
	assertCode(t, err, pkgerrors.CodeNotFound)

	if err := svc.DeleteItem(ctx, owner.ID, mine.ID, item.ID); err != nil {
		t.Fatalf("owner delete should succeed: %v", err)
	}
}

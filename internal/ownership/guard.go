// Package ownership centralizes the "mine or missing" checks shared by the
// wishlist handlers. A resource owned by someone else is reported exactly
// like a resource that does not exist.
package ownership

// Result tags the outcome of an ownership check.
type Result int

const (
	// NotFound covers both genuine absence and foreign ownership.
	NotFound Result = iota
	// Found means the full ownership chain matched.
	Found
)

// ByUser confirms the resource's owner matches the user named in the path.
func ByUser(ownerID, pathUserID uint) Result {
	if ownerID != 0 && ownerID == pathUserID {
		return Found
	}
	return NotFound
}

// ByWishlistChain confirms an item belongs to the path wishlist and that the
// wishlist belongs to the path user.
func ByWishlistChain(itemWishlistID, pathWishlistID, wishlistOwnerID, pathUserID uint) Result {
	if itemWishlistID == 0 || itemWishlistID != pathWishlistID {
		return NotFound
	}
	return ByUser(wishlistOwnerID, pathUserID)
}

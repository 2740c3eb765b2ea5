package models

// CartLine is a denormalized product snapshot embedded in the user document.
// A line is identified by (ProductID, Size); catalog edits never touch it.
type CartLine struct {
	ProductID   string   `bson:"_id" json:"_id"`
	Name        string   `bson:"name" json:"name"`
	Image       []string `bson:"image" json:"image"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Quantity    int      `bson:"quantity" json:"quantity"`
	Size        string   `bson:"size" json:"size"`
	Category    string   `bson:"category" json:"category"`
	SubCategory string   `bson:"subCategory" json:"subCategory"`
	Stock       int      `bson:"stock" json:"stock"`
}

// FavoriteItem is a product snapshot in the favorites list, identified by
// ProductID. Only entries with Favorite=true survive a toggle.
type FavoriteItem struct {
	ProductID   string   `bson:"_id" json:"_id"`
	Name        string   `bson:"name" json:"name"`
	Image       []string `bson:"image" json:"image"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Category    string   `bson:"category" json:"category"`
	SubCategory string   `bson:"subCategory" json:"subCategory"`
	Favorite    bool     `bson:"favorite" json:"favorite"`
	Stock       int      `bson:"stock" json:"stock"`
}

func (u *User) cartIndex(productID, size string) int {
	for i, line := range u.Cart {
		if line.ProductID == productID && line.Size == size {
			return i
		}
	}
	return -1
}

func (u *User) favoriteIndex(productID string) int {
	for i, item := range u.Favorites {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// UpsertCartLine sets the quantity of the (ProductID, Size) line to
// line.Quantity, inserting the line when absent. Quantity 0 removes the
// line; removing an absent line is a no-op, not an error.
func (u *User) UpsertCartLine(line CartLine) {
	idx := u.cartIndex(line.ProductID, line.Size)
	if line.Quantity == 0 {
		if idx >= 0 {
			u.Cart = append(u.Cart[:idx], u.Cart[idx+1:]...)
		}
		return
	}
	if idx < 0 {
		if line.Image == nil {
			line.Image = []string{}
		}
		u.Cart = append(u.Cart, line)
		return
	}
	u.Cart[idx].Quantity = line.Quantity
}

// AddCartLine increments the quantity of an existing (ProductID, Size) line
// by one, or inserts the line with quantity 1. Returns true when an existing
// line was incremented. Note the contrast with UpsertCartLine, which
// replaces the quantity outright.
func (u *User) AddCartLine(line CartLine) bool {
	if idx := u.cartIndex(line.ProductID, line.Size); idx >= 0 {
		u.Cart[idx].Quantity++
		return true
	}
	line.Quantity = 1
	if line.Image == nil {
		line.Image = []string{}
	}
	u.Cart = append(u.Cart, line)
	return false
}

// RemoveCartLine removes the first line matching productID regardless of
// size. Returns false when no line matched.
func (u *User) RemoveCartLine(productID string) bool {
	for i, line := range u.Cart {
		if line.ProductID == productID {
			u.Cart = append(u.Cart[:i], u.Cart[i+1:]...)
			return true
		}
	}
	return false
}

// AddFavorites appends the given items, dropping any whose ProductID is
// already present. Existing entries win; duplicates inside the incoming
// list collapse to the first occurrence.
func (u *User) AddFavorites(items []FavoriteItem) {
	for _, item := range items {
		if u.favoriteIndex(item.ProductID) >= 0 {
			continue
		}
		if item.Image == nil {
			item.Image = []string{}
		}
		u.Favorites = append(u.Favorites, item)
	}
}

// ToggleFavorite flips the flag on an existing entry or appends the item
// with Favorite=true, then prunes every non-favorited entry. Toggling an
// existing favorite off therefore deletes it.
func (u *User) ToggleFavorite(item FavoriteItem) {
	if idx := u.favoriteIndex(item.ProductID); idx >= 0 {
		u.Favorites[idx].Favorite = !u.Favorites[idx].Favorite
	} else {
		item.Favorite = true
		if item.Image == nil {
			item.Image = []string{}
		}
		u.Favorites = append(u.Favorites, item)
	}

	kept := make([]FavoriteItem, 0, len(u.Favorites))
	for _, f := range u.Favorites {
		if f.Favorite {
			kept = append(kept, f)
		}
	}
	u.Favorites = kept
}

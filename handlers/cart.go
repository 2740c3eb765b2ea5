package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/voguevault/voguevault-backend-go/apperr"
	"github.com/voguevault/voguevault-backend-go/database"
	"github.com/voguevault/voguevault-backend-go/metrics"
	"github.com/voguevault/voguevault-backend-go/middleware"
	"github.com/voguevault/voguevault-backend-go/models"
)

type UpdateCartRequest struct {
	ProductID string `json:"_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,min=0"`
	Size      string `json:"size" validate:"required"`
}

type AddToCartRequest struct {
	ProductID   string   `json:"_id" validate:"required"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       []string `json:"image"`
	Description string   `json:"description"`
	Size        string   `json:"size" validate:"required"`
	Stock       int      `json:"stock"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
}

// currentUser loads the user document for the bearer identity set by the
// auth middleware.
func currentUser(ctx context.Context, c echo.Context) (*models.User, error) {
	username, _ := c.Get(middleware.UsernameKey).(string)
	return findUserByUsername(ctx, username, "User not found")
}

func saveCart(ctx context.Context, user *models.User) error {
	_, err := database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"cart": user.Cart}},
	)
	if err != nil {
		return apperr.NewUpstream("Failed to update cart", err)
	}
	return nil
}

func saveFavorites(ctx context.Context, user *models.User) error {
	_, err := database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"favorite": user.Favorites}},
	)
	if err != nil {
		return apperr.NewUpstream("Failed to update favorites", err)
	}
	return nil
}

// GetCart returns the user's cart.
func GetCart(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Cart fetched successfully",
		"data":    user.Cart,
	})
}

// UpdateCart sets the quantity of one (product, size) line, taking a fresh
// snapshot from the catalog. Quantity 0 removes the line; removing an
// absent line is a no-op.
func UpdateCart(c echo.Context) error {
	var req UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return apperr.NewValidation("Invalid product ID")
	}

	var product models.Product
	err = database.DB.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NewNotFound("Product not found")
	}
	if err != nil {
		return apperr.NewUpstream("Failed to fetch product", err)
	}

	user.UpsertCartLine(product.CartSnapshot(*req.Quantity, req.Size))
	if err := saveCart(ctx, user); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("update").Inc()

	message := "Cart updated Successfully"
	if *req.Quantity == 0 {
		message = "Item removed Successfully"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": message,
		"data":    user.Cart,
	})
}

// AddToCart increments the (product, size) line by one or inserts it with
// quantity 1. Distinct from UpdateCart, which replaces the quantity.
func AddToCart(c echo.Context) error {
	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.Size = strings.TrimSpace(req.Size)
	if req.ProductID == "" || req.Size == "" {
		return apperr.NewValidation("Invalid product data: ID and size are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	incremented := user.AddCartLine(models.CartLine{
		ProductID:   req.ProductID,
		Name:        req.Name,
		Image:       req.Image,
		Description: req.Description,
		Price:       req.Price,
		Size:        req.Size,
		Category:    req.Category,
		SubCategory: req.SubCategory,
		Stock:       req.Stock,
	})
	if err := saveCart(ctx, user); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("add").Inc()

	message := "Product added to cart"
	if incremented {
		message = "Product quantity increased"
	}
	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": message,
		"data":    user.Cart,
	})
}

// RemoveFromCart deletes the first line matching the product ID, whatever
// its size.
func RemoveFromCart(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	user.RemoveCartLine(c.Param("id"))
	if err := saveCart(ctx, user); err != nil {
		return err
	}
	metrics.CartMutationsTotal.WithLabelValues("remove").Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Product deleted Successfully",
		"data":    user.Cart,
	})
}

// BulkAddFavorites merges a list of candidates into the favorites set.
// Entries already favorited win; incoming duplicates are dropped.
func BulkAddFavorites(c echo.Context) error {
	var items []models.FavoriteItem
	if err := c.Bind(&items); err != nil {
		return apperr.NewValidation("Invalid request body: favorites must be an array")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	user.AddFavorites(items)
	if err := saveFavorites(ctx, user); err != nil {
		return err
	}
	metrics.FavoriteMutationsTotal.WithLabelValues("bulk_add").Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Favorites updated successfully",
		"data":    user.Favorites,
	})
}

// ToggleFavorite flips one item's favorite flag; toggled-off entries are
// pruned from storage in the same operation.
func ToggleFavorite(c echo.Context) error {
	var item models.FavoriteItem
	if err := c.Bind(&item); err != nil {
		return apperr.NewValidation("Invalid request body")
	}
	if item.ProductID == "" {
		return apperr.NewValidation("Invalid request: favorite item must have an _id")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	user.ToggleFavorite(item)
	if err := saveFavorites(ctx, user); err != nil {
		return err
	}
	metrics.FavoriteMutationsTotal.WithLabelValues("toggle").Inc()

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Favorites updated successfully",
		"data":    user.Favorites,
	})
}

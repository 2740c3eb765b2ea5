package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/voguevault/voguevault-backend-go/apperr"
	"github.com/voguevault/voguevault-backend-go/database"
	"github.com/voguevault/voguevault-backend-go/models"
)

// GetProducts lists the full catalog.
func GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	cursor, err := database.DB.Collection("products").Find(ctx, bson.M{})
	if err != nil {
		return apperr.NewUpstream("Failed to fetch products", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return apperr.NewUpstream("Failed to decode products", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":    false,
		"products": products,
	})
}

func GetProduct(c echo.Context) error {
	productID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return apperr.NewValidation("Invalid product ID")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	var product models.Product
	err = database.DB.Collection("products").FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NewNotFound("Product not found")
	}
	if err != nil {
		return apperr.NewUpstream("Failed to fetch product", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Product found",
		"product": product,
	})
}

// SearchProducts does a case-insensitive substring match over name,
// category and subCategory.
func SearchProducts(c echo.Context) error {
	query := c.Param("query")
	if query == "" {
		return apperr.NewValidation("Query parameter is required")
	}

	filter := bson.M{"$or": []bson.M{
		{"name": bson.M{"$regex": query, "$options": "i"}},
		{"category": bson.M{"$regex": query, "$options": "i"}},
		{"subCategory": bson.M{"$regex": query, "$options": "i"}},
	}}
	return findProducts(c, filter)
}

// QueryProducts filters by exact category or subCategory substring, the
// shape the storefront's category pages use.
func QueryProducts(c echo.Context) error {
	query := c.Param("query")
	if query == "" {
		return apperr.NewValidation("Query parameter is required")
	}

	filter := bson.M{"$or": []bson.M{
		{"category": query},
		{"subCategory": bson.M{"$regex": query, "$options": "i"}},
	}}
	return findProducts(c, filter)
}

func findProducts(c echo.Context, filter bson.M) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	cursor, err := database.DB.Collection("products").Find(ctx, filter)
	if err != nil {
		return apperr.NewUpstream("Failed to search products", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return apperr.NewUpstream("Failed to decode products", err)
	}
	if len(products) == 0 {
		return apperr.NewNotFound("Product not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "Data Fetched Successfully",
		"data":    products,
	})
}

// CreateProducts bulk-inserts catalog entries after validating each one.
func CreateProducts(c echo.Context) error {
	var products []models.Product
	if err := c.Bind(&products); err != nil {
		return apperr.NewValidation("Invalid request data")
	}
	if len(products) == 0 {
		return apperr.NewValidation("Invalid request data")
	}

	docs := make([]interface{}, 0, len(products))
	for i := range products {
		p := &products[i]
		if p.Name == "" || p.Description == "" || p.Category == "" || p.SubCategory == "" || p.Price <= 0 {
			return apperr.NewValidation("Invalid product data")
		}
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		if p.Date.IsZero() {
			p.Date = time.Now()
		}
		if p.Image == nil {
			p.Image = []string{}
		}
		if p.Sizes == nil {
			p.Sizes = []string{}
		}
		if p.Reviews == nil {
			p.Reviews = []string{}
		}
		docs = append(docs, *p)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	if _, err := database.DB.Collection("products").InsertMany(ctx, docs); err != nil {
		return apperr.NewUpstream("Failed to create products", err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"error":   false,
		"message": "Products added successfully",
		"data":    products,
	})
}

package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/voguevault/voguevault-backend-go/apperr"
	"github.com/voguevault/voguevault-backend-go/database"
)

type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Age     *int    `json:"age"`
	Address *string `json:"address"`
	Avatar  *string `json:"avatar"`
}

// GetUser returns the authenticated user's profile. Secrets never appear in
// the JSON form of the document.
func GetUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "User Found",
		"data":    user,
	})
}

// UpdateUser patches the profile attributes. Only the explicit profile
// fields are writable; identity, role and credentials are not.
func UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidation("Invalid request body")
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Age != nil {
		set["age"] = *req.Age
	}
	if req.Address != nil {
		set["address"] = *req.Address
	}
	if req.Avatar != nil {
		set["avatar"] = *req.Avatar
	}
	if len(set) == 0 {
		return apperr.NewValidation("No updatable fields provided")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	_, err = database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": set},
	)
	if err != nil {
		return apperr.NewUpstream("Failed to update user", err)
	}

	updated, err := currentUser(ctx, c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "User updated successfully",
		"data":    updated,
	})
}

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
	"github.com/voguevault/voguevault-backend-go/metrics"
	"github.com/voguevault/voguevault-backend-go/models"
	"github.com/voguevault/voguevault-backend-go/utils"
)

const (
	requestTimeout = 10 * time.Second
	otpSendTimeout = 5 * time.Second
)

var otpSender utils.OTPSender

// UseOTPSender installs the notification collaborator. Must be called
// before the auth routes are served.
func UseOTPSender(s utils.OTPSender) {
	otpSender = s
}

type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Mobile          string `json:"mobile" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type VerifyOTPRequest struct {
	Username string `json:"username" validate:"required"`
	OTP      string `json:"otp" validate:"required"`
}

type ResendOTPRequest struct {
	Username string `json:"username" validate:"required"`
}

// findUserByUsername resolves a login name that may be either an email or a
// mobile number.
func findUserByUsername(ctx context.Context, username, notFoundMsg string) (*models.User, error) {
	var user models.User
	err := database.DB.Collection("users").FindOne(ctx, bson.M{
		"$or": []bson.M{{"email": username}, {"mobile": username}},
	}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NewNotFound(notFoundMsg)
	}
	if err != nil {
		return nil, apperr.NewUpstream("Failed to fetch user", err)
	}
	return &user, nil
}

// Signup creates a user in the Unauthenticated state. Duplicates are caught
// both by the pre-query and by the unique index, since a concurrent signup
// can slip past the pre-check.
func Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if len(req.Password) < 8 || len(req.Password) > 128 {
		return apperr.NewValidation("Password must be between 8 and 128 characters")
	}
	if req.Password != req.ConfirmPassword {
		return apperr.NewValidation("Password and Confirm Password do not match")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	users := database.DB.Collection("users")
	err := users.FindOne(ctx, bson.M{
		"$or": []bson.M{{"email": req.Email}, {"mobile": req.Mobile}},
	}).Err()
	if err == nil {
		return apperr.NewConflict("DUPLICATE_USER", "User with this email or mobile number already exists")
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NewUpstream("Failed to check existing user", err)
	}

	hashed, err := utils.HashSecret(req.Password)
	if err != nil {
		return apperr.NewUpstream("Failed to process password", err)
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Password:  hashed,
		Role:      models.RoleUser,
		Cart:      []models.CartLine{},
		Favorites: []models.FavoriteItem{},
	}

	if _, err := users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.NewConflict("DUPLICATE_USER", "User with this email or mobile number already exists")
		}
		return apperr.NewUpstream("Failed to create user", err)
	}

	metrics.SignupsTotal.Inc()
	return c.JSON(http.StatusCreated, echo.Map{
		"error":   false,
		"message": "User added successfully",
		"data":    user.Profile(),
	})
}

// Login verifies the password credential and, on success, opens an OTP
// challenge. The OTP itself is delivered out-of-band only.
func Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := findUserByUsername(ctx, req.Username, "Invalid username")
	if err != nil {
		return err
	}

	ok, err := utils.VerifySecret(req.Password, user.Password)
	if err != nil {
		return apperr.NewUpstream("Failed to verify password", err)
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("rejected").Inc()
		return apperr.NewAuth("Incorrect Password")
	}
	metrics.LoginsTotal.WithLabelValues("accepted").Inc()

	if err := issueOTPChallenge(ctx, user); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "OTP sent successfully",
		"data":    user.Email,
	})
}

// VerifyOTP completes the challenge: a valid, unexpired OTP clears the
// challenge fields and issues the session token.
func VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := findUserByUsername(ctx, req.Username, "Invalid username")
	if err != nil {
		return err
	}

	if user.OTPExpired(time.Now()) {
		metrics.OTPVerifiedTotal.WithLabelValues("expired").Inc()
		return apperr.NewAuth("OTP expired")
	}

	ok, err := utils.VerifySecret(req.OTP, *user.OTPHash)
	if err != nil {
		return apperr.NewUpstream("Failed to verify OTP", err)
	}
	if !ok {
		metrics.OTPVerifiedTotal.WithLabelValues("rejected").Inc()
		return apperr.NewAuth("Invalid OTP")
	}

	token, err := utils.GenerateToken(user.Email)
	if err != nil {
		return apperr.NewUpstream("Failed to generate token", err)
	}

	user.ClearOTPChallenge()
	user.Token = token

	_, err = database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"otp": nil, "otp_expire": nil, "token": token}},
	)
	if err != nil {
		return apperr.NewUpstream("Failed to update user", err)
	}

	metrics.OTPVerifiedTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "OTP verified successfully",
		"data":    user,
		"token":   token,
	})
}

// ResendOTP issues a fresh challenge unconditionally, replacing any
// outstanding OTP. There is no cool-down.
func ResendOTP(c echo.Context) error {
	var req ResendOTPRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidation("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), requestTimeout)
	defer cancel()

	user, err := findUserByUsername(ctx, req.Username, "Invalid username")
	if err != nil {
		return err
	}

	if err := issueOTPChallenge(ctx, user); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"error":   false,
		"message": "OTP sent successfully",
	})
}

// issueOTPChallenge generates, delivers and stores a new OTP. Storing the
// hash only after delivery succeeds means a failed send leaves any prior
// challenge untouched.
func issueOTPChallenge(ctx context.Context, user *models.User) error {
	otp, err := utils.GenerateOTP()
	if err != nil {
		return apperr.NewUpstream("Failed to generate OTP", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, otpSendTimeout)
	defer cancel()
	if err := otpSender.SendOTP(sendCtx, otp, user.Email); err != nil {
		return apperr.NewUpstream("Failed to send OTP", err)
	}

	otpHash, err := utils.HashSecret(otp)
	if err != nil {
		return apperr.NewUpstream("Failed to process OTP", err)
	}
	user.BeginOTPChallenge(otpHash, time.Now())

	_, err = database.DB.Collection("users").UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$set": bson.M{"otp": user.OTPHash, "otp_expire": user.OTPExpiresAt}},
	)
	if err != nil {
		return apperr.NewUpstream("Failed to store OTP", err)
	}

	metrics.OTPIssuedTotal.Inc()
	return nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleUser is the role every signup gets. The role field also admits
// "admin", which is a stored flag only; nothing enforces it.
const RoleUser = "user"

// OTPTTL is how long an issued OTP stays verifiable.
const OTPTTL = 10 * time.Minute

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Age          *int               `bson:"age" json:"age,omitempty"`
	Email        string             `bson:"email" json:"email"`
	Mobile       string             `bson:"mobile" json:"mobile"`
	Password     string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Avatar       string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Cart         []CartLine         `bson:"cart" json:"cart"`
	Favorites    []FavoriteItem     `bson:"favorite" json:"favorite"`
	OTPHash      *string            `bson:"otp" json:"-"`
	OTPExpiresAt *time.Time         `bson:"otp_expire" json:"-"`
	Token        string             `bson:"token,omitempty" json:"-"`
}

// Profile is the public slice of a user returned by signup.
type Profile struct {
	ID     primitive.ObjectID `json:"_id"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Mobile string             `json:"mobile"`
}

func (u *User) Profile() Profile {
	return Profile{ID: u.ID, Name: u.Name, Email: u.Email, Mobile: u.Mobile}
}

// BeginOTPChallenge installs a fresh OTP digest, replacing any outstanding
// challenge. otpHash and the expiry are always set together.
func (u *User) BeginOTPChallenge(otpHash string, now time.Time) {
	expiresAt := now.Add(OTPTTL)
	u.OTPHash = &otpHash
	u.OTPExpiresAt = &expiresAt
}

// ClearOTPChallenge nils both OTP fields. Idempotent.
func (u *User) ClearOTPChallenge() {
	u.OTPHash = nil
	u.OTPExpiresAt = nil
}

// OTPExpired reports whether the challenge can no longer be verified.
// No outstanding challenge counts as expired.
func (u *User) OTPExpired(now time.Time) bool {
	if u.OTPHash == nil || u.OTPExpiresAt == nil {
		return true
	}
	return !now.Before(*u.OTPExpiresAt)
}

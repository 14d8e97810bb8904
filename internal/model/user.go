package model

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered shopper
type User struct {
	BaseModel
	Email         string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,email"`
	Password      string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	Name          string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	IsVerified    bool       `gorm:"default:false" json:"is_verified"`
	LoyaltyPoints int        `gorm:"default:0" json:"loyalty_points"`
	LoyaltyTier   string     `gorm:"type:varchar(20);default:'bronze'" json:"loyalty_tier"`
	ReferralCode  string     `gorm:"type:varchar(20);uniqueIndex" json:"referral_code"`
	ReferredBy    *uuid.UUID `gorm:"type:uuid" json:"referred_by,omitempty"`

	// Relations
	SavedProducts []SavedProduct `json:"saved_products,omitempty"`
	PriceAlerts   []PriceAlert   `json:"price_alerts,omitempty"`
}

// SetPassword hashes and sets the user's password
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

// CheckPassword verifies if the provided password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// UserResponse is used for API responses (without sensitive data)
type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	IsVerified    bool      `json:"is_verified"`
	LoyaltyPoints int       `json:"loyalty_points"`
	LoyaltyTier   string    `json:"loyalty_tier"`
	ReferralCode  string    `json:"referral_code"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		IsVerified:    u.IsVerified,
		LoyaltyPoints: u.LoyaltyPoints,
		LoyaltyTier:   u.LoyaltyTier,
		ReferralCode:  u.ReferralCode,
	}
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient = "CLIENT"
	RoleAdmin  = "ADMIN"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	FirstName   string    `gorm:"size:100;not null" json:"firstName"`
	LastName    string    `gorm:"size:100;not null" json:"lastName"`
	BirthDate   time.Time `json:"birthDate"`
	Gender      string    `gorm:"size:10" json:"gender"`
	PhoneNumber string    `gorm:"size:20" json:"phoneNumber"`

	Role string `gorm:"size:10;default:'CLIENT'" json:"role"`

	IsVerified                bool       `gorm:"default:false" json:"isVerified"`
	VerificationCode          *string    `gorm:"size:8" json:"-"`
	VerificationCodeExpiresAt *time.Time `json:"-"`

	ProfilePictureURL *string `gorm:"size:255" json:"profilePicture"`
	PushToken         *string `gorm:"size:255" json:"pushToken,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Story struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ImageURL string `gorm:"size:255;not null" json:"imageUrl"`
	// Object-storage key, needed to delete the backing asset.
	PublicID string `gorm:"size:255;not null" json:"publicId"`
	Caption  string `gorm:"size:255" json:"caption"`

	UserID string `gorm:"type:uuid;not null" json:"userId"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`

	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`
}

func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

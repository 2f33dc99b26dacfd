package models

import "time"

// AppVersion is a single-row table describing the latest mobile build.
type AppVersion struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Version     string `gorm:"size:20;not null" json:"version"`
	ApkURL      string `gorm:"size:255" json:"apkUrl"`
	ForceUpdate bool   `gorm:"default:false" json:"forceUpdate"`
	Notes       string `gorm:"size:255" json:"notes"`

	UpdatedAt time.Time `json:"updatedAt"`
}

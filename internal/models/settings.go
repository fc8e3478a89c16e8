package models

import "time"

// SettingsID is the fixed primary key of the singleton settings row. Lookups
// address it by key instead of scanning for "the only document".
const SettingsID uint = 1

type Settings struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopName     string `gorm:"size:100;default:'Barshop'" json:"shopName"`
	OpeningHours string `gorm:"size:100;default:'Mon-Sat: 9:00 AM - 6:00 PM'" json:"openingHours"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OffDate marks a calendar day the shop is fully closed. Date holds midnight
// in the shop timezone; the unique index keeps one row per day.
type OffDate struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	Date time.Time `gorm:"uniqueIndex;not null" json:"date"`

	CreatedAt time.Time `json:"createdAt"`
}

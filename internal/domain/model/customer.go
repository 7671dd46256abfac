package model

import "time"

type Customer struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Version      int64     `gorm:"not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255)"`
	PhoneNumber  string    `gorm:"type:varchar(50)"`
	AddressLine1 string    `gorm:"type:varchar(255);not null"`
	AddressLine2 string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(255);not null"`
	State        string    `gorm:"type:varchar(100);not null"`
	PostalCode   string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime"`
}

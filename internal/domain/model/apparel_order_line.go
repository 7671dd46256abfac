package model

import "time"

type ApparelOrderLine struct {
	ID                int64     `gorm:"primaryKey;autoIncrement"`
	Version           int64     `gorm:"not null"`
	ApparelOrderID    int64     `gorm:"not null;index"`
	ApparelID         *int64    `gorm:"index"`
	Apparel           *Apparel  `gorm:"foreignKey:ApparelID;constraint:OnDelete:SET NULL"`
	OrderQuantity     int       `gorm:"not null"`
	QuantityAllocated int       `gorm:"not null;default:0"`
	Status            string    `gorm:"type:varchar(20)"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime"`
}

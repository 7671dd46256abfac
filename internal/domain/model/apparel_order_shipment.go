package model

import "time"

type ApparelOrderShipment struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Version        int64     `gorm:"not null"`
	ApparelOrderID int64     `gorm:"not null;index"`
	ShipmentDate   time.Time `gorm:"not null"`
	Carrier        string    `gorm:"type:varchar(100)"`
	TrackingNumber string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime"`
}

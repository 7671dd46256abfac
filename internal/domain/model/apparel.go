package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 商品（アパレル）。注文明細からはApparelIDで参照されるだけで、ここから明細は持たない。
type Apparel struct {
	ID             int64           `gorm:"primaryKey;autoIncrement"`
	Version        int64           `gorm:"not null"`
	ApparelName    string          `gorm:"type:varchar(255);not null"`
	ApparelStyle   string          `gorm:"type:varchar(255)"`
	UPC            string          `gorm:"column:upc;type:varchar(255)"`
	QuantityOnHand int             `gorm:"not null"`
	Description    string          `gorm:"type:text"`
	Price          decimal.Decimal `gorm:"type:numeric(19,2)"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime"`
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 状態遷移のルールは持たない。呼び出し側が自由に入れる。
const (
	OrderStatusNew       = "NEW"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusInProcess = "INPROCESS"
	OrderStatusComplete  = "COMPLETE"
)

// 注文。明細と出荷は値で保持し、子側はApparelOrderIDだけを持つ。
type ApparelOrder struct {
	ID            int64           `gorm:"primaryKey;autoIncrement"`
	Version       int64           `gorm:"not null"`
	CustomerID    int64           `gorm:"not null;index"`
	Customer      *Customer       `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	PaymentAmount decimal.Decimal `gorm:"type:numeric(19,2)"`
	Status        string          `gorm:"type:varchar(20)"`
	CreatedAt     time.Time       `gorm:"not null;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"not null;autoUpdateTime"`

	ApparelOrderLines []ApparelOrderLine     `gorm:"foreignKey:ApparelOrderID;constraint:OnDelete:CASCADE"`
	Shipments         []ApparelOrderShipment `gorm:"foreignKey:ApparelOrderID;constraint:OnDelete:CASCADE"`
}

// 明細を追加して、明細側の注文IDも合わせる
func (o *ApparelOrder) AddLine(line ApparelOrderLine) {
	line.ApparelOrderID = o.ID
	o.ApparelOrderLines = append(o.ApparelOrderLines, line)
}

// 明細を外す。見つからなければfalse
func (o *ApparelOrder) RemoveLine(lineID int64) (ApparelOrderLine, bool) {
	for i, l := range o.ApparelOrderLines {
		if l.ID == lineID {
			o.ApparelOrderLines = append(o.ApparelOrderLines[:i], o.ApparelOrderLines[i+1:]...)
			l.ApparelOrderID = 0
			return l, true
		}
	}
	return ApparelOrderLine{}, false
}

// 出荷を追加して、出荷側の注文IDも合わせる
func (o *ApparelOrder) AddShipment(s ApparelOrderShipment) {
	s.ApparelOrderID = o.ID
	o.Shipments = append(o.Shipments, s)
}

// 出荷を外す。見つからなければfalse
func (o *ApparelOrder) RemoveShipment(shipmentID int64) (ApparelOrderShipment, bool) {
	for i, s := range o.Shipments {
		if s.ID == shipmentID {
			o.Shipments = append(o.Shipments[:i], o.Shipments[i+1:]...)
			s.ApparelOrderID = 0
			return s, true
		}
	}
	return ApparelOrderShipment{}, false
}

// IDが確定した後に子の注文IDを揃え直す
func (o *ApparelOrder) SyncChildren() {
	for i := range o.ApparelOrderLines {
		o.ApparelOrderLines[i].ApparelOrderID = o.ID
	}
	for i := range o.Shipments {
		o.Shipments[i].ApparelOrderID = o.ID
	}
}

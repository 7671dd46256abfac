package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// 金額はJSONの数値で出す（"12.99"ではなく12.99）
	decimal.MarshalJSONWithoutQuotes = true
}

// 全DTO共通の読み取り専用フィールド
type Base struct {
	ID          *int64     `json:"id"`
	Version     *int64     `json:"version"`
	CreatedDate *time.Time `json:"createdDate"`
	UpdateDate  *time.Time `json:"updateDate"`
}

type ApparelDto struct {
	Base
	ApparelName    string           `json:"apparelName" validate:"notblank"`
	ApparelStyle   string           `json:"apparelStyle" validate:"notblank"`
	UPC            string           `json:"upc" validate:"notblank"`
	QuantityOnHand *int             `json:"quantityOnHand" validate:"required,gte=0"`
	Description    string           `json:"description"`
	Price          *decimal.Decimal `json:"price" validate:"required,gt=0"`
}

// PATCH用。nilのフィールドは変更しない
type ApparelPatchDto struct {
	Base
	ApparelName    *string          `json:"apparelName"`
	ApparelStyle   *string          `json:"apparelStyle"`
	UPC            *string          `json:"upc"`
	QuantityOnHand *int             `json:"quantityOnHand"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
}

type CustomerDto struct {
	Base
	Name         string `json:"name" validate:"notblank"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	AddressLine1 string `json:"addressLine1" validate:"notblank"`
	AddressLine2 string `json:"addressLine2"`
	City         string `json:"city" validate:"notblank"`
	State        string `json:"state" validate:"notblank"`
	PostalCode   string `json:"postalCode" validate:"notblank"`
}

// customerは参照（id）として使うので中身は検証しない
type ApparelOrderDto struct {
	Base
	Customer          *CustomerDto              `json:"customer" validate:"required,nostructlevel"`
	PaymentAmount     *decimal.Decimal          `json:"paymentAmount" validate:"required,gt=0"`
	Status            string                    `json:"status"`
	ApparelOrderLines []ApparelOrderLineDto     `json:"apparelOrderLines" validate:"required,min=1,dive"`
	Shipments         []ApparelOrderShipmentDto `json:"shipments" validate:"omitempty,dive"`
}

// 商品の名前/スタイル/UPCは読み取り用に平たく持つ
type ApparelOrderLineDto struct {
	Base
	ApparelID         *int64  `json:"apparelId"`
	ApparelName       *string `json:"apparelName"`
	ApparelStyle      *string `json:"apparelStyle"`
	UPC               *string `json:"upc"`
	OrderQuantity     *int    `json:"orderQuantity" validate:"required,gt=0"`
	QuantityAllocated *int    `json:"quantityAllocated" validate:"omitempty,gte=0"`
	Status            string  `json:"status"`
}

type ApparelOrderShipmentDto struct {
	Base
	ShipmentDate   *time.Time `json:"shipmentDate" validate:"required"`
	Carrier        string     `json:"carrier"`
	TrackingNumber string     `json:"trackingNumber"`
}

// 一覧のページ包み（content + ページ情報）
type PageDto[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

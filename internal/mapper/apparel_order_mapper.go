package mapper

import (
	"apparelstore/internal/domain/model"
	"apparelstore/internal/dto"

	"github.com/shopspring/decimal"
)

// 顧客・明細・出荷もまとめて変換
func ApparelOrderToDto(o model.ApparelOrder) dto.ApparelOrderDto {
	out := dto.ApparelOrderDto{
		Base:              base(o.ID, o.Version, o.CreatedAt, o.UpdatedAt),
		PaymentAmount:     ptr(o.PaymentAmount),
		Status:            o.Status,
		ApparelOrderLines: make([]dto.ApparelOrderLineDto, 0, len(o.ApparelOrderLines)),
		Shipments:         make([]dto.ApparelOrderShipmentDto, 0, len(o.Shipments)),
	}
	if o.Customer != nil {
		c := CustomerToDto(*o.Customer)
		out.Customer = &c
	}
	for _, l := range o.ApparelOrderLines {
		out.ApparelOrderLines = append(out.ApparelOrderLines, ApparelOrderLineToDto(l))
	}
	for _, s := range o.Shipments {
		out.Shipments = append(out.Shipments, ApparelOrderShipmentToDto(s))
	}
	return out
}

// 明細・出荷は無視する（usecase側で付け直す）。顧客はidだけ拾う
func ApparelOrderDtoToApparelOrder(d dto.ApparelOrderDto) model.ApparelOrder {
	o := model.ApparelOrder{
		Version:       derefOr(d.Version, 0),
		PaymentAmount: derefOr(d.PaymentAmount, decimal.Zero),
		Status:        d.Status,
	}
	if d.Customer != nil && d.Customer.ID != nil {
		o.CustomerID = *d.Customer.ID
	}
	return o
}

// 商品のid/名前/スタイル/UPCを明細側に平たく載せる
func ApparelOrderLineToDto(l model.ApparelOrderLine) dto.ApparelOrderLineDto {
	out := dto.ApparelOrderLineDto{
		Base:              base(l.ID, l.Version, l.CreatedAt, l.UpdatedAt),
		ApparelID:         l.ApparelID,
		OrderQuantity:     ptr(l.OrderQuantity),
		QuantityAllocated: ptr(l.QuantityAllocated),
		Status:            l.Status,
	}
	if l.Apparel != nil {
		out.ApparelID = ptr(l.Apparel.ID)
		out.ApparelName = ptr(l.Apparel.ApparelName)
		out.ApparelStyle = ptr(l.Apparel.ApparelStyle)
		out.UPC = ptr(l.Apparel.UPC)
	}
	return out
}

// 商品と注文の参照は無視する
func ApparelOrderLineDtoToApparelOrderLine(d dto.ApparelOrderLineDto) model.ApparelOrderLine {
	return model.ApparelOrderLine{
		Version:           derefOr(d.Version, 0),
		OrderQuantity:     derefOr(d.OrderQuantity, 0),
		QuantityAllocated: derefOr(d.QuantityAllocated, 0),
		Status:            d.Status,
	}
}

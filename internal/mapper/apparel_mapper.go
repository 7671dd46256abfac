package mapper

import (
	"apparelstore/internal/domain/model"
	"apparelstore/internal/dto"

	"github.com/shopspring/decimal"
)

func ApparelToDto(a model.Apparel) dto.ApparelDto {
	return dto.ApparelDto{
		Base:           base(a.ID, a.Version, a.CreatedAt, a.UpdatedAt),
		ApparelName:    a.ApparelName,
		ApparelStyle:   a.ApparelStyle,
		UPC:            a.UPC,
		QuantityOnHand: ptr(a.QuantityOnHand),
		Description:    a.Description,
		Price:          ptr(a.Price),
	}
}

// id/日時は無視する
func ApparelDtoToApparel(d dto.ApparelDto) model.Apparel {
	a := model.Apparel{Version: derefOr(d.Version, 0)}
	UpdateApparelFromDto(d, &a)
	return a
}

// 全項目上書き（id/version/日時は触らない）
func UpdateApparelFromDto(d dto.ApparelDto, a *model.Apparel) {
	a.ApparelName = d.ApparelName
	a.ApparelStyle = d.ApparelStyle
	a.UPC = d.UPC
	a.QuantityOnHand = derefOr(d.QuantityOnHand, 0)
	a.Description = d.Description
	a.Price = derefOr(d.Price, decimal.Zero)
}

// nilでないフィールドだけ上書き
func UpdateApparelFromPatchDto(d dto.ApparelPatchDto, a *model.Apparel) {
	if d.ApparelName != nil {
		a.ApparelName = *d.ApparelName
	}
	if d.ApparelStyle != nil {
		a.ApparelStyle = *d.ApparelStyle
	}
	if d.UPC != nil {
		a.UPC = *d.UPC
	}
	if d.QuantityOnHand != nil {
		a.QuantityOnHand = *d.QuantityOnHand
	}
	if d.Description != nil {
		a.Description = *d.Description
	}
	if d.Price != nil {
		a.Price = *d.Price
	}
}

package handler

import (
	"net/http"
	"testing"

	"apparelstore/internal/dto"
	"apparelstore/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }
func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validApparel() dto.ApparelDto {
	return dto.ApparelDto{
		ApparelName:    "Classic Tee",
		ApparelStyle:   "TSHIRT",
		UPC:            "0631234200036",
		QuantityOnHand: intPtr(10),
		Price:          decPtr("15.99"),
	}
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected *usecase.HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, usecase.CodeValidation, he.Code)
	assert.Equal(t, "Input validation failed", he.Message)
	return he.Fields
}

func TestRequestValidator_Apparel(t *testing.T) {
	v := NewRequestValidator()

	t.Run("valid", func(t *testing.T) {
		d := validApparel()
		assert.NoError(t, v.Validate(&d))
	})

	t.Run("blank strings and missing numbers", func(t *testing.T) {
		d := validApparel()
		d.ApparelName = "   "
		d.UPC = ""
		d.QuantityOnHand = nil
		d.Price = nil

		fields := validationFields(t, v.Validate(&d))
		assert.Equal(t, map[string]string{
			"apparelName":    "Apparel name is required",
			"upc":            "UPC is required",
			"quantityOnHand": "Quantity on hand is required",
			"price":          "Price is required",
		}, fields)
	})

	t.Run("price must be positive", func(t *testing.T) {
		d := validApparel()
		d.Price = decPtr("0")
		fields := validationFields(t, v.Validate(&d))
		assert.Equal(t, "Price must be positive", fields["price"])
	})

	t.Run("negative stock", func(t *testing.T) {
		d := validApparel()
		d.QuantityOnHand = intPtr(-1)
		fields := validationFields(t, v.Validate(&d))
		assert.Equal(t, "Quantity on hand must be zero or positive", fields["quantityOnHand"])
	})

	t.Run("zero stock is fine", func(t *testing.T) {
		d := validApparel()
		d.QuantityOnHand = intPtr(0)
		assert.NoError(t, v.Validate(&d))
	})
}

func TestRequestValidator_Customer(t *testing.T) {
	v := NewRequestValidator()

	d := dto.CustomerDto{Name: "Jane Smith", City: "Springfield"}
	fields := validationFields(t, v.Validate(&d))
	assert.Equal(t, map[string]string{
		"addressLine1": "Address line 1 is required",
		"state":        "State is required",
		"postalCode":   "Postal code is required",
	}, fields)
}

func TestRequestValidator_ApparelOrder(t *testing.T) {
	v := NewRequestValidator()

	valid := func() dto.ApparelOrderDto {
		return dto.ApparelOrderDto{
			// 参照用なので中身が空でも通る
			Customer:      &dto.CustomerDto{Base: dto.Base{ID: int64Ptr(1)}},
			PaymentAmount: decPtr("31.98"),
			ApparelOrderLines: []dto.ApparelOrderLineDto{
				{ApparelID: int64Ptr(1), OrderQuantity: intPtr(2)},
			},
		}
	}

	t.Run("valid with reference customer", func(t *testing.T) {
		d := valid()
		assert.NoError(t, v.Validate(&d))
	})

	t.Run("no lines", func(t *testing.T) {
		d := valid()
		d.ApparelOrderLines = []dto.ApparelOrderLineDto{}
		fields := validationFields(t, v.Validate(&d))
		assert.Equal(t, "Apparel order must have at least one apparel order line", fields["apparelOrderLines"])

		d.ApparelOrderLines = nil
		fields = validationFields(t, v.Validate(&d))
		assert.Equal(t, "Apparel order must have at least one apparel order line", fields["apparelOrderLines"])
	})

	t.Run("missing customer and payment", func(t *testing.T) {
		d := valid()
		d.Customer = nil
		d.PaymentAmount = nil
		fields := validationFields(t, v.Validate(&d))
		assert.Equal(t, "Customer is required", fields["customer"])
		assert.Equal(t, "Payment amount is required", fields["paymentAmount"])
	})

	t.Run("line fields use indexed path", func(t *testing.T) {
		d := valid()
		d.ApparelOrderLines = append(d.ApparelOrderLines, dto.ApparelOrderLineDto{
			OrderQuantity:     intPtr(0),
			QuantityAllocated: intPtr(-1),
		})
		fields := validationFields(t, v.Validate(&d))
		assert.Equal(t, "Order quantity must be positive", fields["apparelOrderLines[1].orderQuantity"])
		assert.Equal(t, "Quantity allocated must be zero or positive", fields["apparelOrderLines[1].quantityAllocated"])
		assert.NotContains(t, fields, "apparelOrderLines[0].orderQuantity")
	})
}

func TestRequestValidator_Shipment(t *testing.T) {
	v := NewRequestValidator()

	d := dto.ApparelOrderShipmentDto{Carrier: "UPS"}
	fields := validationFields(t, v.Validate(&d))
	assert.Equal(t, map[string]string{"shipmentDate": "Shipment date is required"}, fields)
}

func TestFieldPath(t *testing.T) {
	assert.Equal(t, "price", fieldPath("ApparelDto.price"))
	assert.Equal(t, "apparelOrderLines[0].orderQuantity", fieldPath("ApparelOrderDto.apparelOrderLines[0].orderQuantity"))
	assert.Equal(t, "price", fieldPath("price"))
}

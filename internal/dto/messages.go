package dto

import "fmt"

// json名 + validateタグ → 利用者向けメッセージ
var messages = map[string]string{
	"apparelName.notblank":       "Apparel name is required",
	"apparelStyle.notblank":      "Apparel style is required",
	"upc.notblank":               "UPC is required",
	"quantityOnHand.required":    "Quantity on hand is required",
	"quantityOnHand.gte":         "Quantity on hand must be zero or positive",
	"price.required":             "Price is required",
	"price.gt":                   "Price must be positive",
	"name.notblank":              "Name is required",
	"addressLine1.notblank":      "Address line 1 is required",
	"city.notblank":              "City is required",
	"state.notblank":             "State is required",
	"postalCode.notblank":        "Postal code is required",
	"customer.required":          "Customer is required",
	"paymentAmount.required":     "Payment amount is required",
	"paymentAmount.gt":           "Payment amount must be positive",
	"apparelOrderLines.required": "Apparel order must have at least one apparel order line",
	"apparelOrderLines.min":      "Apparel order must have at least one apparel order line",
	"orderQuantity.required":     "Order quantity is required",
	"orderQuantity.gt":           "Order quantity must be positive",
	"quantityAllocated.gte":      "Quantity allocated must be zero or positive",
	"shipmentDate.required":      "Shipment date is required",
}

// 登録が無ければタグから汎用メッセージを作る
func Message(field, tag, param string) string {
	if m, ok := messages[field+"."+tag]; ok {
		return m
	}
	switch tag {
	case "required", "notblank":
		return field + " is required"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "min":
		return fmt.Sprintf("%s must have at least %s item(s)", field, param)
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, tag)
	}
}

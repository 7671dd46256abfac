package handler

import (
	"reflect"
	"strings"

	"apparelstore/internal/dto"
	"apparelstore/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// echo.Validator の実装。エラーはjson名 → メッセージにまとめて返す
type RequestValidator struct {
	v *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New()

	// エラーの項目名はjson名で出す
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 空白だけの文字列も未入力扱い
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}

	// gt/gteで比較できるようにdecimalは数値として扱う
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	return &RequestValidator{v: v}
}

func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.v.Struct(i)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		path := fieldPath(fe.Namespace())
		if _, exists := fields[path]; exists {
			continue
		}
		fields[path] = dto.Message(fe.Field(), fe.Tag(), fe.Param())
	}
	return usecase.ValidationError(fields)
}

// "ApparelOrderDto.apparelOrderLines[0].orderQuantity" → "apparelOrderLines[0].orderQuantity"
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

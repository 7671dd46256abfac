package handler

import (
	"net/http"
	"strconv"

	"apparelstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

func constraintError(field, msg string, cause error) error {
	return &usecase.HTTPError{
		Status:  http.StatusBadRequest,
		Code:    usecase.CodeConstraint,
		Message: "Constraint violation occurred",
		Fields:  map[string]string{field: msg},
		Err:     cause,
	}
}

// パスのidを数値で取る
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, constraintError(name, "must be an integer", err)
	}
	return id, nil
}

// 無ければdef
func queryInt(c echo.Context, name string, def int) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, constraintError(name, "must be an integer", err)
	}
	return i, nil
}

// 指定が無ければnil（空文字の指定はそのまま返す）
func queryString(c echo.Context, name string) *string {
	vs, ok := c.QueryParams()[name]
	if !ok || len(vs) == 0 {
		return nil
	}
	return &vs[0]
}

// JSONを読んでから入力チェック
func bindAndValidate(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return &usecase.HTTPError{
			Status:  http.StatusBadRequest,
			Code:    usecase.CodeConstraint,
			Message: "Malformed request body",
			Err:     err,
		}
	}
	return c.Validate(dst)
}

// 入力チェックなし（PATCH用）
func bindOnly(c echo.Context, dst interface{}) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, dst); err != nil {
		return &usecase.HTTPError{
			Status:  http.StatusBadRequest,
			Code:    usecase.CodeConstraint,
			Message: "Malformed request body",
			Err:     err,
		}
	}
	return nil
}

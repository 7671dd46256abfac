package usecase

import (
	"errors"
	"fmt"
	"net/http"

	repo "apparelstore/internal/repository"
)

// エラー応答のtypeの末尾に使う分類
const (
	CodeValidation   = "validation-error"
	CodeConstraint   = "constraint-violation"
	CodeApparelOrder = "apparel-order-error"
	CodeNotFound     = "not-found"
	CodeConflict     = "conflict"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	// 項目名 → メッセージ（入力チェック失敗時だけ）
	Fields map[string]string
	Err    error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, code string, message string) error {
	return &HTTPError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func NotFound(format string, args ...interface{}) error {
	return NewHTTPError(http.StatusNotFound, CodeNotFound, fmt.Sprintf(format, args...))
}

// 注文まわりの業務エラー（400）
func ApparelOrderError(format string, args ...interface{}) error {
	return NewHTTPError(http.StatusBadRequest, CodeApparelOrder, fmt.Sprintf(format, args...))
}

func ValidationError(fields map[string]string) error {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Code:    CodeValidation,
		Message: "Input validation failed",
		Fields:  fields,
	}
}

// repositoryのエラーを応答用に変換。知らないエラーはそのまま返す（500になる）
func fromRepoError(err error, notFoundMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repo.ErrNotFound):
		return &HTTPError{Status: http.StatusNotFound, Code: CodeNotFound, Message: notFoundMsg, Err: err}
	case errors.Is(err, repo.ErrVersionConflict):
		return &HTTPError{
			Status:  http.StatusConflict,
			Code:    CodeConflict,
			Message: "The resource was modified by another request; reload and retry",
			Err:     err,
		}
	case errors.Is(err, repo.ErrReferenced):
		return &HTTPError{
			Status:  http.StatusConflict,
			Code:    CodeConflict,
			Message: "The resource is still referenced by other resources",
			Err:     err,
		}
	default:
		return err
	}
}

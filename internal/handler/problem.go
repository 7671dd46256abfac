package handler

import (
	"errors"
	"fmt"
	"net/http"

	"apparelstore/internal/logger"
	"apparelstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	MIMEApplicationProblemJSON = "application/problem+json"

	codeInternal         = "internal-error"
	codeMethodNotAllowed = "method-not-allowed"
)

var titles = map[string]string{
	usecase.CodeValidation:   "Validation Error",
	usecase.CodeConstraint:   "Constraint Violation",
	usecase.CodeApparelOrder: "Apparel Order Error",
	usecase.CodeNotFound:     "Resource Not Found",
	usecase.CodeConflict:     "Conflict",
	codeMethodNotAllowed:     "Method Not Allowed",
	codeInternal:             "Internal Server Error",
}

// エラー応答の本文
type ProblemDetails struct {
	Type       string            `json:"type"`
	Title      string            `json:"title"`
	Status     int               `json:"status"`
	Detail     string            `json:"detail"`
	Instance   string            `json:"instance"`
	Extensions map[string]string `json:"extensions,omitempty"`
}

// 全エラーをproblem+jsonで返すecho.HTTPErrorHandler
func NewHTTPErrorHandler(baseURL string, log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		p := toProblem(err)
		p.Type = baseURL + "/" + p.Type
		p.Instance = c.Request().URL.Path

		if p.Status >= http.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Request().Method,
				"path", p.Instance,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}

		c.Response().Header().Set(echo.HeaderContentType, MIMEApplicationProblemJSON)
		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(p.Status)
		} else {
			werr = c.JSON(p.Status, p)
		}
		if werr != nil {
			log.Warn("write error response failed", "error", werr)
		}
	}
}

// typeは末尾（分類名）だけ埋める
func toProblem(err error) ProblemDetails {
	if he, ok := usecase.AsHTTPError(err); ok {
		return ProblemDetails{
			Type:       he.Code,
			Title:      titleOf(he.Code, he.Status),
			Status:     he.Status,
			Detail:     he.Message,
			Extensions: he.Fields,
		}
	}

	var ee *echo.HTTPError
	if errors.As(err, &ee) {
		code := ""
		switch ee.Code {
		case http.StatusNotFound:
			code = usecase.CodeNotFound
		case http.StatusMethodNotAllowed:
			code = codeMethodNotAllowed
		case http.StatusBadRequest:
			code = usecase.CodeConstraint
		default:
			if ee.Code >= http.StatusInternalServerError {
				return internalProblem()
			}
			code = "http-" + fmt.Sprint(ee.Code)
		}
		return ProblemDetails{
			Type:   code,
			Title:  titleOf(code, ee.Code),
			Status: ee.Code,
			Detail: fmt.Sprint(ee.Message),
		}
	}

	return internalProblem()
}

// 中身は出さない
func internalProblem() ProblemDetails {
	return ProblemDetails{
		Type:   codeInternal,
		Title:  titles[codeInternal],
		Status: http.StatusInternalServerError,
		Detail: "An unexpected error occurred",
	}
}

func titleOf(code string, status int) string {
	if t, ok := titles[code]; ok {
		return t
	}
	return http.StatusText(status)
}

package middleware

import (
	"time"

	"apparelstore/internal/logger"

	"github.com/labstack/echo/v4"
)

// 1リクエスト1行のアクセスログ。
// エラーはここでHTTPErrorHandlerに渡して確定したステータスを記録する
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			kv := []interface{}{
				"method", req.Method,
				"path", req.URL.Path,
				"status", res.Status,
				"latency_ms", time.Since(start).Milliseconds(),
				"bytes_out", res.Size,
				"request_id", res.Header().Get(echo.HeaderXRequestID),
			}
			if q := req.URL.RawQuery; q != "" {
				kv = append(kv, "query", q)
			}

			switch {
			case res.Status >= 500:
				log.Error("request", kv...)
			case res.Status >= 400:
				log.Warn("request", kv...)
			default:
				log.Info("request", kv...)
			}
			return nil
		}
	}
}

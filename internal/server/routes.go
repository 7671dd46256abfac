package server

import (
	"net/http"

	"apparelstore/internal/handler"
	infraRepo "apparelstore/internal/infra/repository"
	"apparelstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const apiPrefix = "/api/v1"

// DIしてルートを登録する
func RegisterRoutes(e *echo.Echo, gdb *gorm.DB) {
	txm := infraRepo.NewTxManagerGorm(gdb)

	apparelUC := usecase.NewApparelUsecase(infraRepo.NewApparelGormRepository(gdb), txm)
	customerUC := usecase.NewCustomerUsecase(infraRepo.NewCustomerGormRepository(gdb), txm)
	orderUC := usecase.NewApparelOrderUsecase(infraRepo.NewApparelOrderGormRepository(gdb), txm)
	shipmentUC := usecase.NewApparelOrderShipmentUsecase(infraRepo.NewApparelOrderShipmentGormRepository(gdb), txm)

	e.GET("/healthz", healthz(gdb))

	api := e.Group(apiPrefix)
	handler.NewApparelHandler(apparelUC).RegisterRoutes(api)
	handler.NewCustomerHandler(customerUC).RegisterRoutes(api)
	handler.NewApparelOrderHandler(orderUC).RegisterRoutes(api)
	handler.NewApparelOrderShipmentHandler(shipmentUC).RegisterRoutes(api)
}

// DBに届くかだけ見る
func healthz(gdb *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sqlDB, err := gdb.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database unavailable").SetInternal(err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

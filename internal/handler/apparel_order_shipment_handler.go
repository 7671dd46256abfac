package handler

import (
	"net/http"

	"apparelstore/internal/dto"
	"apparelstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /apparel-orders/:orderId/shipments のAPI
type ApparelOrderShipmentHandler struct {
	uc *usecase.ApparelOrderShipmentUsecase
}

func NewApparelOrderShipmentHandler(uc *usecase.ApparelOrderShipmentUsecase) *ApparelOrderShipmentHandler {
	return &ApparelOrderShipmentHandler{uc: uc}
}

func (h *ApparelOrderShipmentHandler) RegisterRoutes(g *echo.Group) {
	s := g.Group("/apparel-orders/:orderId/shipments")
	s.GET("", h.list)
	s.GET("/:shipmentId", h.get)
	s.POST("", h.create)
	s.PUT("/:shipmentId", h.update)
	s.DELETE("/:shipmentId", h.delete)
}

func (h *ApparelOrderShipmentHandler) ids(c echo.Context) (orderID, shipmentID int64, err error) {
	if orderID, err = pathID(c, "orderId"); err != nil {
		return 0, 0, err
	}
	if shipmentID, err = pathID(c, "shipmentId"); err != nil {
		return 0, 0, err
	}
	return orderID, shipmentID, nil
}

// 注文の存在は見ない（無ければ空配列）
func (h *ApparelOrderShipmentHandler) list(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	out, err := h.uc.List(c.Request().Context(), orderID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApparelOrderShipmentHandler) get(c echo.Context) error {
	orderID, shipmentID, err := h.ids(c)
	if err != nil {
		return err
	}
	out, err := h.uc.Get(c.Request().Context(), orderID, shipmentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApparelOrderShipmentHandler) create(c echo.Context) error {
	orderID, err := pathID(c, "orderId")
	if err != nil {
		return err
	}
	var req dto.ApparelOrderShipmentDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.ID = nil

	out, err := h.uc.Create(c.Request().Context(), orderID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ApparelOrderShipmentHandler) update(c echo.Context) error {
	orderID, shipmentID, err := h.ids(c)
	if err != nil {
		return err
	}
	var req dto.ApparelOrderShipmentDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.uc.Update(c.Request().Context(), orderID, shipmentID, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApparelOrderShipmentHandler) delete(c echo.Context) error {
	orderID, shipmentID, err := h.ids(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), orderID, shipmentID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

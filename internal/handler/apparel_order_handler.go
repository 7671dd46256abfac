package handler

import (
	"net/http"

	"apparelstore/internal/dto"
	"apparelstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /apparel-orders のAPI
type ApparelOrderHandler struct {
	uc *usecase.ApparelOrderUsecase
}

func NewApparelOrderHandler(uc *usecase.ApparelOrderUsecase) *ApparelOrderHandler {
	return &ApparelOrderHandler{uc: uc}
}

func (h *ApparelOrderHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/apparel-orders", h.list)
	g.GET("/apparel-orders/:id", h.get)
	g.POST("/apparel-orders", h.create)
	g.PUT("/apparel-orders/:id", h.update)
	g.DELETE("/apparel-orders/:id", h.delete)
}

func (h *ApparelOrderHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApparelOrderHandler) get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	out, found, err := h.uc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApparelOrderHandler) create(c echo.Context) error {
	var req dto.ApparelOrderDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	req.ID = nil

	out, err := h.uc.Save(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

// 明細は丸ごと入れ替え。出荷はそのまま
func (h *ApparelOrderHandler) update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ApparelOrderDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, found, err := h.uc.GetByID(ctx, id); err != nil {
		return err
	} else if !found {
		return c.NoContent(http.StatusNotFound)
	}

	req.ID = &id
	out, err := h.uc.Save(ctx, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApparelOrderHandler) delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, found, err := h.uc.GetByID(ctx, id); err != nil {
		return err
	} else if !found {
		return c.NoContent(http.StatusNotFound)
	}

	if err := h.uc.DeleteByID(ctx, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

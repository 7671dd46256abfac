package handler

import (
	"net/http"

	"apparelstore/internal/dto"
	"apparelstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /customers のAPI
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

func (h *CustomerHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/customers", h.list)
	g.GET("/customers/:id", h.get)
	g.POST("/customers", h.create)
	g.PUT("/customers/:id", h.update)
	g.DELETE("/customers/:id", h.delete)
}

func (h *CustomerHandler) list(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) get(c echo.Context) error {
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

func (h *CustomerHandler) create(c echo.Context) error {
	var req dto.CustomerDto
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

// 存在しなければusecase側で404
func (h *CustomerHandler) update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CustomerDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.uc.Update(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) delete(c echo.Context) error {
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

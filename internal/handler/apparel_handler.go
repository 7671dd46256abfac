package handler

import (
	"net/http"

	"apparelstore/internal/dto"
	"apparelstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /apparels のAPI
type ApparelHandler struct {
	uc *usecase.ApparelUsecase
}

// DI
func NewApparelHandler(uc *usecase.ApparelUsecase) *ApparelHandler {
	return &ApparelHandler{uc: uc}
}

func (h *ApparelHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/apparels", h.list)
	g.GET("/apparels/:id", h.get)
	g.POST("/apparels", h.create)
	g.PUT("/apparels/:id", h.update)
	g.PATCH("/apparels/:id", h.patch)
	g.DELETE("/apparels/:id", h.delete)
}

func (h *ApparelHandler) list(c echo.Context) error {
	page, err := queryInt(c, "page", usecase.DefaultPage)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size", usecase.DefaultSize)
	if err != nil {
		return err
	}

	res, err := h.uc.List(c.Request().Context(), usecase.ListApparelsInput{
		ApparelName:  queryString(c, "apparelName"),
		ApparelStyle: queryString(c, "apparelStyle"),
		Page:         page,
		Size:         size,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ApparelHandler) get(c echo.Context) error {
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

func (h *ApparelHandler) create(c echo.Context) error {
	var req dto.ApparelDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	// idは採番させる
	req.ID = nil

	out, err := h.uc.Save(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ApparelHandler) update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ApparelDto
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, found, err := h.uc.GetByID(ctx, id); err != nil {
		return err
	} else if !found {
		return c.NoContent(http.StatusNotFound)
	}

	// パスのidが優先
	req.ID = &id
	out, err := h.uc.Save(ctx, req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApparelHandler) patch(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ApparelPatchDto
	if err := bindOnly(c, &req); err != nil {
		return err
	}

	out, found, err := h.uc.Patch(c.Request().Context(), id, req)
	if err != nil {
		return err
	}
	if !found {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApparelHandler) delete(c echo.Context) error {
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

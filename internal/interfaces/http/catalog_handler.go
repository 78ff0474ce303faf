package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/usecase"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

// CatalogHandler maneja el CRUD de una entidad de catálogo; se monta una vez por
// marca, tipo-equipo y estado-equipo.
type CatalogHandler struct {
	uc  *usecase.CatalogUseCase
	log *logger.Logger
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear marca, tipo o estado de equipo
// @Tags         catalogo
// @Security     Token
// @Accept       json
// @Produce      json
// @Param        entidad  path  string              true  "marca | tipo-equipo | estado-equipo"
// @Param        body     body  dto.CatalogRequest  true  "nombre, estado"
// @Success      200      {object}  dto.CatalogResponse
// @Failure      400      {object}  dto.ValidationErrorResponse
// @Failure      401      {object}  dto.MessageResponse
// @Router       /{entidad} [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CatalogRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar marcas, tipos o estados de equipo
// @Tags         catalogo
// @Security     Token
// @Produce      json
// @Param        entidad  path  string  true  "marca | tipo-equipo | estado-equipo"
// @Success      200      {array}   dto.CatalogResponse
// @Failure      401      {object}  dto.MessageResponse
// @Router       /{entidad} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar marca, tipo o estado de equipo
// @Tags         catalogo
// @Security     Token
// @Accept       json
// @Produce      json
// @Param        entidad  path  string              true  "marca | tipo-equipo | estado-equipo"
// @Param        id       path  string              true  "ID"
// @Param        body     body  dto.CatalogRequest  true  "nombre, estado"
// @Success      200      {object}  dto.CatalogResponse
// @Failure      400      {object}  dto.ValidationErrorResponse
// @Router       /{entidad}/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var in dto.CatalogRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar marca, tipo o estado de equipo
// @Tags         catalogo
// @Security     Token
// @Produce      json
// @Param        entidad  path  string  true  "marca | tipo-equipo | estado-equipo"
// @Param        id       path  string  true  "ID"
// @Success      200      {object}  dto.CatalogResponse
// @Router       /{entidad}/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-equipos/internal/application/dto"
	"github.com/jhoicas/inventario-equipos/internal/application/inventory"
	"github.com/jhoicas/inventario-equipos/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP del inventario de equipos.
type InventoryHandler struct {
	uc     *inventory.InventoryUseCase
	report *inventory.ReportUseCase
	log    *logger.Logger
}

// NewInventoryHandler construye el handler. report puede ser nil (sin endpoint de reporte).
func NewInventoryHandler(uc *inventory.InventoryUseCase, report *inventory.ReportUseCase, log *logger.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, report: report, log: log}
}

// Create godoc
// @Summary      Registrar equipo
// @Description  Valida serial único y que usuario, marca, tipoEquipo y estadoEquipo existan.
// @Tags         inventario
// @Security     Token
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InventoryRequest  true  "equipo"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      401   {object}  dto.MessageResponse
// @Router       /inventario [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.InventoryRequest
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
// @Summary      Listar equipos con referencias expandidas
// @Tags         inventario
// @Security     Token
// @Produce      json
// @Success      200  {array}   dto.InventoryDetailResponse
// @Failure      401  {object}  dto.MessageResponse
// @Router       /inventario [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar equipo
// @Tags         inventario
// @Security     Token
// @Accept       json
// @Produce      json
// @Param        id    path  string                true  "ID del equipo"
// @Param        body  body  dto.InventoryRequest  true  "equipo"
// @Success      200   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Router       /inventario/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.InventoryRequest
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
// @Summary      Eliminar equipo
// @Tags         inventario
// @Security     Token
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.InventoryResponse
// @Router       /inventario/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte PDF del inventario
// @Tags         inventario
// @Security     Token
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      401  {object}  dto.MessageResponse
// @Router       /inventario/reporte [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	pdf, filename, err := h.report.Generate(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

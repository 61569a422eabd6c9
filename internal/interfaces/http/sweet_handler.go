package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Dulceria-api/internal/application/dto"
	"github.com/jhoicas/Dulceria-api/internal/application/sweets"
)

// SweetHandler maneja catálogo y stock (protegido).
type SweetHandler struct {
	uc     *sweets.SweetUseCase
	report sweets.ReportGenerator
}

// NewSweetHandler construye el handler. report puede ser nil (sin reporte PDF).
func NewSweetHandler(uc *sweets.SweetUseCase, report sweets.ReportGenerator) *SweetHandler {
	return &SweetHandler{uc: uc, report: report}
}

// List godoc
// @Summary      Listar dulces
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        search    query  string  false  "Texto en nombre o descripción"
// @Param        category  query  string  false  "Categoría exacta (All = todas)"
// @Success      200  {object}  dto.SweetListResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c *fiber.Ctx) error {
	var q dto.CatalogQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválida"})
	}
	out, err := h.uc.Search(c.UserContext(), q)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías del catálogo
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/sweets/categories [get]
func (h *SweetHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener dulce por ID
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del dulce"
// @Success      200  {object}  dto.SweetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [get]
func (h *SweetHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dulce no encontrado"})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSweetRequest  true  "Datos del dulce"
// @Success      201   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar dulce (parcial)
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del dulce"
// @Param        body  body  dto.UpdateSweetRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSweetRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dulce
// @Description  Responde 204 aunque el dulce no exista.
// @Tags         sweets
// @Security     Bearer
// @Param        id   path  string  true  "ID del dulce"
// @Success      204
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Purchase godoc
// @Summary      Comprar unidades
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del dulce"
// @Param        body  body  dto.StockRequest  true  "quantity > 0"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Purchase(c.UserContext(), c.Params("id"), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Restock godoc
// @Summary      Reponer unidades
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string            true  "ID del dulce"
// @Param        body  body  dto.StockRequest  true  "quantity > 0"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c *fiber.Ctx) error {
	var in dto.StockRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Restock(c.UserContext(), c.Params("id"), in.Quantity)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      Reporte de inventario en PDF
// @Tags         sweets
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Failure      501  {object}  dto.ErrorResponse
// @Router       /api/sweets/report.pdf [get]
func (h *SweetHandler) Report(c *fiber.Ctx) error {
	if h.report == nil {
		return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{Code: "NOT_IMPLEMENTED", Message: "reporte no configurado"})
	}
	out, err := h.uc.InventoryReport(c.UserContext(), h.report)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventario.pdf"`)
	return c.Send(out)
}

package http

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/componentes-api/internal/application/dto"
)

// InventoryHandler maneja componentes y stock (rol bodeguero).
type InventoryHandler struct {
	uc      InventoryService
	metrics MetricsRecorder
}

// NewInventoryHandler construye el handler. rec puede ser nil.
func NewInventoryHandler(uc InventoryService, rec MetricsRecorder) *InventoryHandler {
	if rec == nil {
		rec = nopRecorder{}
	}
	return &InventoryHandler{uc: uc, metrics: rec}
}

// SetPrice godoc
// @Summary      Cambiar precio de un componente
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetPriceRequest  true  "id, value"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/set-price [post]
func (h *InventoryHandler) SetPrice(c *fiber.Ctx) error {
	var in dto.SetPriceRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ID == 0 || in.Value.IsZero() {
		return badRequest(c, "MISSING_DATA", "faltan datos: id y value son requeridos")
	}
	if in.ID < 0 || in.Value.IsNegative() {
		return badRequest(c, "VALIDATION", "id y value deben ser positivos")
	}
	res := h.uc.ChangePrice(c.UserContext(), in.ID, in.Value)
	h.metrics.RecordMutation("change_price", res)
	return writeResult(c, res, fiber.StatusOK, "precio actualizado")
}

// AddComponent godoc
// @Summary      Crear componente
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddComponentRequest  true  "name, price, max_quantity"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/add-component [post]
func (h *InventoryHandler) AddComponent(c *fiber.Ctx) error {
	var in dto.AddComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if strings.TrimSpace(in.Name) == "" || in.Price.IsZero() || in.MaxQuantity == 0 {
		return badRequest(c, "MISSING_DATA", "faltan datos: name, price y max_quantity son requeridos")
	}
	if in.Price.IsNegative() || in.MaxQuantity < 0 {
		return badRequest(c, "VALIDATION", "price y max_quantity deben ser positivos")
	}
	if len(in.Name) > maxNameLen {
		return badRequest(c, "VALIDATION", fmt.Sprintf("name admite hasta %d bytes", maxNameLen))
	}
	res := h.uc.AddComponent(c.UserContext(), in.Name, in.Price, in.MaxQuantity)
	h.metrics.RecordMutation("add_component", res)
	return writeResult(c, res, fiber.StatusCreated, "componente creado")
}

// UpdateComponent godoc
// @Summary      Fijar cantidad en stock de un componente
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateComponentRequest  true  "id, quantity"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/update-component [post]
func (h *InventoryHandler) UpdateComponent(c *fiber.Ctx) error {
	var in dto.UpdateComponentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ID <= 0 || in.Quantity == nil {
		return badRequest(c, "MISSING_DATA", "faltan datos: id y quantity son requeridos")
	}
	res := h.uc.UpdateComponent(c.UserContext(), in.ID, *in.Quantity)
	h.metrics.RecordMutation("update_component", res)
	return writeResult(c, res, fiber.StatusOK, "componente actualizado")
}

// ListComponents godoc
// @Summary      Listar componentes
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ComponentResponse
// @Failure      400  {object}  dto.ErrorResponse  "sin componentes"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/list-components [get]
func (h *InventoryHandler) ListComponents(c *fiber.Ctx) error {
	list, err := h.uc.ListComponents(c.UserContext())
	if err != nil {
		return backendUnavailable(c)
	}
	if len(list) == 0 {
		return badRequest(c, "NO_RECORDS", "no hay componentes")
	}
	out := make([]dto.ComponentResponse, 0, len(list))
	for _, comp := range list {
		out = append(out, dto.ComponentResponse{
			ID:          comp.ID,
			Name:        comp.Name,
			Price:       comp.UnitPrice,
			MaxQuantity: comp.MaxQuantity,
			Quantity:    comp.Quantity,
			UpdatedAt:   comp.UpdatedAt,
		})
	}
	return c.JSON(out)
}

// ListStack godoc
// @Summary      Listar stock disponible
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.StackItemResponse
// @Failure      400  {object}  dto.ErrorResponse  "sin stock"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/list-stack [get]
func (h *InventoryHandler) ListStack(c *fiber.Ctx) error {
	list, err := h.uc.ListStack(c.UserContext())
	if err != nil {
		return backendUnavailable(c)
	}
	if len(list) == 0 {
		return badRequest(c, "NO_RECORDS", "no hay ítems en stock")
	}
	out := make([]dto.StackItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, dto.StackItemResponse{
			ComponentID:   it.ComponentID,
			ComponentName: it.ComponentName,
			Quantity:      it.Quantity,
			MaxQuantity:   it.MaxQuantity,
		})
	}
	return c.JSON(out)
}

// StackReportPDF godoc
// @Summary      Reporte PDF del stock disponible
// @Tags         inventory
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/list-stack/pdf [get]
func (h *InventoryHandler) StackReportPDF(c *fiber.Ctx) error {
	pdf, err := h.uc.StackReportPDF(c.UserContext())
	if err != nil {
		return backendUnavailable(c)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.pdf"`)
	return c.Send(pdf)
}

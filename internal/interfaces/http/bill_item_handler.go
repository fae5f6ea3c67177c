package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/comandas-api/internal/application/billing"
	"github.com/tu-usuario/comandas-api/internal/application/dto"
)

// BillItemHandler maneja las líneas de comanda (POST/GET /api/bills/:id/items).
type BillItemHandler struct {
	uc *billing.BillUseCase
}

// NewBillItemHandler construye el handler.
func NewBillItemHandler(uc *billing.BillUseCase) *BillItemHandler {
	return &BillItemHandler{uc: uc}
}

// AddItem agrega un producto a la comanda descontando estoque en la misma
// transacción. unit_price es opcional (snapshot del precio actual si falta).
func (h *BillItemHandler) AddItem(c *fiber.Ctx) error {
	billID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItemToBill(c.Context(), billing.AddItemInput{
		BillID:    billID,
		StockID:   in.StockID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List lista las líneas de una comanda.
func (h *BillItemHandler) List(c *fiber.Ctx) error {
	billID, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.ListBillItems(c.Context(), billID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

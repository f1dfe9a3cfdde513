package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/approval"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/intake"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain"
)

// OrderHandler maneja las órdenes de compra: intake del empleado, carrito
// propio y el circuito de revisión del administrador.
type OrderHandler struct {
	intakeUC   *intake.IntakeUseCase
	cartUC     *usecase.CartUseCase
	approvalUC *approval.ApprovalUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(intakeUC *intake.IntakeUseCase, cartUC *usecase.CartUseCase, approvalUC *approval.ApprovalUseCase) *OrderHandler {
	return &OrderHandler{intakeUC: intakeUC, cartUC: cartUC, approvalUC: approvalUC}
}

// Submit godoc
// @Summary      Enviar órdenes de compra
// @Description  Crea una orden Pending por cada ítem con cantidad > 0. Los ítems que fallan se reportan sin abortar el lote.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitItemsRequest  true  "mapa product_id -> cantidad"
// @Success      200  {object}  dto.BatchResult
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders [post]
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.intakeUC.SubmitOrder(c.UserContext(), GetUsername(c), in)
	if err != nil {
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Mine godoc
// @Summary      Mis órdenes de compra
// @Tags         orders
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Security     BearerAuth
// @Router       /api/orders/mine [get]
func (h *OrderHandler) Mine(c *fiber.Ctx) error {
	out, err := h.cartUC.MyOrders(GetUsername(c))
	if err != nil {
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Retirar una orden propia del carrito
// @Description  Solo se permite mientras la orden siga Pending.
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) Remove(c *fiber.Ctx) error {
	err := h.cartUC.RemoveOrder(GetUsername(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otro empleado"})
		case domain.ErrAlreadyFinalized:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_FINALIZED", Message: "la orden ya fue aprobada o rechazada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Pending godoc
// @Summary      Órdenes pendientes de revisión
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.OrderResponse
// @Security     BearerAuth
// @Router       /api/admin/orders/pending [get]
func (h *OrderHandler) Pending(c *fiber.Ctx) error {
	out, err := h.approvalUC.ListPendingOrders(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar una orden de compra
// @Description  Aumenta el stock del producto en la cantidad ordenada. Si el producto ya no existe, la aprobación se confirma con una advertencia.
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/orders/{id}/approve [post]
func (h *OrderHandler) Approve(c *fiber.Ctx) error {
	out, err := h.approvalUC.ApproveOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return decisionError(c, err, "orden")
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar una orden de compra
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/orders/{id}/reject [post]
func (h *OrderHandler) Reject(c *fiber.Ctx) error {
	out, err := h.approvalUC.RejectOrder(c.UserContext(), c.Params("id"))
	if err != nil {
		return decisionError(c, err, "orden")
	}
	return c.JSON(out)
}

// decisionError mapea los errores del motor de aprobación a HTTP.
func decisionError(c *fiber.Ctx, err error, kind string) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: kind + " no encontrada"})
	case domain.ErrAlreadyFinalized:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_FINALIZED", Message: "la " + kind + " ya fue aprobada o rechazada"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

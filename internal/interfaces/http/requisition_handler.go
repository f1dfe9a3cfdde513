package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Compras-api/internal/application/approval"
	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/application/intake"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/domain"
)

// RequisitionHandler maneja las requisiciones de stock: intake del empleado,
// listado general y el circuito de revisión del administrador.
type RequisitionHandler struct {
	intakeUC   *intake.IntakeUseCase
	cartUC     *usecase.CartUseCase
	approvalUC *approval.ApprovalUseCase
}

// NewRequisitionHandler construye el handler.
func NewRequisitionHandler(intakeUC *intake.IntakeUseCase, cartUC *usecase.CartUseCase, approvalUC *approval.ApprovalUseCase) *RequisitionHandler {
	return &RequisitionHandler{intakeUC: intakeUC, cartUC: cartUC, approvalUC: approvalUC}
}

// Submit godoc
// @Summary      Enviar requisiciones de stock
// @Description  Crea una requisición Pending por ítem y descuenta la cantidad del stock como reserva. Un ítem sin stock suficiente se reporta sin abortar el lote.
// @Tags         requisitions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitItemsRequest  true  "mapa product_id -> cantidad"
// @Success      200  {object}  dto.BatchResult
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/requisitions [post]
func (h *RequisitionHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitItemsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.intakeUC.SubmitRequisition(c.UserContext(), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión requerida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar requisiciones
// @Tags         requisitions
// @Produce      json
// @Param        limit   query  int  false  "máximo de resultados"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.RequisitionResponse
// @Security     BearerAuth
// @Router       /api/requisitions [get]
func (h *RequisitionHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros de paginación inválidos"})
	}
	page.DefaultPage()
	out, err := h.cartUC.ListRequisitions(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Pending godoc
// @Summary      Requisiciones pendientes de revisión
// @Description  Devuelve las requisiciones Pending y marca awaiting_approval en cada producto referenciado.
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.RequisitionResponse
// @Security     BearerAuth
// @Router       /api/admin/requisitions/pending [get]
func (h *RequisitionHandler) Pending(c *fiber.Ctx) error {
	out, err := h.approvalUC.ListPendingRequisitions(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar una requisición
// @Description  Confirma la reserva hecha en el intake; no modifica el inventario.
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID de la requisición"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/requisitions/{id}/approve [post]
func (h *RequisitionHandler) Approve(c *fiber.Ctx) error {
	out, err := h.approvalUC.ApproveRequisition(c.UserContext(), c.Params("id"))
	if err != nil {
		return decisionError(c, err, "requisición")
	}
	return c.JSON(out)
}

// Reject godoc
// @Summary      Rechazar una requisición
// @Description  Restaura al stock la cantidad reservada en el intake.
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "ID de la requisición"
// @Success      200  {object}  dto.DecisionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/admin/requisitions/{id}/reject [post]
func (h *RequisitionHandler) Reject(c *fiber.Ctx) error {
	out, err := h.approvalUC.RejectRequisition(c.UserContext(), c.Params("id"))
	if err != nil {
		return decisionError(c, err, "requisición")
	}
	return c.JSON(out)
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/crm"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/pkg/validate"
)

// LeadHandler maneja el CRUD de leads, anidado bajo el customer padre.
type LeadHandler struct {
	uc  *crm.LeadUseCase
	val *validate.Validator
}

// NewLeadHandler construye el handler.
func NewLeadHandler(uc *crm.LeadUseCase, val *validate.Validator) *LeadHandler {
	return &LeadHandler{uc: uc, val: val}
}

// customerID valida el parámetro de ruta; un id malformado equivale a inexistente.
func (h *LeadHandler) customerID(c *fiber.Ctx) (string, bool) {
	id := c.Params("customerId")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

// Create godoc
// @Summary      Crear lead bajo un customer
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        customerId  path  string  true  "customer id"
// @Param        body  body  dto.CreateLeadRequest  true  "title, description, value, status opcional"
// @Success      201  {object}  dto.LeadMessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{customerId}/leads [post]
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	customerID, ok := h.customerID(c)
	if !ok {
		return notFound(c, "Customer not found")
	}
	var in dto.CreateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.val.Struct(in); errs != nil {
		return validationError(c, errs)
	}
	lead, err := h.uc.Create(GetUserID(c), customerID, in)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, err, "lead.create")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.LeadMessageResponse{
		Message: "Lead created successfully",
		Lead:    *lead,
	})
}

// List godoc
// @Summary      Listar leads de un customer
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        customerId  path   string  true   "customer id"
// @Param        status      query  string  false  "New|Contacted|Converted|Lost"
// @Success      200  {object}  dto.LeadListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{customerId}/leads [get]
func (h *LeadHandler) List(c *fiber.Ctx) error {
	customerID, ok := h.customerID(c)
	if !ok {
		return notFound(c, "Customer not found")
	}
	var q dto.LeadListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	if errs := h.val.Struct(q); errs != nil {
		return validationError(c, errs)
	}
	out, err := h.uc.List(GetUserID(c), customerID, q)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, err, "lead.list")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        customerId  path  string  true  "customer id"
// @Param        leadId      path  string  true  "lead id"
// @Success      200  {object}  dto.LeadResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{customerId}/leads/{leadId} [get]
func (h *LeadHandler) GetByID(c *fiber.Ctx) error {
	customerID, ok := h.customerID(c)
	if !ok {
		return notFound(c, "Customer not found")
	}
	leadID := c.Params("leadId")
	if _, err := uuid.Parse(leadID); err != nil {
		return notFound(c, "Lead not found")
	}
	lead, err := h.uc.GetByID(GetUserID(c), customerID, leadID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return notFound(c, "Customer not found")
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Lead not found")
		default:
			return internalError(c, err, "lead.getByID")
		}
	}
	return c.JSON(fiber.Map{"lead": lead})
}

// Update godoc
// @Summary      Actualizar un lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        customerId  path  string  true  "customer id"
// @Param        leadId      path  string  true  "lead id"
// @Param        body  body  dto.UpdateLeadRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.LeadMessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{customerId}/leads/{leadId} [put]
func (h *LeadHandler) Update(c *fiber.Ctx) error {
	customerID, ok := h.customerID(c)
	if !ok {
		return notFound(c, "Customer not found")
	}
	leadID := c.Params("leadId")
	if _, err := uuid.Parse(leadID); err != nil {
		return notFound(c, "Lead not found")
	}
	var in dto.UpdateLeadRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.val.Struct(in); errs != nil {
		return validationError(c, errs)
	}
	lead, err := h.uc.Update(GetUserID(c), customerID, leadID, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return notFound(c, "Customer not found")
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Lead not found")
		default:
			return internalError(c, err, "lead.update")
		}
	}
	return c.JSON(dto.LeadMessageResponse{
		Message: "Lead updated successfully",
		Lead:    *lead,
	})
}

// Delete godoc
// @Summary      Eliminar un lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        customerId  path  string  true  "customer id"
// @Param        leadId      path  string  true  "lead id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{customerId}/leads/{leadId} [delete]
func (h *LeadHandler) Delete(c *fiber.Ctx) error {
	customerID, ok := h.customerID(c)
	if !ok {
		return notFound(c, "Customer not found")
	}
	leadID := c.Params("leadId")
	if _, err := uuid.Parse(leadID); err != nil {
		return notFound(c, "Lead not found")
	}
	if err := h.uc.Delete(GetUserID(c), customerID, leadID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCustomerNotFound):
			return notFound(c, "Customer not found")
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Lead not found")
		default:
			return internalError(c, err, "lead.delete")
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Lead deleted successfully"})
}

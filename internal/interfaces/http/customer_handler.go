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

// CustomerHandler maneja el CRUD de customers, siempre acotado al dueño.
type CustomerHandler struct {
	uc  *crm.CustomerUseCase
	val *validate.Validator
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *crm.CustomerUseCase, val *validate.Validator) *CustomerHandler {
	return &CustomerHandler{uc: uc, val: val}
}

// Create godoc
// @Summary      Crear customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateCustomerRequest  true  "name, email, phone, company"
// @Success      201   {object}  dto.CustomerMessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.val.Struct(in); errs != nil {
		return validationError(c, errs)
	}
	customer, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Customer with this email already exists"})
		}
		return internalError(c, err, "customer.create")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CustomerMessageResponse{
		Message:  "Customer created successfully",
		Customer: *customer,
	})
}

// List godoc
// @Summary      Listar customers del usuario
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int     false  "página (>=1, default 1)"
// @Param        limit      query  int     false  "por página (1-100, default 10)"
// @Param        search     query  string  false  "substring sobre name/email/company"
// @Param        sortBy     query  string  false  "name|email|company|createdAt|updatedAt"
// @Param        sortOrder  query  string  false  "asc|desc (default desc)"
// @Success      200  {object}  dto.CustomerListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var q dto.CustomerListQuery
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	if errs := h.val.Struct(q); errs != nil {
		return validationError(c, errs)
	}
	out, err := h.uc.List(GetUserID(c), q)
	if err != nil {
		return internalError(c, err, "customer.list")
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de un customer con sus leads
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "customer id"
// @Success      200  {object}  dto.CustomerDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return notFound(c, "Customer not found")
	}
	out, err := h.uc.GetByID(GetUserID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, err, "customer.getByID")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar un customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "customer id"
// @Param        body  body  dto.UpdateCustomerRequest  true  "campos a actualizar"
// @Success      200  {object}  dto.CustomerMessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return notFound(c, "Customer not found")
	}
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if errs := h.val.Struct(in); errs != nil {
		return validationError(c, errs)
	}
	customer, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Customer not found")
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Customer with this email already exists"})
		default:
			return internalError(c, err, "customer.update")
		}
	}
	return c.JSON(dto.CustomerMessageResponse{
		Message:  "Customer updated successfully",
		Customer: *customer,
	})
}

// Delete godoc
// @Summary      Eliminar un customer y sus leads
// @Tags         customers
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "customer id"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return notFound(c, "Customer not found")
	}
	if err := h.uc.Delete(c.Context(), GetUserID(c), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Customer not found")
		}
		return internalError(c, err, "customer.delete")
	}
	return c.JSON(dto.MessageResponse{Message: "Customer and associated leads deleted successfully"})
}

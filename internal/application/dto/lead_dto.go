package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLeadRequest entrada para crear un lead bajo un customer.
// Value es puntero para distinguir "ausente" de 0 (cero es un valor válido).
type CreateLeadRequest struct {
	Title       string           `json:"title" validate:"required,min=5,max=200"`
	Description string           `json:"description" validate:"required,min=10,max=1000"`
	Status      string           `json:"status" validate:"omitempty,oneof=New Contacted Converted Lost"`
	Value       *decimal.Decimal `json:"value" validate:"required,min=0"`
}

// UpdateLeadRequest entrada para actualizar un lead (todos los campos opcionales).
type UpdateLeadRequest struct {
	Title       string           `json:"title" validate:"omitempty,min=5,max=200"`
	Description string           `json:"description" validate:"omitempty,min=10,max=1000"`
	Status      string           `json:"status" validate:"omitempty,oneof=New Contacted Converted Lost"`
	Value       *decimal.Decimal `json:"value" validate:"omitempty,min=0"`
}

// LeadListQuery parámetros de listado de leads: paginación, filtro por estado y orden.
type LeadListQuery struct {
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Status    string `query:"status" validate:"omitempty,oneof=New Contacted Converted Lost"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=title status value createdAt updatedAt"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// Defaults aplica los valores por defecto: página 1, 10 por página, orden por creación descendente.
func (q *LeadListQuery) Defaults() {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = 10
	}
	if q.SortBy == "" {
		q.SortBy = "createdAt"
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}
}

// LeadResponse salida de un lead.
type LeadResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	Value       decimal.Decimal `json:"value"`
	CustomerID  string          `json:"customerId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// LeadMessageResponse salida de create/update.
type LeadMessageResponse struct {
	Message string       `json:"message"`
	Lead    LeadResponse `json:"lead"`
}

// LeadListResponse listado paginado de leads de un customer.
type LeadListResponse struct {
	Leads      []LeadResponse `json:"leads"`
	Pagination Pagination     `json:"pagination"`
}

package dto

import "time"

// CreateCustomerRequest entrada para crear un customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,phone"`
	Company string `json:"company" validate:"required,min=2,max=100"`
}

// UpdateCustomerRequest entrada para actualizar un customer (todos los campos opcionales).
type UpdateCustomerRequest struct {
	Name    string `json:"name" validate:"omitempty,min=2,max=100"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Company string `json:"company" validate:"omitempty,min=2,max=100"`
}

// CustomerListQuery parámetros de listado: paginación, búsqueda libre y orden.
type CustomerListQuery struct {
	Page      int    `query:"page" validate:"omitempty,min=1"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=100"`
	Search    string `query:"search"`
	SortBy    string `query:"sortBy" validate:"omitempty,oneof=name email company createdAt updatedAt"`
	SortOrder string `query:"sortOrder" validate:"omitempty,oneof=asc desc"`
}

// Defaults aplica los valores por defecto: página 1, 10 por página, orden por creación descendente.
func (q *CustomerListQuery) Defaults() {
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

// CustomerResponse salida de un customer.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerMessageResponse salida de create/update.
type CustomerMessageResponse struct {
	Message  string           `json:"message"`
	Customer CustomerResponse `json:"customer"`
}

// CustomerListResponse listado paginado de customers.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Pagination Pagination         `json:"pagination"`
}

// CustomerDetailResponse detalle de un customer con sus leads (más recientes primero).
type CustomerDetailResponse struct {
	Customer CustomerResponse `json:"customer"`
	Leads    []LeadResponse   `json:"leads"`
}

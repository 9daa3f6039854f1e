package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// LeadFilter parámetros de listado de leads: filtro por estado, orden y paginación.
type LeadFilter struct {
	Status   string // vacío = todos
	SortBy   string // title, status, value, createdAt, updatedAt
	SortDesc bool
	Limit    int
	Offset   int
}

// LeadRepository define el puerto de persistencia para Lead.
// El acotamiento por dueño ocurre un nivel arriba: los use cases verifican
// primero que el customer padre pertenezca al usuario autenticado.
type LeadRepository interface {
	Create(lead *entity.Lead) error
	GetByCustomerAndID(customerID, leadID string) (*entity.Lead, error)
	ListByCustomer(customerID string, f LeadFilter) ([]*entity.Lead, error)
	// ListAllByCustomer devuelve todos los leads del customer, más recientes primero
	// (detalle del customer, sin paginar).
	ListAllByCustomer(customerID string) ([]*entity.Lead, error)
	CountByCustomer(customerID, status string) (int, error)
	Update(lead *entity.Lead) error
	Delete(id string) error
	// DeleteByCustomer elimina todos los leads del customer (cascada del delete).
	DeleteByCustomer(customerID string) error
}

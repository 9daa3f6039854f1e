package repository

import "github.com/tu-usuario/crm-pro/internal/domain/entity"

// CustomerFilter parámetros de listado: búsqueda libre, orden y paginación.
// SortBy usa los nombres de campo de la API (name, email, company, createdAt,
// updatedAt); el adaptador resuelve la columna y cae a createdAt si no lo conoce.
type CustomerFilter struct {
	Search   string
	SortBy   string
	SortDesc bool
	Limit    int
	Offset   int
}

// CustomerRepository define el puerto de persistencia para Customer.
// Todas las lecturas van acotadas por dueño: un customer de otro usuario
// es indistinguible de uno inexistente.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByOwnerAndID(ownerID, id string) (*entity.Customer, error)
	GetByOwnerAndEmail(ownerID, email string) (*entity.Customer, error)
	ListByOwner(ownerID string, f CustomerFilter) ([]*entity.Customer, error)
	CountByOwner(ownerID, search string) (int, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}

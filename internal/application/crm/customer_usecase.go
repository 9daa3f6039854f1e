package crm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// CustomerUseCase casos de uso de customers, siempre acotados al dueño.
// La propiedad se re-verifica en cada operación: nunca se confía en un
// chequeo previo, y un customer ajeno responde igual que uno inexistente.
type CustomerUseCase struct {
	customers repository.CustomerRepository
	leads     repository.LeadRepository
	tx        TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(customers repository.CustomerRepository, leads repository.LeadRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{customers: customers, leads: leads, tx: tx}
}

// Create crea un customer del usuario. Devuelve ErrDuplicate si el dueño ya
// tiene otro customer con ese email.
func (uc *CustomerUseCase) Create(ownerID string, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	email := auth.NormalizeEmail(in.Email)
	existing, err := uc.customers.GetByOwnerAndEmail(ownerID, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     email,
		Phone:     in.Phone,
		Company:   in.Company,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customers.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista los customers del usuario con búsqueda, orden y paginación.
// Una página fuera de rango devuelve lista vacía, no error.
func (uc *CustomerUseCase) List(ownerID string, q dto.CustomerListQuery) (*dto.CustomerListResponse, error) {
	q.Defaults()
	filter := repository.CustomerFilter{
		Search:   q.Search,
		SortBy:   q.SortBy,
		SortDesc: q.SortOrder == "desc",
		Limit:    q.Limit,
		Offset:   (q.Page - 1) * q.Limit,
	}
	list, err := uc.customers.ListByOwner(ownerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.customers.CountByOwner(ownerID, q.Search)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Customers:  out,
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve el customer y sus leads (más recientes primero).
// ErrNotFound si no existe o no pertenece al usuario.
func (uc *CustomerUseCase) GetByID(ownerID, id string) (*dto.CustomerDetailResponse, error) {
	customer, err := uc.customers.GetByOwnerAndID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	leads, err := uc.leads.ListAllByCustomer(id)
	if err != nil {
		return nil, err
	}
	outLeads := make([]dto.LeadResponse, 0, len(leads))
	for _, l := range leads {
		outLeads = append(outLeads, *toLeadResponse(l))
	}
	return &dto.CustomerDetailResponse{
		Customer: *toCustomerResponse(customer),
		Leads:    outLeads,
	}, nil
}

// Update actualiza los campos presentes. ErrNotFound si el customer no es del
// usuario; ErrDuplicate si el nuevo email choca con otro customer del dueño.
func (uc *CustomerUseCase) Update(ownerID, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.customers.GetByOwnerAndID(ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != "" {
		email := auth.NormalizeEmail(in.Email)
		if email != customer.Email {
			existing, err := uc.customers.GetByOwnerAndEmail(ownerID, email)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != id {
				return nil, domain.ErrDuplicate
			}
		}
		customer.Email = email
	}
	if in.Name != "" {
		customer.Name = in.Name
	}
	if in.Phone != "" {
		customer.Phone = in.Phone
	}
	if in.Company != "" {
		customer.Company = in.Company
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customers.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina el customer y todos sus leads en una sola transacción:
// ningún lead queda huérfano aunque el proceso caiga a mitad de camino.
func (uc *CustomerUseCase) Delete(ctx context.Context, ownerID, id string) error {
	customer, err := uc.customers.GetByOwnerAndID(ownerID, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.tx.Run(ctx, func(customers repository.CustomerRepository, leads repository.LeadRepository) error {
		if err := leads.DeleteByCustomer(id); err != nil {
			return err
		}
		return customers.Delete(id)
	})
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Company:   c.Company,
		OwnerID:   c.OwnerID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

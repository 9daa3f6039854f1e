package crm

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

// LeadUseCase casos de uso de leads. Todas las operaciones verifican primero
// que el customer padre pertenezca al usuario; si no, ErrCustomerNotFound (la
// existencia de recursos ajenos no se revela).
type LeadUseCase struct {
	customers repository.CustomerRepository
	leads     repository.LeadRepository
}

// NewLeadUseCase construye el caso de uso.
func NewLeadUseCase(customers repository.CustomerRepository, leads repository.LeadRepository) *LeadUseCase {
	return &LeadUseCase{customers: customers, leads: leads}
}

// ownedCustomer carga el customer acotado por dueño; nil significa
// ErrCustomerNotFound, distinto de un lead inexistente.
func (uc *LeadUseCase) ownedCustomer(ownerID, customerID string) error {
	customer, err := uc.customers.GetByOwnerAndID(ownerID, customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrCustomerNotFound
	}
	return nil
}

// Create crea un lead bajo un customer del usuario. Status por defecto: New.
func (uc *LeadUseCase) Create(ownerID, customerID string, in dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if err := uc.ownedCustomer(ownerID, customerID); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = entity.LeadStatusNew
	}
	now := time.Now()
	lead := &entity.Lead{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Status:      status,
		Value:       *in.Value,
		CustomerID:  customerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.leads.Create(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// List lista los leads del customer con filtro por estado, orden y paginación.
func (uc *LeadUseCase) List(ownerID, customerID string, q dto.LeadListQuery) (*dto.LeadListResponse, error) {
	if err := uc.ownedCustomer(ownerID, customerID); err != nil {
		return nil, err
	}
	q.Defaults()
	filter := repository.LeadFilter{
		Status:   q.Status,
		SortBy:   q.SortBy,
		SortDesc: q.SortOrder == "desc",
		Limit:    q.Limit,
		Offset:   (q.Page - 1) * q.Limit,
	}
	list, err := uc.leads.ListByCustomer(customerID, filter)
	if err != nil {
		return nil, err
	}
	total, err := uc.leads.CountByCustomer(customerID, q.Status)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LeadResponse, 0, len(list))
	for _, l := range list {
		out = append(out, *toLeadResponse(l))
	}
	return &dto.LeadListResponse{
		Leads:      out,
		Pagination: dto.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// GetByID devuelve un lead del customer. ErrNotFound si el lead no existe.
func (uc *LeadUseCase) GetByID(ownerID, customerID, leadID string) (*dto.LeadResponse, error) {
	if err := uc.ownedCustomer(ownerID, customerID); err != nil {
		return nil, err
	}
	lead, err := uc.leads.GetByCustomerAndID(customerID, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	return toLeadResponse(lead), nil
}

// Update actualiza los campos presentes del lead.
func (uc *LeadUseCase) Update(ownerID, customerID, leadID string, in dto.UpdateLeadRequest) (*dto.LeadResponse, error) {
	if err := uc.ownedCustomer(ownerID, customerID); err != nil {
		return nil, err
	}
	lead, err := uc.leads.GetByCustomerAndID(customerID, leadID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		lead.Title = in.Title
	}
	if in.Description != "" {
		lead.Description = in.Description
	}
	if in.Status != "" {
		lead.Status = in.Status
	}
	if in.Value != nil {
		lead.Value = *in.Value
	}
	lead.UpdatedAt = time.Now()
	if err := uc.leads.Update(lead); err != nil {
		return nil, err
	}
	return toLeadResponse(lead), nil
}

// Delete elimina un lead del customer.
func (uc *LeadUseCase) Delete(ownerID, customerID, leadID string) error {
	if err := uc.ownedCustomer(ownerID, customerID); err != nil {
		return err
	}
	lead, err := uc.leads.GetByCustomerAndID(customerID, leadID)
	if err != nil {
		return err
	}
	if lead == nil {
		return domain.ErrNotFound
	}
	return uc.leads.Delete(lead.ID)
}

func toLeadResponse(l *entity.Lead) *dto.LeadResponse {
	if l == nil {
		return nil
	}
	return &dto.LeadResponse{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Status:      l.Status,
		Value:       l.Value,
		CustomerID:  l.CustomerID,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

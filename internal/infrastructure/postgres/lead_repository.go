package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.LeadRepository = (*LeadRepo)(nil)

// LeadRepo implementación de LeadRepository (usable con pool o tx).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// leadSortColumn resuelve el campo de orden de la API a una columna.
func leadSortColumn(field string) string {
	switch field {
	case "title":
		return "title"
	case "status":
		return "status"
	case "value":
		return "value"
	case "updatedAt":
		return "updated_at"
	default:
		return "created_at"
	}
}

// Create persiste un nuevo lead.
func (r *LeadRepo) Create(lead *entity.Lead) error {
	query := `
		INSERT INTO leads (id, title, description, status, value, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Title, lead.Description, lead.Status, lead.Value,
		lead.CustomerID, lead.CreatedAt, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert lead: %w", err)
	}
	return nil
}

// GetByCustomerAndID obtiene un lead por customer e ID. (nil, nil) si no existe
// o cuelga de otro customer.
func (r *LeadRepo) GetByCustomerAndID(customerID, leadID string) (*entity.Lead, error) {
	query := `
		SELECT id, title, description, status, value, customer_id, created_at, updated_at
		FROM leads WHERE customer_id = $1 AND id = $2`
	var l entity.Lead
	err := r.q.QueryRow(context.Background(), query, customerID, leadID).Scan(
		&l.ID, &l.Title, &l.Description, &l.Status, &l.Value, &l.CustomerID, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lead: %w", err)
	}
	return &l, nil
}

// ListByCustomer lista leads del customer con filtro por estado, orden y paginación.
func (r *LeadRepo) ListByCustomer(customerID string, f repository.LeadFilter) ([]*entity.Lead, error) {
	query := fmt.Sprintf(`
		SELECT id, title, description, status, value, customer_id, created_at, updated_at
		FROM leads
		WHERE customer_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY %s %s
		LIMIT $3 OFFSET $4`,
		leadSortColumn(f.SortBy), sortDirection(f.SortDesc))
	rows, err := r.q.Query(context.Background(), query, customerID, f.Status, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

// ListAllByCustomer devuelve todos los leads del customer, más recientes primero.
func (r *LeadRepo) ListAllByCustomer(customerID string) ([]*entity.Lead, error) {
	query := `
		SELECT id, title, description, status, value, customer_id, created_at, updated_at
		FROM leads WHERE customer_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list all leads: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

func scanLeads(rows pgx.Rows) ([]*entity.Lead, error) {
	var list []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.Status, &l.Value, &l.CustomerID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// CountByCustomer cuenta los leads del customer, opcionalmente por estado.
func (r *LeadRepo) CountByCustomer(customerID, status string) (int, error) {
	query := `SELECT COUNT(*) FROM leads WHERE customer_id = $1 AND ($2 = '' OR status = $2)`
	var n int
	if err := r.q.QueryRow(context.Background(), query, customerID, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return n, nil
}

// Update actualiza un lead.
func (r *LeadRepo) Update(lead *entity.Lead) error {
	query := `
		UPDATE leads SET title = $2, description = $3, status = $4, value = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		lead.ID, lead.Title, lead.Description, lead.Status, lead.Value, lead.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	return nil
}

// Delete elimina un lead por ID.
func (r *LeadRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todos los leads del customer (cascada del delete).
func (r *LeadRepo) DeleteByCustomer(customerID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM leads WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete leads by customer: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/crm-pro/internal/domain"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// customerSortColumn resuelve el campo de orden de la API a una columna.
// Cualquier valor desconocido cae a created_at: el ORDER BY jamás interpola
// entrada del cliente.
func customerSortColumn(field string) string {
	switch field {
	case "name":
		return "name"
	case "email":
		return "email"
	case "company":
		return "company"
	case "updatedAt":
		return "updated_at"
	default:
		return "created_at"
	}
}

func sortDirection(desc bool) string {
	if desc {
		return "DESC"
	}
	return "ASC"
}

// Create persiste un nuevo customer.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, company, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Company,
		customer.OwnerID, customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByOwnerAndID obtiene un customer por dueño e ID. (nil, nil) si no existe
// o pertenece a otro usuario.
func (r *CustomerRepo) GetByOwnerAndID(ownerID, id string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, company, owner_id, created_at, updated_at
		FROM customers WHERE owner_id = $1 AND id = $2`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, ownerID, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// GetByOwnerAndEmail obtiene un customer por dueño y email (ya normalizado).
func (r *CustomerRepo) GetByOwnerAndEmail(ownerID, email string) (*entity.Customer, error) {
	query := `
		SELECT id, name, email, phone, company, owner_id, created_at, updated_at
		FROM customers WHERE owner_id = $1 AND email = $2`
	var c entity.Customer
	err := r.q.QueryRow(context.Background(), query, ownerID, email).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer by email: %w", err)
	}
	return &c, nil
}

// ListByOwner lista customers del dueño con búsqueda libre (substring
// case-insensitive sobre name/email/company), orden y paginación.
func (r *CustomerRepo) ListByOwner(ownerID string, f repository.CustomerFilter) ([]*entity.Customer, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, phone, company, owner_id, created_at, updated_at
		FROM customers
		WHERE owner_id = $1
		  AND ($2 = '' OR name ILIKE '%%' || $2 || '%%' OR email ILIKE '%%' || $2 || '%%' OR company ILIKE '%%' || $2 || '%%')
		ORDER BY %s %s
		LIMIT $3 OFFSET $4`,
		customerSortColumn(f.SortBy), sortDirection(f.SortDesc))
	rows, err := r.q.Query(context.Background(), query, ownerID, f.Search, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountByOwner cuenta los customers del dueño que cumplen la búsqueda.
func (r *CustomerRepo) CountByOwner(ownerID, search string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM customers
		WHERE owner_id = $1
		  AND ($2 = '' OR name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%' OR company ILIKE '%' || $2 || '%')`
	var n int
	if err := r.q.QueryRow(context.Background(), query, ownerID, search).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// Update actualiza un customer.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $2, email = $3, phone = $4, company = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Company, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un customer por ID.
func (r *CustomerRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

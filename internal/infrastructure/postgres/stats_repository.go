package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

var _ repository.StatsRepository = (*StatsRepo)(nil)

// StatsRepo consultas de solo lectura para el dashboard.
// Los leads se acotan al dueño vía join con customers: un lead cuenta
// únicamente si su customer pertenece al usuario.
type StatsRepo struct {
	pool *pgxpool.Pool
}

// NewStatsRepository construye el adaptador de estadísticas.
func NewStatsRepository(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// CountCustomers cuenta los customers del dueño.
func (r *StatsRepo) CountCustomers(ctx context.Context, ownerID string) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE owner_id = $1`, ownerID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("stats.CountCustomers: %w", err)
	}
	return n, nil
}

// CountLeads cuenta los leads cuyos customers pertenecen al dueño.
func (r *StatsRepo) CountLeads(ctx context.Context, ownerID string) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM leads l
	JOIN customers c ON c.id = l.customer_id
	WHERE c.owner_id = $1`
	var n int64
	if err := r.pool.QueryRow(ctx, query, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.CountLeads: %w", err)
	}
	return n, nil
}

// CountLeadsSince cuenta los leads del dueño creados a partir de `since`.
func (r *StatsRepo) CountLeadsSince(ctx context.Context, ownerID string, since time.Time) (int64, error) {
	const query = `
	SELECT COUNT(*)
	FROM leads l
	JOIN customers c ON c.id = l.customer_id
	WHERE c.owner_id = $1
	  AND l.created_at >= $2`
	var n int64
	if err := r.pool.QueryRow(ctx, query, ownerID, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("stats.CountLeadsSince: %w", err)
	}
	return n, nil
}

// LeadsByStatus agrupa los leads del dueño por estado: cuántos y valor sumado,
// ordenado por count descendente.
func (r *StatsRepo) LeadsByStatus(ctx context.Context, ownerID string) ([]repository.StatusCount, error) {
	const query = `
	SELECT
	    l.status,
	    COUNT(*)                      AS lead_count,
	    COALESCE(SUM(l.value), 0)     AS total_value
	FROM leads l
	JOIN customers c ON c.id = l.customer_id
	WHERE c.owner_id = $1
	GROUP BY l.status
	ORDER BY lead_count DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("stats.LeadsByStatus: %w", err)
	}
	defer rows.Close()

	var results []repository.StatusCount
	for rows.Next() {
		var row repository.StatusCount
		if err := rows.Scan(&row.Status, &row.Count, &row.TotalValue); err != nil {
			return nil, fmt.Errorf("stats.LeadsByStatus scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopCustomersByLeads devuelve los `limit` customers del dueño con más leads,
// anotados con número de leads, valor sumado, nombre y empresa.
func (r *StatsRepo) TopCustomersByLeads(ctx context.Context, ownerID string, limit int) ([]repository.CustomerLeads, error) {
	const query = `
	SELECT
	    l.customer_id,
	    COUNT(*)                      AS lead_count,
	    COALESCE(SUM(l.value), 0)     AS total_value,
	    c.name                        AS customer_name,
	    c.company                     AS customer_company
	FROM leads l
	JOIN customers c ON c.id = l.customer_id
	WHERE c.owner_id = $1
	GROUP BY l.customer_id, c.name, c.company
	ORDER BY lead_count DESC
	LIMIT $2`

	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("stats.TopCustomersByLeads: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerLeads
	for rows.Next() {
		var row repository.CustomerLeads
		if err := rows.Scan(&row.CustomerID, &row.LeadCount, &row.TotalValue, &row.CustomerName, &row.CustomerCompany); err != nil {
			return nil, fmt.Errorf("stats.TopCustomersByLeads scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// StatusCount agrupación de leads por estado: cuántos y valor sumado.
type StatusCount struct {
	Status     string
	Count      int64
	TotalValue decimal.Decimal
}

// CustomerLeads ranking de un customer por número de leads.
type CustomerLeads struct {
	CustomerID      string
	LeadCount       int64
	TotalValue      decimal.Decimal
	CustomerName    string
	CustomerCompany string
}

// StatsRepository consultas de solo lectura para el dashboard.
// Todas las consultas se acotan al dueño: leads se cuentan únicamente si su
// customer pertenece al usuario (join por customer_id).
type StatsRepository interface {
	CountCustomers(ctx context.Context, ownerID string) (int64, error)
	CountLeads(ctx context.Context, ownerID string) (int64, error)
	CountLeadsSince(ctx context.Context, ownerID string, since time.Time) (int64, error)
	LeadsByStatus(ctx context.Context, ownerID string) ([]StatusCount, error)
	TopCustomersByLeads(ctx context.Context, ownerID string, limit int) ([]CustomerLeads, error)
}

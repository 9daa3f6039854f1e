package dto

import "github.com/shopspring/decimal"

// StatsSummaryDTO contadores globales del dashboard, acotados al usuario.
type StatsSummaryDTO struct {
	TotalCustomers int64 `json:"totalCustomers"`
	TotalLeads     int64 `json:"totalLeads"`
	RecentLeads    int64 `json:"recentLeads"`   // creados en los últimos 30 días
	LeadsLastWeek  int64 `json:"leadsLastWeek"` // creados en los últimos 7 días
}

// StatusGroupDTO agrupación de leads por estado. La clave _id conserva el
// nombre que el dashboard ya consume.
type StatusGroupDTO struct {
	Status     string          `json:"_id"`
	Count      int64           `json:"count"`
	TotalValue decimal.Decimal `json:"totalValue"`
}

// TopCustomerDTO entrada del ranking de customers por número de leads.
type TopCustomerDTO struct {
	CustomerID      string          `json:"_id"`
	LeadCount       int64           `json:"leadCount"`
	TotalValue      decimal.Decimal `json:"totalValue"`
	CustomerName    string          `json:"customerName"`
	CustomerCompany string          `json:"customerCompany"`
}

// DashboardStatsDTO respuesta completa de GET /dashboard/stats.
// Snapshot best-effort: se recalcula desde cero en cada request.
type DashboardStatsDTO struct {
	Stats              StatsSummaryDTO            `json:"stats"`
	LeadsByStatus      []StatusGroupDTO           `json:"leadsByStatus"`
	TotalValueByStatus map[string]decimal.Decimal `json:"totalValueByStatus"`
	TopCustomers       []TopCustomerDTO           `json:"topCustomers"`
}

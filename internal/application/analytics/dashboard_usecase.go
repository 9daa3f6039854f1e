// Package analytics contiene el caso de uso del dashboard: contadores y
// agrupaciones sobre los customers y leads del usuario autenticado.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain/repository"
)

const dashboardTopCustomers = 5 // tamaño del ranking de customers en el widget

// Ventanas de conteo "recientes", medidas desde el instante del request.
const (
	recentWindow   = 30 * 24 * time.Hour
	lastWeekWindow = 7 * 24 * time.Hour
)

// DashboardUseCase genera el snapshot de estadísticas del dashboard.
//
// Fuente de datos: StatsRepository (consultas read-only). Sin caché ni
// mantenimiento incremental: cada request recalcula desde cero, y las
// consultas no son atómicas entre sí (snapshot best-effort).
type DashboardUseCase struct {
	statsRepo repository.StatsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(statsRepo repository.StatsRepository) *DashboardUseCase {
	return &DashboardUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStatsDTO para el usuario indicado.
//
// Cinco consultas en paralelo:
//  1. CountCustomers                 → totalCustomers
//  2. CountLeads                     → totalLeads
//  3. CountLeadsSince(30d) y (7d)    → recentLeads + leadsLastWeek
//  4. LeadsByStatus                  → leadsByStatus + totalValueByStatus
//  5. TopCustomersByLeads(5)         → topCustomers
func (uc *DashboardUseCase) GetStats(ctx context.Context, ownerID string) (*dto.DashboardStatsDTO, error) {
	now := time.Now()

	type countResult struct {
		n   int64
		err error
	}
	type statusResult struct {
		groups []repository.StatusCount
		err    error
	}
	type topResult struct {
		rows []repository.CustomerLeads
		err  error
	}

	customersCh := make(chan countResult, 1)
	leadsCh := make(chan countResult, 1)
	recentCh := make(chan countResult, 1)
	weekCh := make(chan countResult, 1)
	statusCh := make(chan statusResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		n, err := uc.statsRepo.CountCustomers(ctx, ownerID)
		customersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountLeads(ctx, ownerID)
		leadsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountLeadsSince(ctx, ownerID, now.Add(-recentWindow))
		recentCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.statsRepo.CountLeadsSince(ctx, ownerID, now.Add(-lastWeekWindow))
		weekCh <- countResult{n, err}
	}()
	go func() {
		groups, err := uc.statsRepo.LeadsByStatus(ctx, ownerID)
		statusCh <- statusResult{groups, err}
	}()
	go func() {
		rows, err := uc.statsRepo.TopCustomersByLeads(ctx, ownerID, dashboardTopCustomers)
		topCh <- topResult{rows, err}
	}()

	customers := <-customersCh
	leads := <-leadsCh
	recent := <-recentCh
	week := <-weekCh
	status := <-statusCh
	top := <-topCh

	if customers.err != nil {
		return nil, fmt.Errorf("dashboard: total customers: %w", customers.err)
	}
	if leads.err != nil {
		return nil, fmt.Errorf("dashboard: total leads: %w", leads.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: leads últimos 30 días: %w", recent.err)
	}
	if week.err != nil {
		return nil, fmt.Errorf("dashboard: leads últimos 7 días: %w", week.err)
	}
	if status.err != nil {
		return nil, fmt.Errorf("dashboard: leads por estado: %w", status.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top customers: %w", top.err)
	}

	// Agrupaciones por estado + mapa derivado estado -> valor sumado.
	byStatus := make([]dto.StatusGroupDTO, 0, len(status.groups))
	valueByStatus := make(map[string]decimal.Decimal, len(status.groups))
	for _, g := range status.groups {
		byStatus = append(byStatus, dto.StatusGroupDTO{
			Status:     g.Status,
			Count:      g.Count,
			TotalValue: g.TotalValue,
		})
		valueByStatus[g.Status] = g.TotalValue
	}

	topOut := make([]dto.TopCustomerDTO, 0, len(top.rows))
	for _, row := range top.rows {
		topOut = append(topOut, dto.TopCustomerDTO{
			CustomerID:      row.CustomerID,
			LeadCount:       row.LeadCount,
			TotalValue:      row.TotalValue,
			CustomerName:    row.CustomerName,
			CustomerCompany: row.CustomerCompany,
		})
	}

	return &dto.DashboardStatsDTO{
		Stats: dto.StatsSummaryDTO{
			TotalCustomers: customers.n,
			TotalLeads:     leads.n,
			RecentLeads:    recent.n,
			LeadsLastWeek:  week.n,
		},
		LeadsByStatus:      byStatus,
		TotalValueByStatus: valueByStatus,
		TopCustomers:       topOut,
	}, nil
}

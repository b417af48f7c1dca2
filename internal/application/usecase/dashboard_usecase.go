package usecase

import (
	"time"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/internal/views"
)

// DashboardUseCase números do painel inicial.
type DashboardUseCase struct {
	store *store.Store
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(s *store.Store) *DashboardUseCase {
	return &DashboardUseCase{store: s}
}

// Stats calcula os números do painel. A data de referência é computada uma
// única vez e usada em todos os filtros, para que os contadores da mesma
// tela nunca discordem entre si.
func (uc *DashboardUseCase) Stats() *dto.DashboardResponse {
	now := time.Now()
	stats := views.Dashboard(uc.store.Clients(), uc.store.Orders(), uc.store.Pendencies(), now)
	return &dto.DashboardResponse{
		Date:           now.Format("2006-01-02"),
		SalesToday:     stats.SalesToday,
		FinancialToday: stats.FinancialToday,
		BirthdaysToday: stats.BirthdaysToday,
		OpenPendencies: stats.OpenPendencies,
		LowStockCount:  len(views.LowStock(uc.store.Products())),
	}
}

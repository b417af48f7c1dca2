package usecase

import (
	"time"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/store"
)

// PendencyUseCase casos de uso da tela de pendências.
type PendencyUseCase struct {
	store *store.Store
}

// NewPendencyUseCase constrói o caso de uso.
func NewPendencyUseCase(s *store.Store) *PendencyUseCase {
	return &PendencyUseCase{store: s}
}

// Create abre uma pendência.
func (uc *PendencyUseCase) Create(in dto.CreatePendencyRequest) (*dto.PendencyResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	severity := entity.Severity(in.Severity)
	if !severity.Valid() {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	created := uc.store.AddPendency(entity.Pendency{
		Title:       in.Title,
		Description: in.Description,
		Severity:    severity,
		Date:        date,
	})
	return toPendencyResponse(created), nil
}

// List devolve as pendências abertas na ordem de inserção.
func (uc *PendencyUseCase) List() *dto.PendencyListResponse {
	pendencies := uc.store.Pendencies()
	items := make([]dto.PendencyResponse, 0, len(pendencies))
	for _, p := range pendencies {
		items = append(items, *toPendencyResponse(p))
	}
	return &dto.PendencyListResponse{Items: items, Total: len(items)}
}

// Resolve encerra a pendência, removendo-a. Não há trilha de auditoria.
func (uc *PendencyUseCase) Resolve(id string) error {
	if _, ok := uc.store.PendencyByID(id); !ok {
		return domain.ErrNotFound
	}
	uc.store.ResolvePendency(id)
	return nil
}

func toPendencyResponse(p entity.Pendency) *dto.PendencyResponse {
	return &dto.PendencyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Severity:    string(p.Severity),
		Date:        p.Date,
	}
}

package usecase

import (
	"time"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/internal/views"
)

// BirthdayUseCase casos de uso da tela de aniversariantes.
type BirthdayUseCase struct {
	store *store.Store
}

// NewBirthdayUseCase constrói o caso de uso.
func NewBirthdayUseCase(s *store.Store) *BirthdayUseCase {
	return &BirthdayUseCase{store: s}
}

// List devolve os aniversariantes do dia ou do mês corrente.
func (uc *BirthdayUseCase) List(mode string) (*dto.ClientListResponse, error) {
	m, err := parseBirthdayMode(mode)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	filtered := views.Birthdays(uc.store.Clients(), int(now.Month()), now.Day(), m)
	items := make([]dto.ClientResponse, 0, len(filtered))
	for _, c := range filtered {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Total: len(items)}, nil
}

// Notify compõe os deep links da campanha de aniversário para os clientes
// selecionados (todos os aniversariantes do filtro, se a seleção vier vazia).
func (uc *BirthdayUseCase) Notify(mode string, in dto.NotifyRequest) (*dto.NotifyResponse, error) {
	m, err := parseBirthdayMode(mode)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	template := uc.store.Settings().Templates.Birthday
	candidates := views.Birthdays(uc.store.Clients(), int(now.Month()), now.Day(), m)
	return composeLinks(candidates, in.ClientIDs, template), nil
}

func parseBirthdayMode(mode string) (views.BirthdayMode, error) {
	switch views.BirthdayMode(mode) {
	case views.BirthdayToday, "":
		return views.BirthdayToday, nil
	case views.BirthdayMonth:
		return views.BirthdayMonth, nil
	}
	return "", domain.ErrInvalidInput
}

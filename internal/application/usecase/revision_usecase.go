package usecase

import (
	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/internal/views"
	"github.com/yurizinlala/bike-erp/pkg/whatsapp"
)

// RevisionUseCase casos de uso da tela de controle de revisões.
type RevisionUseCase struct {
	store *store.Store
}

// NewRevisionUseCase constrói o caso de uso.
func NewRevisionUseCase(s *store.Store) *RevisionUseCase {
	return &RevisionUseCase{store: s}
}

// List devolve os clientes do balde pedido (15d, 20d, 45d ou agenda).
func (uc *RevisionUseCase) List(bucket string) (*dto.ClientListResponse, error) {
	b := views.RevisionBucket(bucket)
	if !b.Valid() {
		return nil, domain.ErrInvalidInput
	}
	filtered := views.RevisionDue(uc.store.Clients(), b)
	items := make([]dto.ClientResponse, 0, len(filtered))
	for _, c := range filtered {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Total: len(items)}, nil
}

// Notify compõe os deep links do disparo de lembrete de revisão para os
// clientes selecionados do balde (todos, se a seleção vier vazia). Nada é
// enviado pela aplicação: cada link abre o chat com o texto do template.
func (uc *RevisionUseCase) Notify(bucket string, in dto.NotifyRequest) (*dto.NotifyResponse, error) {
	b := views.RevisionBucket(bucket)
	if !b.Valid() {
		return nil, domain.ErrInvalidInput
	}
	template := uc.store.Settings().Templates.Revision15d
	candidates := views.RevisionDue(uc.store.Clients(), b)
	return composeLinks(candidates, in.ClientIDs, template), nil
}

func composeLinks(candidates []entity.Client, selected []string, template string) *dto.NotifyResponse {
	wanted := make(map[string]bool, len(selected))
	for _, id := range selected {
		wanted[id] = true
	}
	links := make([]dto.CampaignLink, 0, len(candidates))
	for _, c := range candidates {
		if len(wanted) > 0 && !wanted[c.ID] {
			continue
		}
		text := whatsapp.RenderTemplate(template, c.Name)
		links = append(links, dto.CampaignLink{
			ClientID: c.ID,
			Name:     c.Name,
			Phone:    c.Phone,
			URL:      whatsapp.Link(c.Phone, text),
		})
	}
	return &dto.NotifyResponse{Links: links, Total: len(links)}
}

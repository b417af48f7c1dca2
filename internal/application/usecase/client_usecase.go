package usecase

import (
	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/domain/ident"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/internal/views"
	"github.com/yurizinlala/bike-erp/pkg/whatsapp"
)

// ClientUseCase casos de uso da tela de clientes.
type ClientUseCase struct {
	store *store.Store
}

// NewClientUseCase constrói o caso de uso.
func NewClientUseCase(s *store.Store) *ClientUseCase {
	return &ClientUseCase{store: s}
}

// Create cadastra um cliente. Nome e telefone são obrigatórios; aniversário,
// quando informado, precisa ser um "MM-DD" válido.
func (uc *ClientUseCase) Create(in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if in.Name == "" || in.Phone == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BirthDate != "" {
		if _, _, ok := views.ParseBirthDate(in.BirthDate); !ok {
			return nil, domain.ErrInvalidInput
		}
	}
	created := uc.store.AddClient(entity.Client{
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		BirthDate: in.BirthDate,
		Notes:     in.Notes,
		Address:   in.Address,
	})
	return toClientResponse(created), nil
}

// GetByID obtém um cliente pelo id.
func (uc *ClientUseCase) GetByID(id string) (*dto.ClientResponse, error) {
	c, ok := uc.store.ClientByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toClientResponse(c), nil
}

// List busca clientes por nome (sem distinção de caixa ou acentos) ou
// trecho de telefone. Termo vazio lista todos.
func (uc *ClientUseCase) List(term string) *dto.ClientListResponse {
	filtered := views.SearchClients(uc.store.Clients(), term)
	items := make([]dto.ClientResponse, 0, len(filtered))
	for _, c := range filtered {
		items = append(items, *toClientResponse(c))
	}
	return &dto.ClientListResponse{Items: items, Total: len(items)}
}

// Update atualiza parcialmente um cliente, inclusive os campos derivados,
// que são responsabilidade de quem chama.
func (uc *ClientUseCase) Update(id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if _, ok := uc.store.ClientByID(id); !ok {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.BirthDate != nil && *in.BirthDate != "" {
		if _, _, ok := views.ParseBirthDate(*in.BirthDate); !ok {
			return nil, domain.ErrInvalidInput
		}
	}
	uc.store.UpdateClient(id, store.ClientPatch{
		Name:                  in.Name,
		Phone:                 in.Phone,
		Email:                 in.Email,
		BirthDate:             in.BirthDate,
		Notes:                 in.Notes,
		Address:               in.Address,
		LastPurchaseDate:      in.LastPurchaseDate,
		DaysSinceLastPurchase: in.DaysSinceLastPurchase,
		NextRevisionDate:      in.NextRevisionDate,
		RevisionStatus:        in.RevisionStatus,
		IsScheduled:           in.IsScheduled,
		ScheduledDate:         in.ScheduledDate,
	})
	c, _ := uc.store.ClientByID(id)
	return toClientResponse(c), nil
}

// AddPurchase acrescenta uma compra ao histórico e atualiza os campos
// derivados de última compra.
func (uc *ClientUseCase) AddPurchase(id string, in dto.AddPurchaseRequest) (*dto.ClientResponse, error) {
	c, ok := uc.store.ClientByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.ProductName == "" {
		return nil, domain.ErrInvalidInput
	}
	purchases := append(c.Purchases, entity.PurchaseHistory{
		ID:          ident.New(ident.PrefixHistory),
		ProductName: in.ProductName,
		Date:        in.Date,
		Value:       in.Value,
	})
	zero := 0
	uc.store.UpdateClient(id, store.ClientPatch{
		Purchases:             &purchases,
		LastPurchaseDate:      &in.Date,
		DaysSinceLastPurchase: &zero,
	})
	c, _ = uc.store.ClientByID(id)
	return toClientResponse(c), nil
}

// AddRevision acrescenta uma revisão executada ao histórico do cliente.
func (uc *ClientUseCase) AddRevision(id string, in dto.AddRevisionRequest) (*dto.ClientResponse, error) {
	c, ok := uc.store.ClientByID(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	if in.Description == "" {
		return nil, domain.ErrInvalidInput
	}
	revisions := append(c.Revisions, entity.RevisionHistory{
		ID:          ident.New(ident.PrefixHistory),
		Date:        in.Date,
		Description: in.Description,
		Cost:        in.Cost,
		Mechanic:    in.Mechanic,
	})
	status := entity.RevisionOK
	scheduled := false
	uc.store.UpdateClient(id, store.ClientPatch{
		Revisions:      &revisions,
		RevisionStatus: &status,
		IsScheduled:    &scheduled,
	})
	c, _ = uc.store.ClientByID(id)
	return toClientResponse(c), nil
}

// Delete remove um cliente. Sem cascata: os pedidos dele permanecem.
func (uc *ClientUseCase) Delete(id string) {
	uc.store.DeleteClient(id)
}

func toClientResponse(c entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:                    c.ID,
		Name:                  c.Name,
		Phone:                 c.Phone,
		Email:                 c.Email,
		BirthDate:             c.BirthDate,
		Notes:                 c.Notes,
		Address:               c.Address,
		Purchases:             c.Purchases,
		Revisions:             c.Revisions,
		LastPurchaseDate:      c.LastPurchaseDate,
		DaysSinceLastPurchase: c.DaysSinceLastPurchase,
		NextRevisionDate:      c.NextRevisionDate,
		RevisionStatus:        c.RevisionStatus,
		IsScheduled:           c.IsScheduled,
		ScheduledDate:         c.ScheduledDate,
		WhatsAppLink:          whatsapp.Link(c.Phone, ""),
	}
}

package usecase

import (
	"time"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/domain"
	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/store"
	"github.com/yurizinlala/bike-erp/internal/views"
)

// RentalUseCase casos de uso da tela de aluguel de bikes.
type RentalUseCase struct {
	store *store.Store
}

// NewRentalUseCase constrói o caso de uso.
func NewRentalUseCase(s *store.Store) *RentalUseCase {
	return &RentalUseCase{store: s}
}

// Create abre um aluguel ativo.
func (uc *RentalUseCase) Create(in dto.CreateRentalRequest) (*dto.RentalResponse, error) {
	if in.ClientName == "" || in.Bike == "" || in.DueDate == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.DueDate); err != nil {
		return nil, domain.ErrInvalidInput
	}
	created := uc.store.AddRental(entity.Rental{
		ClientName: in.ClientName,
		Bike:       in.Bike,
		Status:     entity.RentalActive,
		DueDate:    in.DueDate,
		Price:      in.Price,
	})
	return toRentalResponse(created, time.Now()), nil
}

// List devolve os aluguéis com o status efetivo na data de referência
// (ativo vencido aparece como overdue).
func (uc *RentalUseCase) List() *dto.RentalListResponse {
	now := time.Now()
	rentals := uc.store.Rentals()
	items := make([]dto.RentalResponse, 0, len(rentals))
	for _, r := range rentals {
		items = append(items, *toRentalResponse(r, now))
	}
	return &dto.RentalListResponse{Items: items, Total: len(items)}
}

// Update atualiza parcialmente um aluguel.
func (uc *RentalUseCase) Update(id string, in dto.UpdateRentalRequest) (*dto.RentalResponse, error) {
	if _, ok := uc.store.RentalByID(id); !ok {
		return nil, domain.ErrNotFound
	}
	patch := store.RentalPatch{
		ClientName: in.ClientName,
		Bike:       in.Bike,
		DueDate:    in.DueDate,
		Price:      in.Price,
	}
	if in.Status != nil {
		status := entity.RentalStatus(*in.Status)
		switch status {
		case entity.RentalActive, entity.RentalOverdue, entity.RentalCompleted:
			patch.Status = &status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	uc.store.UpdateRental(id, patch)
	r, _ := uc.store.RentalByID(id)
	return toRentalResponse(r, time.Now()), nil
}

// Complete encerra o aluguel (devolução da bike).
func (uc *RentalUseCase) Complete(id string) (*dto.RentalResponse, error) {
	if _, ok := uc.store.RentalByID(id); !ok {
		return nil, domain.ErrNotFound
	}
	status := entity.RentalCompleted
	uc.store.UpdateRental(id, store.RentalPatch{Status: &status})
	r, _ := uc.store.RentalByID(id)
	return toRentalResponse(r, time.Now()), nil
}

// Delete remove um aluguel.
func (uc *RentalUseCase) Delete(id string) {
	uc.store.DeleteRental(id)
}

func toRentalResponse(r entity.Rental, now time.Time) *dto.RentalResponse {
	return &dto.RentalResponse{
		ID:         r.ID,
		ClientName: r.ClientName,
		Bike:       r.Bike,
		Status:     string(views.RentalStatusOn(r, now)),
		DueDate:    r.DueDate,
		Price:      r.Price,
	}
}

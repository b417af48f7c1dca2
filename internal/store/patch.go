package store

import (
	"github.com/shopspring/decimal"

	"github.com/yurizinlala/bike-erp/internal/domain/entity"
)

// Patches de atualização parcial: campo nil preserva o valor atual.

// ProductPatch campos atualizáveis de um produto.
type ProductPatch struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Quantity *int
	MinStock *int
	Location *string
}

func (p ProductPatch) apply(dst *entity.Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Quantity != nil {
		dst.Quantity = *p.Quantity
	}
	if p.MinStock != nil {
		dst.MinStock = *p.MinStock
	}
	if p.Location != nil {
		dst.Location = *p.Location
	}
}

// ClientPatch campos atualizáveis de um cliente, incluindo os derivados
// (daysSinceLastPurchase, revisionStatus, scheduledDate), que pertencem
// a quem chama; o store nunca os recalcula.
type ClientPatch struct {
	Name      *string
	Phone     *string
	Email     *string
	BirthDate *string
	Notes     *string
	Address   *string

	Purchases *[]entity.PurchaseHistory
	Revisions *[]entity.RevisionHistory

	LastPurchaseDate      *string
	DaysSinceLastPurchase *int
	NextRevisionDate      *string
	RevisionStatus        *entity.RevisionStatus
	IsScheduled           *bool
	ScheduledDate         *string
}

func (p ClientPatch) apply(dst *entity.Client) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.BirthDate != nil {
		dst.BirthDate = *p.BirthDate
	}
	if p.Notes != nil {
		dst.Notes = *p.Notes
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
	if p.Purchases != nil {
		dst.Purchases = *p.Purchases
	}
	if p.Revisions != nil {
		dst.Revisions = *p.Revisions
	}
	if p.LastPurchaseDate != nil {
		dst.LastPurchaseDate = *p.LastPurchaseDate
	}
	if p.DaysSinceLastPurchase != nil {
		dst.DaysSinceLastPurchase = *p.DaysSinceLastPurchase
	}
	if p.NextRevisionDate != nil {
		dst.NextRevisionDate = *p.NextRevisionDate
	}
	if p.RevisionStatus != nil {
		dst.RevisionStatus = *p.RevisionStatus
	}
	if p.IsScheduled != nil {
		dst.IsScheduled = *p.IsScheduled
	}
	if p.ScheduledDate != nil {
		dst.ScheduledDate = *p.ScheduledDate
	}
}

// RentalPatch campos atualizáveis de um aluguel.
type RentalPatch struct {
	ClientName *string
	Bike       *string
	Status     *entity.RentalStatus
	DueDate    *string
	Price      *decimal.Decimal
}

func (p RentalPatch) apply(dst *entity.Rental) {
	if p.ClientName != nil {
		dst.ClientName = *p.ClientName
	}
	if p.Bike != nil {
		dst.Bike = *p.Bike
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
	if p.DueDate != nil {
		dst.DueDate = *p.DueDate
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
}

// SettingsPatch campos atualizáveis das configurações da loja.
type SettingsPatch struct {
	ShopName            *string
	Address             *string
	WhatsApp            *string
	TemplateRevision15d *string
	TemplateBirthday    *string
}

func (p SettingsPatch) apply(dst *entity.Settings) {
	if p.ShopName != nil {
		dst.Profile.Name = *p.ShopName
	}
	if p.Address != nil {
		dst.Profile.Address = *p.Address
	}
	if p.WhatsApp != nil {
		dst.Profile.WhatsApp = *p.WhatsApp
	}
	if p.TemplateRevision15d != nil {
		dst.Templates.Revision15d = *p.TemplateRevision15d
	}
	if p.TemplateBirthday != nil {
		dst.Templates.Birthday = *p.TemplateBirthday
	}
}

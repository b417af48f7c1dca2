package usecase

import (
	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/domain/entity"
	"github.com/yurizinlala/bike-erp/internal/store"
)

// SettingsUseCase casos de uso da tela de configurações.
type SettingsUseCase struct {
	store *store.Store
}

// NewSettingsUseCase constrói o caso de uso.
func NewSettingsUseCase(s *store.Store) *SettingsUseCase {
	return &SettingsUseCase{store: s}
}

// Get devolve as configurações atuais da loja.
func (uc *SettingsUseCase) Get() *dto.SettingsResponse {
	return toSettingsResponse(uc.store.Settings())
}

// Update atualiza parcialmente perfil e templates de mensagem.
func (uc *SettingsUseCase) Update(in dto.UpdateSettingsRequest) *dto.SettingsResponse {
	uc.store.UpdateSettings(store.SettingsPatch{
		ShopName:            in.ShopName,
		Address:             in.Address,
		WhatsApp:            in.WhatsApp,
		TemplateRevision15d: in.TemplateRevision15d,
		TemplateBirthday:    in.TemplateBirthday,
	})
	return toSettingsResponse(uc.store.Settings())
}

func toSettingsResponse(s entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ShopName:            s.Profile.Name,
		Address:             s.Profile.Address,
		WhatsApp:            s.Profile.WhatsApp,
		TemplateRevision15d: s.Templates.Revision15d,
		TemplateBirthday:    s.Templates.Birthday,
	}
}

package dto

// UpdateSettingsRequest entrada para atualização parcial das configurações.
type UpdateSettingsRequest struct {
	ShopName            *string `json:"shopName"`
	Address             *string `json:"address"`
	WhatsApp            *string `json:"whatsapp"`
	TemplateRevision15d *string `json:"templateRevision15d"`
	TemplateBirthday    *string `json:"templateBirthday"`
}

// SettingsResponse configurações atuais da loja.
type SettingsResponse struct {
	ShopName            string `json:"shopName"`
	Address             string `json:"address"`
	WhatsApp            string `json:"whatsapp"`
	TemplateRevision15d string `json:"templateRevision15d"`
	TemplateBirthday    string `json:"templateBirthday"`
}

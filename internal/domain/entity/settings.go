package entity

// ShopProfile dados de perfil da loja exibidos nas configurações.
type ShopProfile struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	WhatsApp string `json:"whatsapp"`
}

// MessageTemplates modelos de mensagem das campanhas.
// O marcador {{nome}} é substituído pelo nome do cliente no disparo.
type MessageTemplates struct {
	Revision15d string `json:"revision15d"`
	Birthday    string `json:"birthday"`
}

// Settings configurações persistidas junto com as coleções do store.
type Settings struct {
	Profile   ShopProfile      `json:"profile"`
	Templates MessageTemplates `json:"templates"`
}

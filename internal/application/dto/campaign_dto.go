package dto

// NotifyRequest seleção de clientes para um disparo de campanha.
// Vazio dispara para todos os clientes do filtro ativo.
type NotifyRequest struct {
	ClientIDs []string `json:"clientIds"`
}

// CampaignLink deep link composto para um cliente. Nada é enviado pela
// aplicação; o link abre o chat com a mensagem pré-preenchida.
type CampaignLink struct {
	ClientID string `json:"clientId"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	URL      string `json:"url"`
}

// NotifyResponse links compostos para o disparo.
type NotifyResponse struct {
	Links []CampaignLink `json:"links"`
	Total int            `json:"total"`
}

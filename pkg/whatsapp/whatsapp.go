// Package whatsapp monta deep links wa.me para o disparo de mensagens.
// A aplicação só compõe o link com telefone e texto pré-preenchido; o envio
// acontece no aplicativo de chat do usuário.
package whatsapp

import (
	"net/url"
	"strings"
)

// CountryCode DDI do Brasil, prefixado quando o telefone não o traz.
const CountryCode = "55"

// TemplatePlaceholder marcador substituído pelo nome do cliente.
const TemplatePlaceholder = "{{nome}}"

// Link monta o deep link wa.me para o telefone, com texto opcional.
func Link(phone, text string) string {
	digits := onlyDigits(phone)
	if !strings.HasPrefix(digits, CountryCode) {
		digits = CountryCode + digits
	}
	u := url.URL{Scheme: "https", Host: "wa.me", Path: "/" + digits}
	if text != "" {
		u.RawQuery = url.Values{"text": {text}}.Encode()
	}
	return u.String()
}

// RenderTemplate substitui o marcador {{nome}} pelo nome do cliente.
func RenderTemplate(template, name string) string {
	return strings.ReplaceAll(template, TemplatePlaceholder, name)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

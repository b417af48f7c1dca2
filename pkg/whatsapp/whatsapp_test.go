package whatsapp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yurizinlala/bike-erp/pkg/whatsapp"
)

func TestLink_PrefixaDDI(t *testing.T) {
	got := whatsapp.Link("11999998888", "")
	assert.Equal(t, "https://wa.me/5511999998888", got)
}

func TestLink_DDIJaPresente(t *testing.T) {
	got := whatsapp.Link("+55 84 99999-8888", "")
	assert.Equal(t, "https://wa.me/5584999998888", got)
}

func TestLink_ComTexto(t *testing.T) {
	got := whatsapp.Link("11999998888", "Olá Roberto")
	assert.Equal(t, "https://wa.me/5511999998888?text=Ol%C3%A1+Roberto", got)
}

func TestRenderTemplate(t *testing.T) {
	out := whatsapp.RenderTemplate("Parabéns {{nome}}! 🎂", "Julia Mendes")
	assert.Equal(t, "Parabéns Julia Mendes! 🎂", out)
}

func TestRenderTemplate_SemMarcador(t *testing.T) {
	out := whatsapp.RenderTemplate("Mensagem fixa", "Julia")
	assert.Equal(t, "Mensagem fixa", out)
}

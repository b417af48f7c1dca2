package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/application/dto"
	"github.com/yurizinlala/bike-erp/internal/application/usecase"
)

// BirthdayHandler trata a tela de aniversariantes e a campanha de parabéns.
type BirthdayHandler struct {
	uc *usecase.BirthdayUseCase
}

// NewBirthdayHandler constrói o handler.
func NewBirthdayHandler(uc *usecase.BirthdayUseCase) *BirthdayHandler {
	return &BirthdayHandler{uc: uc}
}

// List godoc
// @Summary      Aniversariantes do dia ou do mês
// @Tags         birthdays
// @Produce      json
// @Param        mode  query  string  false  "today (default) ou month"
// @Success      200   {object}  dto.ClientListResponse
// @Router       /api/birthdays [get]
func (h *BirthdayHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("mode"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Notify godoc
// @Summary      Compor deep links da campanha de aniversário
// @Tags         birthdays
// @Accept       json
// @Produce      json
// @Param        mode  query  string  false  "today (default) ou month"
// @Param        body  body  dto.NotifyRequest  true  "Seleção de clientes"
// @Success      200   {object}  dto.NotifyResponse
// @Router       /api/birthdays/notify [post]
func (h *BirthdayHandler) Notify(c *fiber.Ctx) error {
	var in dto.NotifyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Notify(c.Query("mode"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// RevisionHandler trata a tela de controle de revisões e o disparo de
// lembretes.
type RevisionHandler struct {
	uc *usecase.RevisionUseCase
}

// NewRevisionHandler constrói o handler.
func NewRevisionHandler(uc *usecase.RevisionUseCase) *RevisionHandler {
	return &RevisionHandler{uc: uc}
}

// List godoc
// @Summary      Clientes por balde de revisão (15d, 20d, 45d, scheduled)
// @Tags         revisions
// @Produce      json
// @Param        bucket  query  string  true  "Balde"
// @Success      200     {object}  dto.ClientListResponse
// @Router       /api/revisions [get]
func (h *RevisionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("bucket", "15d"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

// Notify godoc
// @Summary      Compor deep links do lembrete de revisão
// @Tags         revisions
// @Accept       json
// @Produce      json
// @Param        bucket  query  string  true  "Balde"
// @Param        body    body  dto.NotifyRequest  true  "Seleção de clientes"
// @Success      200     {object}  dto.NotifyResponse
// @Router       /api/revisions/notify [post]
func (h *RevisionHandler) Notify(c *fiber.Ctx) error {
	var in dto.NotifyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Notify(c.Query("bucket", "15d"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(out)
}

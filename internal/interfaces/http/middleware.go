package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/yurizinlala/bike-erp/internal/metrics"
	"github.com/yurizinlala/bike-erp/pkg/logger"
)

// RequestLogger loga cada requisição atendida e alimenta os contadores.
// A rota registrada (não o path cru) vai para a métrica, mantendo a
// cardinalidade baixa.
func RequestLogger(log *logger.Logger, m *metrics.Set) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := c.Route().Path
		if m != nil {
			m.RequestObserved(c.Method(), route, strconv.Itoa(status))
		}
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("elapsed", time.Since(start)).
			Msg("requisição atendida")
		return err
	}
}

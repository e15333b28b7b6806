package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/plazoleta/usuarios-api/pkg/logger"
)

// RequestLogger registra cada request con un request_id propio. El id también
// viaja en el header X-Request-Id de la respuesta para correlación.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inicio := time.Now()
		requestID := uuid.NewString()
		c.Set("X-Request-Id", requestID)

		err := c.Next()

		evento := log.Info()
		if err != nil || c.Response().StatusCode() >= fiber.StatusInternalServerError {
			evento = log.Error().Err(err)
		}
		evento.
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(inicio)).
			Msg("request")
		return err
	}
}

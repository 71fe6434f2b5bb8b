package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/kardex-api/pkg/logger"
)

// HeaderRequestID header de correlación de peticiones.
const HeaderRequestID = "X-Request-ID"

// LocalRequestID key en c.Locals.
const LocalRequestID = "request_id"

// RequestID propaga (o genera) un identificador de correlación por petición y
// deja un log de acceso estructurado al finalizar.
func RequestID(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Locals(LocalRequestID, reqID)
		c.Set(HeaderRequestID, reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Msg("request")
		return err
	}
}

package middleware

import (
	"time"

	"inventory/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// RequestLogger logs every completed request with zerolog. It must run
// after the requestid middleware; the request id is attached to the user
// context so that log lines written by services carry it.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		if requestID == "" {
			requestID = c.Get(fiber.HeaderXRequestID)
		}
		ctx := logger.WithRequestID(c.UserContext(), requestID)
		c.SetUserContext(ctx)

		err := c.Next()
		if err != nil {
			// Write the error response now so the logged status is final.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		duration := time.Since(start)
		status := c.Response().StatusCode()

		event := logger.Info(ctx)
		if status >= fiber.StatusInternalServerError {
			event = logger.Error(ctx)
		} else if status >= fiber.StatusBadRequest {
			event = logger.Warn(ctx)
		}
		if user := Username(c); user != "" {
			event = event.Str("user", user)
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", duration).
			Str("ip", c.IP()).
			Msg("request completed")
		return nil
	}
}

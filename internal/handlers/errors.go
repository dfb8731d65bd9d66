package handlers

import (
	"errors"

	"inventory/internal/query"
	"inventory/internal/services"
	"inventory/internal/validation"
	"inventory/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ValidationError carries every rejected field of a request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid request data"
}

func invalid(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func invalidBody() error {
	return invalid(validation.Errors{"body": "Invalid request body"})
}

func invalidQuery(errs query.Errors) error {
	return invalid(errs)
}

// dbError is an unexpected failure while handling action, for example
// "getting categories".
type dbError struct {
	action string
	err    error
}

func (e *dbError) Error() string {
	return "Db error " + e.action + ": " + e.err.Error()
}

func (e *dbError) Unwrap() error {
	return e.err
}

// failed passes client errors through and marks anything else as a
// database failure of action.
func failed(action string, err error) error {
	var be *services.BusinessError
	var ve *ValidationError
	if errors.As(err, &be) || errors.As(err, &ve) {
		return err
	}
	return &dbError{action: action, err: err}
}

// ErrorHandler writes the JSON body of every error returned by a handler.
// Details of unexpected errors are only sent in development.
func ErrorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			ve *ValidationError
			be *services.BusinessError
			fe *fiber.Error
			de *dbError
		)
		switch {
		case errors.As(err, &ve):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"invalidData": ve.Fields})
		case errors.As(err, &be):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": be.Message})
		case errors.As(err, &fe):
			message := fe.Message
			if fe.Code == fiber.StatusNotFound {
				message = "Not Found"
			}
			return c.Status(fe.Code).JSON(fiber.Map{"error": message})
		}

		logger.Error(c.UserContext()).Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("request failed")

		message := "An error occurred"
		if development {
			message = "Db error"
			if errors.As(err, &de) {
				message = "Db error " + de.action
			}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": message})
	}
}

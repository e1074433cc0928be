package handlers

import (
	"fmt"

	"speedxpress/internal/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// envelope is the body of every JSON response.
type envelope struct {
	Success bool        `json:"success"`
	Error   apperr.Kind `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalidArgument:
		return fiber.StatusBadRequest
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindPaymentDeclined:
		return fiber.StatusPaymentRequired
	case apperr.KindForbidden:
		return fiber.StatusForbidden
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// base carries what every handler needs to read requests and write
// responses.
type base struct {
	validate *validator.Validate
	logger   *zap.Logger
}

func newBase(logger *zap.Logger) base {
	return base{validate: validator.New(), logger: logger}
}

func (b base) ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(envelope{Success: true, Message: message, Data: data})
}

// fail maps err to its status. Internal failures are logged with their
// cause and answered with a generic message.
func (b base) fail(c *fiber.Ctx, err error) error {
	kind := apperr.KindOf(err)
	status := statusFor(kind)
	message := apperr.MessageOf(err)
	if status >= fiber.StatusInternalServerError {
		b.logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		message = "Operation failed"
	} else {
		b.logger.Debug("request rejected",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("kind", string(kind)),
			zap.Error(err))
	}
	return c.Status(status).JSON(envelope{Success: false, Error: kind, Message: message, Data: nil})
}

func listResponse[T any](b base, c *fiber.Ctx, items []T, err error, emptyMessage string) error {
	if err != nil {
		return b.fail(c, err)
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusOK).JSON(envelope{Success: false, Message: emptyMessage, Data: []T{}})
	}
	return b.ok(c, fiber.StatusOK, "", items)
}

// parseBody decodes and validates the request body into out.
func (b base) parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, "Invalid request body", err)
	}
	return b.check(out)
}

func (b base) check(v interface{}) error {
	if err := b.validate.Struct(v); err != nil {
		return validationFailed(err)
	}
	return nil
}

// checkEmail validates an email taken from the path or query.
func (b base) checkEmail(field, email string) error {
	if err := b.validate.Var(email, "required,email"); err != nil {
		return apperr.Wrap(apperr.KindInvalidArgument, fmt.Sprintf("Field '%s' must be a valid email", field), err)
	}
	return nil
}

func validationFailed(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return apperr.Wrap(apperr.KindInvalidArgument, "Validation failed", err)
	}
	e := validationErrors[0]
	return apperr.Wrap(apperr.KindInvalidArgument,
		fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Namespace(), e.Tag()), err)
}

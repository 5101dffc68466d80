package serverutils

import (
	"errors"

	"college-buddy-be/pkg/advisor"
	"college-buddy-be/pkg/advisor/response"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain errors to HTTP responses. External
// boundary failures come back as a 502 with the generic apology so the client
// can render it directly as the assistant's reply.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, advisor.ErrEmptyInput):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, advisor.ErrNoPendingClarification):
			return ctx.Status(fiber.StatusConflict).JSON(ErrorResponse(err.Error()))
		case errors.Is(err, advisor.ErrSessionNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(ErrorResponse(err.Error()))
		case advisor.IsExternalServiceError(err):
			return ctx.Status(fiber.StatusBadGateway).JSON(ErrorResponse(response.ApologyMessage))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}

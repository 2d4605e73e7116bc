package serverutils

import (
	"errors"

	"regboard-be/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{Success: true, Message: message, Data: data}
}

type ErrorBody struct {
	Success bool     `json:"success"`
	Code    int      `json:"code"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func ErrorResponse(code int, message string) ErrorBody {
	return ErrorBody{Success: false, Code: code, Error: message}
}

// ErrorHandlerMiddleware converts errors escaping the handlers into the
// documented {error} JSON shape. Validation failures map to 400, unreachable
// collaborators to 503, malformed collaborator responses to 502; a
// fiber.Error keeps its own status and everything else becomes a 500.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var vErr *apperror.ValidationError
		if errors.As(err, &vErr) {
			body := ErrorResponse(fiber.StatusBadRequest, "validation failed")
			body.Details = vErr.Errors
			return ctx.Status(fiber.StatusBadRequest).JSON(body)
		}
		if apperror.IsNetwork(err) {
			return ctx.Status(fiber.StatusServiceUnavailable).
				JSON(ErrorResponse(fiber.StatusServiceUnavailable, err.Error()))
		}
		if apperror.IsFormat(err) {
			return ctx.Status(fiber.StatusBadGateway).
				JSON(ErrorResponse(fiber.StatusBadGateway, err.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}

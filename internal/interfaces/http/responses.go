package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/componentes-api/internal/application/dto"
	"github.com/jhoicas/componentes-api/internal/domain"
)

// resultStatus traduce un domain.Result a código HTTP y cuerpo de error.
// Para Ok el cuerpo no se usa.
func resultStatus(res domain.Result) (int, dto.ErrorResponse) {
	switch res {
	case domain.Ok:
		return fiber.StatusOK, dto.ErrorResponse{}
	case domain.NoRecordAffected:
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: "registro no encontrado"}
	case domain.ConflictOrConstraintViolation:
		return fiber.StatusConflict, dto.ErrorResponse{Code: "CONFLICT", Message: "la operación viola una restricción de datos"}
	default:
		return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "BACKEND_FAILURE", Message: "almacenamiento no disponible, intente más tarde"}
	}
}

// writeResult responde una mutación: okStatus + mensaje si Ok, error mapeado si no.
func writeResult(c *fiber.Ctx, res domain.Result, okStatus int, okMsg string) error {
	if res == domain.Ok {
		return c.Status(okStatus).JSON(dto.MessageResponse{Message: okMsg})
	}
	status, body := resultStatus(res)
	return c.Status(status).JSON(body)
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func backendUnavailable(c *fiber.Ctx) error {
	status, body := resultStatus(domain.BackendFailure)
	return c.Status(status).JSON(body)
}

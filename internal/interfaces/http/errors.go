package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
)

// statusFor traduce un kind de validación a código HTTP. Los rechazos por
// conflicto de estado (duplicados, stock, integridad referencial) van en 409;
// el resto de las validaciones en 400.
func statusFor(kind domain.ValidationKind) int {
	switch kind {
	case domain.KindDuplicateIdentifier,
		domain.KindInsufficientStock,
		domain.KindReferencedByMovement:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

// writeError serializa un error del dominio como dto.ErrorResponse. Para
// stock insuficiente incluye la cantidad disponible en el cuerpo.
func writeError(c *fiber.Ctx, err error) error {
	if ve, ok := domain.AsValidationError(err); ok {
		resp := dto.ErrorResponse{Code: string(ve.Kind), Message: ve.Error()}
		if ve.Kind == domain.KindInsufficientStock {
			available := ve.Available
			resp.Available = &available
		}
		return c.Status(statusFor(ve.Kind)).JSON(resp)
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el identificador ya existe"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

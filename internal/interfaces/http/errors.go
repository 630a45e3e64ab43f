package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrdash-api/internal/application/dto"
	"github.com/jhoicas/hrdash-api/internal/domain"
	"github.com/jhoicas/hrdash-api/pkg/logger"
)

// respondStoreError maneja los errores que ningún handler trata de forma
// específica: 503 para fallos transitorios del almacén y 500 genérico para el
// resto. El detalle se registra en el servidor y nunca llega al cliente.
func respondStoreError(c *fiber.Ctx, log *logger.Logger, err error, op string) error {
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return c.Status(fiber.StatusServiceUnavailable).
			JSON(dto.ErrorResponse{Error: "almacén de datos no disponible, intente de nuevo"})
	}
	log.Error().Err(err).Str("op", op).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.ErrorResponse{Error: "ocurrió un error interno del servidor"})
}

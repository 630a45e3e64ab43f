package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hrdash-api/internal/application/dto"
	"github.com/jhoicas/hrdash-api/internal/application/usecase"
	"github.com/jhoicas/hrdash-api/internal/domain"
	"github.com/jhoicas/hrdash-api/pkg/logger"
)

// CatalogHandler maneja las peticiones HTTP de un catálogo de nombres únicos.
// Se monta una instancia para departamentos y otra para cargos.
type CatalogHandler struct {
	uc    *usecase.CatalogUseCase
	label string // para los mensajes al cliente: "departamento", "cargo"
	log   *logger.Logger
}

// NewCatalogHandler construye el handler para un catálogo concreto.
func NewCatalogHandler(uc *usecase.CatalogUseCase, label string, log *logger.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, label: label, log: log}
}

// List GET /api/departments | /api/job-titles
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondStoreError(c, h.log, err, "list "+h.label)
	}
	return c.JSON(items)
}

// Create POST /api/departments | /api/job-titles
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCatalogItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.UserContext(), in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: fmt.Sprintf("el %s ya existe", h.label)})
		}
		return respondStoreError(c, h.log, err, "create "+h.label)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Delete DELETE /api/departments/:id | /api/job-titles/:id
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "id inválido"})
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: fmt.Sprintf("%s no encontrado", h.label)})
		}
		return respondStoreError(c, h.log, err, "delete "+h.label)
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("%s eliminado", h.label)})
}

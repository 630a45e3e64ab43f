package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/hrdash-api/internal/application/dto"
	"github.com/jhoicas/hrdash-api/internal/domain"
	"github.com/jhoicas/hrdash-api/internal/domain/repository"
)

// Tipos de catálogo; forman el prefijo de los eventos realtime
// (department_added, job_title_deleted, ...).
const (
	CatalogDepartment = "department"
	CatalogJobTitle   = "job_title"
)

// CatalogUseCase reglas de negocio para los catálogos de nombres únicos.
// Departamentos y cargos comparten la misma lógica; se instancia una vez por
// catálogo con su repositorio y su tipo.
type CatalogUseCase struct {
	kind   string
	repo   repository.CatalogRepository
	notify Broadcaster
}

// NewCatalogUseCase construye el caso de uso para un catálogo concreto.
func NewCatalogUseCase(kind string, repo repository.CatalogRepository, notify Broadcaster) *CatalogUseCase {
	return &CatalogUseCase{kind: kind, repo: repo, notify: notify}
}

// Create inserta un nombre nuevo y emite <kind>_added. Nombre duplicado
// devuelve domain.ErrDuplicate; nombre vacío, domain.ErrInvalidInput.
func (uc *CatalogUseCase) Create(ctx context.Context, name string) (*dto.CatalogItemResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: falta el campo name", domain.ErrInvalidInput)
	}
	id, err := uc.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	item := &dto.CatalogItemResponse{ID: id, Name: name}
	uc.notify.Broadcast(uc.kind+"_added", item)
	return item, nil
}

// List devuelve todas las entradas del catálogo.
func (uc *CatalogUseCase) List(ctx context.Context) ([]dto.CatalogItemResponse, error) {
	rows, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.CatalogItemResponse{ID: r.ID, Name: r.Name})
	}
	return items, nil
}

// Delete elimina la entrada (borrado duro; puede dejar etiquetas colgantes en
// employees, aceptado) y emite <kind>_deleted. ID desconocido devuelve
// domain.ErrNotFound.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	existed, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	uc.notify.Broadcast(uc.kind+"_deleted", struct {
		ID int64 `json:"id"`
	}{ID: id})
	return nil
}

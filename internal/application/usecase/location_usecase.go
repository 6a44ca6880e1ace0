package usecase

import (
	"strings"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// LocationUseCase casos de uso CRUD para ubicaciones (bodegas).
type LocationUseCase struct {
	repo    repository.LocationRepository
	movRepo repository.MovementRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(repo repository.LocationRepository, movRepo repository.MovementRepository) *LocationUseCase {
	return &LocationUseCase{repo: repo, movRepo: movRepo}
}

// Create crea una ubicación nueva con clave suministrada por el usuario.
func (uc *LocationUseCase) Create(in dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	id := strings.TrimSpace(in.LocationID)
	name := strings.TrimSpace(in.Name)
	if id == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "location_id")
	}
	if name == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "name")
	}
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	location := &entity.Location{
		ID:      id,
		Name:    name,
		Address: strings.TrimSpace(in.Address),
	}
	if err := uc.repo.Create(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// Update actualiza nombre y dirección.
func (uc *LocationUseCase) Update(id string, in dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "name")
	}
	location.Name = name
	location.Address = strings.TrimSpace(in.Address)
	if err := uc.repo.Update(location); err != nil {
		return nil, err
	}
	return toLocationResponse(location), nil
}

// GetByID obtiene una ubicación por ID.
func (uc *LocationUseCase) GetByID(id string) (*dto.LocationResponse, error) {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, nil
	}
	return toLocationResponse(location), nil
}

// List lista todas las ubicaciones ordenadas por ID.
func (uc *LocationUseCase) List() ([]dto.LocationResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.LocationResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toLocationResponse(l))
	}
	return items, nil
}

// Delete elimina una ubicación. Se rechaza si algún movimiento la usa como
// origen o destino, sin mirar saldos.
func (uc *LocationUseCase) Delete(id string) error {
	location, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	referenced, err := uc.movRepo.ExistsByLocation(id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.NewValidationError(domain.KindReferencedByMovement, "location_id")
	}
	return uc.repo.Delete(id)
}

func toLocationResponse(l *entity.Location) *dto.LocationResponse {
	return &dto.LocationResponse{
		LocationID: l.ID,
		Name:       l.Name,
		Address:    l.Address,
	}
}

// Package inventory implementa el validador de movimientos del kardex: decide
// si un movimiento propuesto (alta, edición o borrado) es admisible contra el
// estado derivado del libro, y lo normaliza para persistir. Se apoya en el
// replay puro de internal/domain/inventory para conocer el stock disponible.
package inventory

import (
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	domaininv "github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// MovementUseCase valida y persiste movimientos. Las escrituras asumen un
// solo escritor lógico por libro (la capa externa serializa peticiones).
type MovementUseCase struct {
	movRepo      repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *MovementUseCase {
	return &MovementUseCase{
		movRepo:      movRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// Validate aplica la secuencia de validación en orden fijo y corta en la
// primera regla violada (el orden determina el mensaje que ve el usuario).
// editingID vacío significa alta; si no, es el ID del movimiento que se está
// editando y su propio ID queda exento del chequeo de duplicados.
//
// Devuelve el movimiento normalizado (strings recortados, cantidad parseada,
// ubicaciones vacías en nil) listo para insertar o actualizar; el timestamp
// lo decide el caller (ahora en alta, el original en edición).
func (uc *MovementUseCase) Validate(in dto.MovementRequest, editingID string) (*entity.Movement, error) {
	movementID := strings.TrimSpace(in.MovementID)
	productID := strings.TrimSpace(in.ProductID)
	from := normalizeLocation(in.FromLocation)
	to := normalizeLocation(in.ToLocation)
	qtyRaw := strings.TrimSpace(in.Qty)

	if movementID == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "movement_id")
	}
	if editingID == "" {
		existing, err := uc.movRepo.GetByID(movementID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.NewValidationError(domain.KindDuplicateIdentifier, movementID)
		}
	}
	if productID == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "product_id")
	}
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NewValidationError(domain.KindUnknownProduct, "product_id")
	}
	if from == nil && to == nil {
		return nil, domain.NewValidationError(domain.KindNoRouteSpecified, "")
	}
	if from != nil {
		location, err := uc.locationRepo.GetByID(*from)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.NewValidationError(domain.KindUnknownLocation, "origen")
		}
	}
	if to != nil {
		location, err := uc.locationRepo.GetByID(*to)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.NewValidationError(domain.KindUnknownLocation, "destino")
		}
	}
	if from != nil && to != nil && *from == *to {
		return nil, domain.NewValidationError(domain.KindSameSourceAndDestination, "")
	}
	qty, err := strconv.Atoi(qtyRaw)
	if err != nil {
		return nil, domain.NewValidationError(domain.KindNotAnInteger, "qty")
	}
	if qty <= 0 {
		return nil, domain.NewValidationError(domain.KindNonPositiveQuantity, "qty")
	}

	// Suficiencia de stock, solo cuando hay ubicación de origen: el disponible
	// se calcula sobre el libro completo (el registro en edición incluido) y,
	// si el origen y el producto no cambiaron respecto del original, se suma
	// de vuelta su cantidad porque quedará liberada al reemplazarlo.
	if from != nil {
		movements, err := uc.movRepo.ListAll()
		if err != nil {
			return nil, err
		}
		available := domaininv.AvailableQty(movements, productID, *from)
		if editingID != "" {
			original, err := uc.movRepo.GetByID(editingID)
			if err != nil {
				return nil, err
			}
			if original != nil && original.FromLocation != nil &&
				*original.FromLocation == *from && original.ProductID == productID {
				available += original.Qty
			}
		}
		if qty > available {
			return nil, domain.NewInsufficientStockError(available)
		}
	}

	return &entity.Movement{
		ID:           movementID,
		ProductID:    productID,
		FromLocation: from,
		ToLocation:   to,
		Qty:          qty,
	}, nil
}

// Create valida y agrega un movimiento nuevo al libro (timestamp de creación).
func (uc *MovementUseCase) Create(in dto.MovementRequest) (*dto.MovementResponse, error) {
	movement, err := uc.Validate(in, "")
	if err != nil {
		return nil, err
	}
	movement.Timestamp = time.Now().UTC()
	if err := uc.movRepo.Create(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// Update valida y reemplaza un movimiento existente conservando su timestamp.
func (uc *MovementUseCase) Update(id string, in dto.MovementRequest) (*dto.MovementResponse, error) {
	original, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if original == nil {
		return nil, domain.ErrNotFound
	}
	in.MovementID = id
	movement, err := uc.Validate(in, id)
	if err != nil {
		return nil, err
	}
	movement.Timestamp = original.Timestamp
	if err := uc.movRepo.Update(movement); err != nil {
		return nil, err
	}
	return toMovementResponse(movement), nil
}

// CanDelete aplica el chequeo conservador de borrado: el disponible actual en
// la ubicación de origen del propio movimiento (libro completo, movimiento
// incluido) no puede ser menor que su cantidad. No re-simula el libro sin el
// registro; puede rechazar borrados que otros movimientos cubrirían.
func (uc *MovementUseCase) CanDelete(movement *entity.Movement) error {
	if movement.FromLocation == nil {
		return nil
	}
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return err
	}
	available := domaininv.AvailableQty(movements, movement.ProductID, *movement.FromLocation)
	if available < movement.Qty {
		return domain.NewInsufficientStockError(available)
	}
	return nil
}

// Delete elimina un movimiento si el chequeo conservador lo permite.
func (uc *MovementUseCase) Delete(id string) error {
	movement, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if movement == nil {
		return domain.ErrNotFound
	}
	if err := uc.CanDelete(movement); err != nil {
		return err
	}
	return uc.movRepo.Delete(id)
}

// GetByID obtiene un movimiento por ID.
func (uc *MovementUseCase) GetByID(id string) (*dto.MovementResponse, error) {
	movement, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, nil
	}
	return toMovementResponse(movement), nil
}

// List lista el libro completo, más reciente primero.
func (uc *MovementUseCase) List() ([]dto.MovementResponse, error) {
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(movements))
	for i := len(movements) - 1; i >= 0; i-- {
		items = append(items, *toMovementResponse(movements[i]))
	}
	return items, nil
}

// normalizeLocation recorta el string y convierte vacío en nil.
func normalizeLocation(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		MovementID:   m.ID,
		ProductID:    m.ProductID,
		FromLocation: m.FromLocation,
		ToLocation:   m.ToLocation,
		Qty:          m.Qty,
		Timestamp:    m.Timestamp,
	}
}

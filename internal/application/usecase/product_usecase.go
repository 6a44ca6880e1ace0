package usecase

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no vive aquí:
// se deriva del libro de movimientos.
type ProductUseCase struct {
	repo         repository.ProductRepository
	movRepo      repository.MovementRepository
	locationRepo repository.LocationRepository
	tx           TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	movRepo repository.MovementRepository,
	locationRepo repository.LocationRepository,
	tx TxRunner,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, movRepo: movRepo, locationRepo: locationRepo, tx: tx}
}

// Create crea un producto nuevo con clave suministrada por el usuario.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	id := strings.TrimSpace(in.ProductID)
	name := strings.TrimSpace(in.Name)
	if id == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "product_id")
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
	product := &entity.Product{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(in.Description),
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre y descripción. Si viene AddQty, además registra una
// entrada rápida: un movimiento AUTO-<uuid> hacia AddToLocation por esa
// cantidad (entero positivo y ubicación existente, o se rechaza todo).
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError(domain.KindMissingField, "name")
	}
	product.Name = name
	product.Description = strings.TrimSpace(in.Description)

	var movement *entity.Movement
	if addQty := strings.TrimSpace(in.AddQty); addQty != "" {
		qty, err := strconv.Atoi(addQty)
		if err != nil {
			return nil, domain.NewValidationError(domain.KindNotAnInteger, "add_qty")
		}
		if qty <= 0 {
			return nil, domain.NewValidationError(domain.KindNonPositiveQuantity, "add_qty")
		}
		locationID := strings.TrimSpace(in.AddToLocation)
		if locationID == "" {
			return nil, domain.NewValidationError(domain.KindMissingField, "add_to_location")
		}
		location, err := uc.locationRepo.GetByID(locationID)
		if err != nil {
			return nil, err
		}
		if location == nil {
			return nil, domain.NewValidationError(domain.KindUnknownLocation, "add_to_location")
		}
		movement = &entity.Movement{
			ID:         "AUTO-" + uuid.NewString(),
			ProductID:  product.ID,
			ToLocation: &locationID,
			Qty:        qty,
			Timestamp:  time.Now().UTC(),
		}
	}

	if movement == nil {
		if err := uc.repo.Update(product); err != nil {
			return nil, err
		}
		return toProductResponse(product), nil
	}

	// La entrada rápida y la actualización del producto viajan en la misma
	// transacción: si una falla, ninguna queda escrita.
	err = uc.tx.Run(func(products repository.ProductRepository, movements repository.MovementRepository) error {
		if err := movements.Create(movement); err != nil {
			return err
		}
		return products.Update(product)
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos ordenados por ID.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Delete elimina un producto. Integridad referencial dura: si algún
// movimiento lo referencia, se rechaza sin mirar saldos.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	referenced, err := uc.movRepo.ExistsByProduct(id)
	if err != nil {
		return err
	}
	if referenced {
		return domain.NewValidationError(domain.KindReferencedByMovement, "product_id")
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ProductID:   p.ID,
		Name:        p.Name,
		Description: p.Description,
	}
}

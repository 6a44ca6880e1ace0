package repository

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. El motor de saldos consume ListAll como snapshot completo;
// no hay saldos materializados en ninguna parte.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	Update(movement *entity.Movement) error
	Delete(id string) error
	// ListAll devuelve el libro completo, timestamp ascendente (empates por id).
	ListAll() ([]*entity.Movement, error)
	// ListRecent devuelve los últimos movimientos, timestamp descendente.
	ListRecent(limit int) ([]*entity.Movement, error)
	Count() (int, error)
	// ExistsByProduct indica si algún movimiento referencia el producto.
	ExistsByProduct(productID string) (bool, error)
	// ExistsByLocation indica si algún movimiento usa la ubicación como origen o destino.
	ExistsByLocation(locationID string) (bool, error)
}

// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria. Permite ejercitar el motor de saldos y el validador sin ninguna
// dependencia de almacenamiento (tests, prototipos).
package memory

import (
	"sort"

	"github.com/jhoicas/kardex-api/internal/application/usecase"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepo)(nil)
	_ repository.LocationRepository = (*LocationRepo)(nil)
	_ repository.MovementRepository = (*MovementRepo)(nil)
	_ usecase.TxRunner              = (*TxRunner)(nil)
)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	items map[string]*entity.Product
}

// NewProductRepo construye el repositorio vacío.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{items: make(map[string]*entity.Product)}
}

func (r *ProductRepo) Create(product *entity.Product) error {
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) Update(product *entity.Product) error {
	cp := *product
	r.items[product.ID] = &cp
	return nil
}

func (r *ProductRepo) List() ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		cp := *p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *ProductRepo) Count() (int, error) { return len(r.items), nil }

func (r *ProductRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// LocationRepo repositorio de ubicaciones en memoria.
type LocationRepo struct {
	items map[string]*entity.Location
}

// NewLocationRepo construye el repositorio vacío.
func NewLocationRepo() *LocationRepo {
	return &LocationRepo{items: make(map[string]*entity.Location)}
}

func (r *LocationRepo) Create(location *entity.Location) error {
	cp := *location
	r.items[location.ID] = &cp
	return nil
}

func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := *l
	return &cp, nil
}

func (r *LocationRepo) Update(location *entity.Location) error {
	cp := *location
	r.items[location.ID] = &cp
	return nil
}

func (r *LocationRepo) List() ([]*entity.Location, error) {
	list := make([]*entity.Location, 0, len(r.items))
	for _, l := range r.items {
		cp := *l
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *LocationRepo) Count() (int, error) { return len(r.items), nil }

func (r *LocationRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// MovementRepo libro de movimientos en memoria. Mantiene el orden de
// inserción; ListAll ordena por timestamp con empates resueltos por ese
// orden (sort estable), igual que la consulta SQL equivalente.
type MovementRepo struct {
	ledger []*entity.Movement
}

// NewMovementRepo construye el libro vacío.
func NewMovementRepo() *MovementRepo {
	return &MovementRepo{}
}

func (r *MovementRepo) Create(movement *entity.Movement) error {
	cp := *movement
	r.ledger = append(r.ledger, &cp)
	return nil
}

func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	for _, m := range r.ledger {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MovementRepo) Update(movement *entity.Movement) error {
	for i, m := range r.ledger {
		if m.ID == movement.ID {
			cp := *movement
			r.ledger[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *MovementRepo) Delete(id string) error {
	for i, m := range r.ledger {
		if m.ID == id {
			r.ledger = append(r.ledger[:i], r.ledger[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	list := make([]*entity.Movement, 0, len(r.ledger))
	for _, m := range r.ledger {
		cp := *m
		list = append(list, &cp)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Timestamp.Before(list[j].Timestamp)
	})
	return list, nil
}

func (r *MovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	all, err := r.ListAll()
	if err != nil {
		return nil, err
	}
	recent := make([]*entity.Movement, 0, limit)
	for i := len(all) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, all[i])
	}
	return recent, nil
}

func (r *MovementRepo) Count() (int, error) { return len(r.ledger), nil }

func (r *MovementRepo) ExistsByProduct(productID string) (bool, error) {
	for _, m := range r.ledger {
		if m.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MovementRepo) ExistsByLocation(locationID string) (bool, error) {
	for _, m := range r.ledger {
		if m.FromLocation != nil && *m.FromLocation == locationID {
			return true, nil
		}
		if m.ToLocation != nil && *m.ToLocation == locationID {
			return true, nil
		}
	}
	return false, nil
}

// TxRunner emula la atomicidad de una transacción sobre los repositorios en
// memoria: copia el estado antes de ejecutar fn y lo restaura si fn falla.
type TxRunner struct {
	products  *ProductRepo
	movements *MovementRepo
}

// NewTxRunner construye el runner sobre los repos dados.
func NewTxRunner(products *ProductRepo, movements *MovementRepo) *TxRunner {
	return &TxRunner{products: products, movements: movements}
}

// Run ejecuta fn; si devuelve error, revierte productos y movimientos al
// estado previo.
func (r *TxRunner) Run(fn func(
	products repository.ProductRepository,
	movements repository.MovementRepository,
) error) error {
	productsBefore := r.products.snapshot()
	movementsBefore := r.movements.snapshot()
	if err := fn(r.products, r.movements); err != nil {
		r.products.restore(productsBefore)
		r.movements.restore(movementsBefore)
		return err
	}
	return nil
}

func (r *ProductRepo) snapshot() map[string]*entity.Product {
	items := make(map[string]*entity.Product, len(r.items))
	for id, p := range r.items {
		cp := *p
		items[id] = &cp
	}
	return items
}

func (r *ProductRepo) restore(items map[string]*entity.Product) { r.items = items }

func (r *MovementRepo) snapshot() []*entity.Movement {
	ledger := make([]*entity.Movement, 0, len(r.ledger))
	for _, m := range r.ledger {
		cp := *m
		ledger = append(ledger, &cp)
	}
	return ledger
}

func (r *MovementRepo) restore(ledger []*entity.Movement) { r.ledger = ledger }

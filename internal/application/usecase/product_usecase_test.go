package usecase_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/usecase"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/internal/infrastructure/memory"
)

func newProductFixture(t *testing.T) (*usecase.ProductUseCase, *memory.MovementRepo, *memory.LocationRepo) {
	t.Helper()
	products := memory.NewProductRepo()
	locs := memory.NewLocationRepo()
	movs := memory.NewMovementRepo()
	require.NoError(t, locs.Create(&entity.Location{ID: "X", Name: "Bodega X"}))
	tx := memory.NewTxRunner(products, movs)
	return usecase.NewProductUseCase(products, movs, locs, tx), movs, locs
}

func TestProductCreate(t *testing.T) {
	uc, _, _ := newProductFixture(t)

	out, err := uc.Create(dto.CreateProductRequest{ProductID: " A ", Name: " Producto A "})
	require.NoError(t, err)
	assert.Equal(t, "A", out.ProductID)
	assert.Equal(t, "Producto A", out.Name)

	// ID duplicado.
	_, err = uc.Create(dto.CreateProductRequest{ProductID: "A", Name: "Otro"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Campos requeridos.
	_, err = uc.Create(dto.CreateProductRequest{Name: "Sin ID"})
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindMissingField, ve.Kind)
}

func TestProductUpdate_EntradaRapida(t *testing.T) {
	uc, movs, _ := newProductFixture(t)
	_, err := uc.Create(dto.CreateProductRequest{ProductID: "A", Name: "Producto A"})
	require.NoError(t, err)

	out, err := uc.Update("A", dto.UpdateProductRequest{
		Name: "Producto A v2", AddQty: "30", AddToLocation: "X",
	})
	require.NoError(t, err)
	assert.Equal(t, "Producto A v2", out.Name)

	// La entrada rápida genera un movimiento AUTO- hacia la ubicación elegida
	// y el stock queda disponible de inmediato.
	movements, err := movs.ListAll()
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.True(t, strings.HasPrefix(movements[0].ID, "AUTO-"))
	assert.True(t, movements[0].IsReceipt())
	assert.Equal(t, 30, inventory.AvailableQty(movements, "A", "X"))
}

func TestProductUpdate_EntradaRapidaInvalida(t *testing.T) {
	uc, movs, _ := newProductFixture(t)
	_, err := uc.Create(dto.CreateProductRequest{ProductID: "A", Name: "Producto A"})
	require.NoError(t, err)

	cases := []struct {
		name string
		in   dto.UpdateProductRequest
		kind domain.ValidationKind
	}{
		{"qty no entera", dto.UpdateProductRequest{Name: "A", AddQty: "diez", AddToLocation: "X"}, domain.KindNotAnInteger},
		{"qty negativa", dto.UpdateProductRequest{Name: "A", AddQty: "-5", AddToLocation: "X"}, domain.KindNonPositiveQuantity},
		{"sin ubicación", dto.UpdateProductRequest{Name: "A", AddQty: "5"}, domain.KindMissingField},
		{"ubicación inexistente", dto.UpdateProductRequest{Name: "A", AddQty: "5", AddToLocation: "NOPE"}, domain.KindUnknownLocation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Update("A", tc.in)
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tc.kind, ve.Kind)
		})
	}

	// Ningún rechazo deja movimientos a medias.
	count, err := movs.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

// updateFallaProductRepo falla siempre en Update; el resto delega.
type updateFallaProductRepo struct {
	*memory.ProductRepo
}

func (r updateFallaProductRepo) Update(*entity.Product) error {
	return errors.New("update de producto falla")
}

// repoFallidoTxRunner entrega a fn un repo de productos que falla, apoyado en
// el rollback del runner en memoria para los repos reales.
type repoFallidoTxRunner struct {
	inner    *memory.TxRunner
	products repository.ProductRepository
}

func (r repoFallidoTxRunner) Run(fn func(
	products repository.ProductRepository,
	movements repository.MovementRepository,
) error) error {
	return r.inner.Run(func(_ repository.ProductRepository, movements repository.MovementRepository) error {
		return fn(r.products, movements)
	})
}

func TestProductUpdate_EntradaRapidaAtomica(t *testing.T) {
	products := memory.NewProductRepo()
	locs := memory.NewLocationRepo()
	movs := memory.NewMovementRepo()
	require.NoError(t, locs.Create(&entity.Location{ID: "X", Name: "Bodega X"}))
	require.NoError(t, products.Create(&entity.Product{ID: "A", Name: "Producto A"}))

	tx := repoFallidoTxRunner{
		inner:    memory.NewTxRunner(products, movs),
		products: updateFallaProductRepo{products},
	}
	uc := usecase.NewProductUseCase(products, movs, locs, tx)

	_, err := uc.Update("A", dto.UpdateProductRequest{
		Name: "Producto A v2", AddQty: "5", AddToLocation: "X",
	})
	require.Error(t, err)

	// Si el update del producto falla, el movimiento AUTO- tampoco queda.
	count, err := movs.Count()
	require.NoError(t, err)
	assert.Zero(t, count)

	// Y el producto conserva su estado original.
	p, err := products.GetByID("A")
	require.NoError(t, err)
	assert.Equal(t, "Producto A", p.Name)
}

func TestProductDelete_IntegridadReferencial(t *testing.T) {
	uc, movs, _ := newProductFixture(t)
	_, err := uc.Create(dto.CreateProductRequest{ProductID: "A", Name: "Producto A"})
	require.NoError(t, err)

	x := "X"
	require.NoError(t, movs.Create(&entity.Movement{ID: "M1", ProductID: "A", ToLocation: &x, Qty: 5}))

	// Referenciado por un movimiento: rechazo duro, sin mirar saldos.
	err = uc.Delete("A")
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindReferencedByMovement, ve.Kind)

	require.NoError(t, movs.Delete("M1"))
	assert.NoError(t, uc.Delete("A"))
	assert.ErrorIs(t, uc.Delete("A"), domain.ErrNotFound)
}

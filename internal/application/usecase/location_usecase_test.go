package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/usecase"
	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/infrastructure/memory"
)

func TestLocationCreateUpdate(t *testing.T) {
	uc := usecase.NewLocationUseCase(memory.NewLocationRepo(), memory.NewMovementRepo())

	out, err := uc.Create(dto.CreateLocationRequest{LocationID: "X", Name: "Bodega X", Address: "Calle 1"})
	require.NoError(t, err)
	assert.Equal(t, "Bodega X", out.Name)

	_, err = uc.Create(dto.CreateLocationRequest{LocationID: "X", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	out, err = uc.Update("X", dto.UpdateLocationRequest{Name: "Bodega X Norte"})
	require.NoError(t, err)
	assert.Equal(t, "Bodega X Norte", out.Name)
	assert.Empty(t, out.Address)

	// Update de inexistente devuelve nil sin error (la capa HTTP resuelve el 404).
	out, err = uc.Update("NOPE", dto.UpdateLocationRequest{Name: "Algo"})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestLocationDelete_IntegridadReferencial(t *testing.T) {
	locs := memory.NewLocationRepo()
	movs := memory.NewMovementRepo()
	uc := usecase.NewLocationUseCase(locs, movs)

	_, err := uc.Create(dto.CreateLocationRequest{LocationID: "X", Name: "Bodega X"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateLocationRequest{LocationID: "Y", Name: "Bodega Y"})
	require.NoError(t, err)

	x := "X"
	require.NoError(t, movs.Create(&entity.Movement{ID: "M1", ProductID: "A", FromLocation: &x, Qty: 2}))

	// X es origen de un movimiento: no se puede eliminar.
	err = uc.Delete("X")
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindReferencedByMovement, ve.Kind)

	// Y no aparece en el libro: se elimina sin problema.
	assert.NoError(t, uc.Delete("Y"))
}

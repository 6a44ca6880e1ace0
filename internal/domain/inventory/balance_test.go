package inventory_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/inventory"
)

func loc(id string) *string { return &id }

func mv(id, productID string, from, to *string, qty int) *entity.Movement {
	return &entity.Movement{
		ID:           id,
		ProductID:    productID,
		FromLocation: from,
		ToLocation:   to,
		Qty:          qty,
		Timestamp:    time.Now(),
	}
}

func TestComputeBalances_LibroVacio(t *testing.T) {
	balances := inventory.ComputeBalances(nil)
	assert.Empty(t, balances)

	balances = inventory.ComputeBalances([]*entity.Movement{})
	assert.Empty(t, balances)
}

func TestComputeBalances_EntradaSimple(t *testing.T) {
	movements := []*entity.Movement{
		mv("M1", "A", nil, loc("X"), 50),
	}
	balances := inventory.ComputeBalances(movements)
	assert.Equal(t, 50, balances[inventory.BalanceKey{ProductID: "A", LocationID: "X"}])
	assert.Equal(t, 0, balances[inventory.BalanceKey{ProductID: "A", LocationID: "Y"}])
}

func TestComputeBalances_TrasladoConserva(t *testing.T) {
	movements := []*entity.Movement{
		mv("M1", "A", nil, loc("X"), 50),
		mv("M2", "A", loc("X"), loc("Y"), 10),
	}
	balances := inventory.ComputeBalances(movements)
	assert.Equal(t, 40, balances[inventory.BalanceKey{ProductID: "A", LocationID: "X"}])
	assert.Equal(t, 10, balances[inventory.BalanceKey{ProductID: "A", LocationID: "Y"}])

	// El total entre ambas ubicaciones no cambia con el traslado.
	total := balances[inventory.BalanceKey{ProductID: "A", LocationID: "X"}] +
		balances[inventory.BalanceKey{ProductID: "A", LocationID: "Y"}]
	assert.Equal(t, 50, total)
}

// El libro de muestra completo (M1..M20): los saldos deben coincidir con la
// suma con signo calculada a mano.
func TestComputeBalances_LibroDeMuestra(t *testing.T) {
	movements := sampleLedger()
	balances := inventory.ComputeBalances(movements)

	expected := map[inventory.BalanceKey]int{
		{ProductID: "A", LocationID: "X"}: 50 - 10 + 15 - 8 - 6, // M1,M3,M7,M12,M17
		{ProductID: "A", LocationID: "Y"}: 10 - 5 + 6,           // M3,M6,M17
		{ProductID: "A", LocationID: "Z"}: 5 - 3,                // M6,M15
		{ProductID: "B", LocationID: "X"}: 30 - 5,               // M2,M8
		{ProductID: "B", LocationID: "Y"}: 20 - 7,               // M4,M13
		{ProductID: "B", LocationID: "Z"}: 7 + 11 - 3,           // M13,M16,M20
		{ProductID: "C", LocationID: "Z"}: 40 - 12,              // M5,M9
		{ProductID: "C", LocationID: "X"}: 12 + 4,               // M9,M19
		{ProductID: "C", LocationID: "Y"}: 9 - 4,                // M14,M19
		{ProductID: "D", LocationID: "W"}: 25 - 5,               // M10,M11
		{ProductID: "D", LocationID: "X"}: 5 - 2,                // M11,M18
	}
	for key, want := range expected {
		assert.Equalf(t, want, balances[key], "saldo (%s, %s)", key.ProductID, key.LocationID)
	}
}

// El resultado es invariante bajo reordenamiento de la entrada.
func TestComputeBalances_Conmutatividad(t *testing.T) {
	movements := sampleLedger()
	want := inventory.ComputeBalances(movements)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := make([]*entity.Movement, len(movements))
		copy(shuffled, movements)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		require.Equal(t, want, inventory.ComputeBalances(shuffled))
	}
}

func TestAvailableQty(t *testing.T) {
	movements := []*entity.Movement{
		mv("M1", "A", nil, loc("X"), 50),
		mv("M2", "A", loc("X"), nil, 20),
	}
	assert.Equal(t, 30, inventory.AvailableQty(movements, "A", "X"))
	// Par nunca referenciado: saldo cero.
	assert.Equal(t, 0, inventory.AvailableQty(movements, "A", "Y"))
	assert.Equal(t, 0, inventory.AvailableQty(movements, "B", "X"))
}

func sampleLedger() []*entity.Movement {
	return []*entity.Movement{
		mv("M1", "A", nil, loc("X"), 50),
		mv("M2", "B", nil, loc("X"), 30),
		mv("M3", "A", loc("X"), loc("Y"), 10),
		mv("M4", "B", nil, loc("Y"), 20),
		mv("M5", "C", nil, loc("Z"), 40),
		mv("M6", "A", loc("Y"), loc("Z"), 5),
		mv("M7", "A", nil, loc("X"), 15),
		mv("M8", "B", loc("X"), nil, 5),
		mv("M9", "C", loc("Z"), loc("X"), 12),
		mv("M10", "D", nil, loc("W"), 25),
		mv("M11", "D", loc("W"), loc("X"), 5),
		mv("M12", "A", loc("X"), nil, 8),
		mv("M13", "B", loc("Y"), loc("Z"), 7),
		mv("M14", "C", nil, loc("Y"), 9),
		mv("M15", "A", loc("Z"), nil, 3),
		mv("M16", "B", nil, loc("Z"), 11),
		mv("M17", "A", loc("X"), loc("Y"), 6),
		mv("M18", "D", loc("X"), nil, 2),
		mv("M19", "C", loc("Y"), loc("X"), 4),
		mv("M20", "B", loc("Z"), nil, 3),
	}
}

// Package inventory contiene el motor puro del kardex: el replay del libro
// de movimientos hacia saldos por (producto, ubicación). No toca persistencia;
// recibe la colección completa de movimientos y devuelve el agregado.
package inventory

import "github.com/jhoicas/kardex-api/internal/domain/entity"

// BalanceKey identifica un saldo: par (producto, ubicación).
type BalanceKey struct {
	ProductID  string
	LocationID string
}

// ComputeBalances reproduce el libro completo de movimientos y devuelve el
// saldo neto por (producto, ubicación): +Qty en el destino, -Qty en el origen.
// Función pura; el orden de entrada no afecta el resultado (la suma es
// conmutativa). Las claves nunca tocadas no aparecen; las de saldo cero
// pueden quedar en el mapa, el consumidor filtra qty == 0 si le interesa.
func ComputeBalances(movements []*entity.Movement) map[BalanceKey]int {
	balances := make(map[BalanceKey]int, len(movements))
	for _, mv := range movements {
		if mv.ToLocation != nil {
			balances[BalanceKey{ProductID: mv.ProductID, LocationID: *mv.ToLocation}] += mv.Qty
		}
		if mv.FromLocation != nil {
			balances[BalanceKey{ProductID: mv.ProductID, LocationID: *mv.FromLocation}] -= mv.Qty
		}
	}
	return balances
}

// AvailableQty devuelve el saldo de un producto en una ubicación, 0 si el par
// nunca fue tocado por un movimiento. Vista de conveniencia sobre ComputeBalances.
func AvailableQty(movements []*entity.Movement, productID, locationID string) int {
	return ComputeBalances(movements)[BalanceKey{ProductID: productID, LocationID: locationID}]
}

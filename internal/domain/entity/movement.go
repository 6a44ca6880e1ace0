package entity

import "time"

// Movement representa un evento del kardex: entrada, salida o traslado de
// una cantidad de producto. Es el único estado persistido del motor; los
// saldos por (producto, ubicación) se recalculan siempre desde estos eventos.
//
// Invariantes: Qty > 0; al menos uno de FromLocation/ToLocation presente;
// si ambos presentes deben ser distintos. Solo destino = entrada (receipt),
// solo origen = salida (shipment), ambos = traslado (transfer).
type Movement struct {
	ID           string
	ProductID    string
	FromLocation *string // nil cuando el movimiento no tiene origen
	ToLocation   *string // nil cuando el movimiento no tiene destino
	Qty          int
	Timestamp    time.Time
}

// IsReceipt indica si el movimiento es solo entrada (sin origen).
func (m *Movement) IsReceipt() bool {
	return m.FromLocation == nil && m.ToLocation != nil
}

// IsShipment indica si el movimiento es solo salida (sin destino).
func (m *Movement) IsShipment() bool {
	return m.FromLocation != nil && m.ToLocation == nil
}

// IsTransfer indica si el movimiento tiene origen y destino.
func (m *Movement) IsTransfer() bool {
	return m.FromLocation != nil && m.ToLocation != nil
}

package dto

import "time"

// MovementRequest body para crear o editar un movimiento. Qty viaja como
// texto: el validador distingue "no es entero" de "no es positivo", igual
// que un formulario.
type MovementRequest struct {
	MovementID   string `json:"movement_id"`
	ProductID    string `json:"product_id"`
	FromLocation string `json:"from_location,omitempty"`
	ToLocation   string `json:"to_location,omitempty"`
	Qty          string `json:"qty"`
}

// MovementResponse representación de un movimiento del kardex.
type MovementResponse struct {
	MovementID   string    `json:"movement_id"`
	ProductID    string    `json:"product_id"`
	FromLocation *string   `json:"from_location"`
	ToLocation   *string   `json:"to_location"`
	Qty          int       `json:"qty"`
	Timestamp    time.Time `json:"timestamp"`
}

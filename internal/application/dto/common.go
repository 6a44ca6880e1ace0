package dto

// ErrorResponse cuerpo de error HTTP. Available solo viaja en rechazos por
// stock insuficiente, para que el cliente muestre la cantidad disponible sin
// recalcularla.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available *int   `json:"available,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

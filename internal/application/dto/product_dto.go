package dto

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	ProductID   string `json:"product_id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/{id}.
// AddQty/AddToLocation son el atajo de recepción rápida: si AddQty viene,
// se genera un movimiento de entrada AUTO-<uuid> hacia AddToLocation.
type UpdateProductRequest struct {
	Name          string `json:"name" validate:"required"`
	Description   string `json:"description,omitempty"`
	AddQty        string `json:"add_qty,omitempty"`
	AddToLocation string `json:"add_to_location,omitempty"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// LocationQtyDTO cantidad de un producto en una ubicación (desglose).
type LocationQtyDTO struct {
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Qty          int    `json:"qty"`
}

// ProductStockResponse total y desglose por ubicación de un producto.
type ProductStockResponse struct {
	ProductID string           `json:"product_id"`
	Total     int              `json:"total"`
	Breakdown []LocationQtyDTO `json:"breakdown"`
}

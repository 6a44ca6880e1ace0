package dto

// CreateLocationRequest body para POST /api/locations.
type CreateLocationRequest struct {
	LocationID string `json:"location_id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address,omitempty"`
}

// UpdateLocationRequest body para PUT /api/locations/{id}.
type UpdateLocationRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
}

// LocationResponse representación de una ubicación.
type LocationResponse struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
}

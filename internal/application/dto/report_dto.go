package dto

// BalanceRowDTO fila del reporte de saldos (solo saldos distintos de cero).
type BalanceRowDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	LocationID   string `json:"location_id"`
	LocationName string `json:"location_name"`
	Qty          int    `json:"qty"`
}

// DashboardResponse resumen para la vista principal: conteos, movimientos
// recientes y los saldos más grandes por valor absoluto.
type DashboardResponse struct {
	ProductCount    int                `json:"product_count"`
	LocationCount   int                `json:"location_count"`
	MovementCount   int                `json:"movement_count"`
	RecentMovements []MovementResponse `json:"recent_movements"`
	TopBalances     []BalanceRowDTO    `json:"top_balances"`
}

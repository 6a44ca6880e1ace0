package entity

// Product representa un producto o SKU del inventario.
// El ID es la clave externa estable que usan los movimientos; no hay stock
// aquí: el stock por ubicación se deriva del libro de movimientos.
type Product struct {
	ID          string // clave única suministrada por el usuario
	Name        string
	Description string
}

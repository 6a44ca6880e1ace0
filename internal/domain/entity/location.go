package entity

// Location representa una bodega o ubicación física donde se almacena stock.
type Location struct {
	ID      string // clave única suministrada por el usuario
	Name    string
	Address string
}

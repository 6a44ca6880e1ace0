package usecase

import "github.com/jhoicas/kardex-api/internal/domain/repository"

// TxRunner ejecuta fn dentro de una transacción, con repositorios atados a
// ella. Commit si fn devuelve nil; rollback si devuelve error.
type TxRunner interface {
	Run(fn func(
		products repository.ProductRepository,
		movements repository.MovementRepository,
	) error) error
}

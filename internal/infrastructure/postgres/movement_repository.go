package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/kardex-api/internal/domain"
	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del puerto MovementRepository sobre PostgreSQL.
// El libro es append-mostly: los saldos nunca se materializan en tablas, el
// motor los recalcula desde ListAll.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador de persistencia para movimientos.
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento nuevo.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (movement_id, product_id, from_location, to_location, qty, ts)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.FromLocation, movement.ToLocation,
		movement.Qty, movement.Timestamp,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID; nil si no existe.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT movement_id, product_id, from_location, to_location, qty, ts
		FROM movements WHERE movement_id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.FromLocation, &m.ToLocation, &m.Qty, &m.Timestamp,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Update reemplaza los campos de un movimiento existente (timestamp incluido:
// el caso de uso ya decidió conservarlo).
func (r *MovementRepo) Update(movement *entity.Movement) error {
	query := `
		UPDATE movements SET product_id = $2, from_location = $3, to_location = $4, qty = $5, ts = $6
		WHERE movement_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.FromLocation, movement.ToLocation,
		movement.Qty, movement.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete elimina un movimiento por ID.
func (r *MovementRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE movement_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// ListAll devuelve el libro completo, timestamp ascendente con empates por ID.
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	query := `
		SELECT movement_id, product_id, from_location, to_location, qty, ts
		FROM movements ORDER BY ts ASC, movement_id ASC`
	return r.queryMovements(query)
}

// ListRecent devuelve los últimos movimientos, más reciente primero.
func (r *MovementRepo) ListRecent(limit int) ([]*entity.Movement, error) {
	query := `
		SELECT movement_id, product_id, from_location, to_location, qty, ts
		FROM movements ORDER BY ts DESC, movement_id DESC LIMIT $1`
	return r.queryMovements(query, limit)
}

// Count cuenta los movimientos del libro.
func (r *MovementRepo) Count() (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM movements`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// ExistsByProduct indica si algún movimiento referencia el producto.
func (r *MovementRepo) ExistsByProduct(productID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM movements WHERE product_id = $1)`, productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists movement by product: %w", err)
	}
	return exists, nil
}

// ExistsByLocation indica si algún movimiento usa la ubicación como origen o destino.
func (r *MovementRepo) ExistsByLocation(locationID string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM movements WHERE from_location = $1 OR to_location = $1)`, locationID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists movement by location: %w", err)
	}
	return exists, nil
}

func (r *MovementRepo) queryMovements(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.FromLocation, &m.ToLocation, &m.Qty, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

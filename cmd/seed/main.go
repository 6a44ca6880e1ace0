// Comando seed: carga datos de muestra en la base (idempotente por ID).
// Útil para levantar un entorno de demo con un libro de movimientos realista.
package main

import (
	"context"
	"time"

	"github.com/jhoicas/kardex-api/internal/domain/entity"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
	"github.com/jhoicas/kardex-api/internal/infrastructure/postgres"
	"github.com/jhoicas/kardex-api/pkg/config"
	"github.com/jhoicas/kardex-api/pkg/logger"
)

type seedMovement struct {
	id        string
	productID string
	from      string
	to        string
	qty       int
}

var sampleProducts = []entity.Product{
	{ID: "A", Name: "Product A"},
	{ID: "B", Name: "Product B"},
	{ID: "C", Name: "Product C"},
	{ID: "D", Name: "Product D"},
}

var sampleLocations = []entity.Location{
	{ID: "X", Name: "Warehouse X"},
	{ID: "Y", Name: "Warehouse Y"},
	{ID: "Z", Name: "Warehouse Z"},
	{ID: "W", Name: "Warehouse W"},
}

// Libro de muestra: entradas, salidas y traslados entre las cuatro bodegas.
var sampleMovements = []seedMovement{
	{"M1", "A", "", "X", 50},
	{"M2", "B", "", "X", 30},
	{"M3", "A", "X", "Y", 10},
	{"M4", "B", "", "Y", 20},
	{"M5", "C", "", "Z", 40},
	{"M6", "A", "Y", "Z", 5},
	{"M7", "A", "", "X", 15},
	{"M8", "B", "X", "", 5},
	{"M9", "C", "Z", "X", 12},
	{"M10", "D", "", "W", 25},
	{"M11", "D", "W", "X", 5},
	{"M12", "A", "X", "", 8},
	{"M13", "B", "Y", "Z", 7},
	{"M14", "C", "", "Y", 9},
	{"M15", "A", "Z", "", 3},
	{"M16", "B", "", "Z", 11},
	{"M17", "A", "X", "Y", 6},
	{"M18", "D", "X", "", 2},
	{"M19", "C", "Y", "X", 4},
	{"M20", "B", "Z", "", 3},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "kardex-seed"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)

	for i := range sampleProducts {
		p := sampleProducts[i]
		created, err := createProductIfMissing(productRepo, &p)
		if err != nil {
			log.Fatal().Err(err).Str("product_id", p.ID).Msg("sembrar producto")
		}
		if created {
			log.Info().Str("product_id", p.ID).Msg("producto creado")
		}
	}

	for i := range sampleLocations {
		l := sampleLocations[i]
		created, err := createLocationIfMissing(locationRepo, &l)
		if err != nil {
			log.Fatal().Err(err).Str("location_id", l.ID).Msg("sembrar ubicación")
		}
		if created {
			log.Info().Str("location_id", l.ID).Msg("ubicación creada")
		}
	}

	// Los timestamps escalonados preservan el orden M1..M20 en el libro.
	base := time.Now().UTC().Add(-time.Duration(len(sampleMovements)) * time.Minute)
	for i, sm := range sampleMovements {
		movement := &entity.Movement{
			ID:           sm.id,
			ProductID:    sm.productID,
			FromLocation: optional(sm.from),
			ToLocation:   optional(sm.to),
			Qty:          sm.qty,
			Timestamp:    base.Add(time.Duration(i) * time.Minute),
		}
		created, err := createMovementIfMissing(movementRepo, movement)
		if err != nil {
			log.Fatal().Err(err).Str("movement_id", sm.id).Msg("sembrar movimiento")
		}
		if created {
			log.Info().Str("movement_id", sm.id).Msg("movimiento creado")
		}
	}

	log.Info().Msg("seed completado")
}

func createProductIfMissing(repo repository.ProductRepository, p *entity.Product) (bool, error) {
	existing, err := repo.GetByID(p.ID)
	if err != nil || existing != nil {
		return false, err
	}
	return true, repo.Create(p)
}

func createLocationIfMissing(repo repository.LocationRepository, l *entity.Location) (bool, error) {
	existing, err := repo.GetByID(l.ID)
	if err != nil || existing != nil {
		return false, err
	}
	return true, repo.Create(l)
}

func createMovementIfMissing(repo repository.MovementRepository, m *entity.Movement) (bool, error) {
	existing, err := repo.GetByID(m.ID)
	if err != nil || existing != nil {
		return false, err
	}
	return true, repo.Create(m)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

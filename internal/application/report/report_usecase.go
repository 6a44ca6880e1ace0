// Package report arma las vistas derivadas del libro: reporte de saldos,
// desglose por producto y resumen del tablero. Todo se recalcula desde el
// libro completo en cada consulta; no hay saldos materializados.
package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/domain/inventory"
	"github.com/jhoicas/kardex-api/internal/domain/repository"
)

// PDFGenerator puerto para exportar el reporte de saldos como PDF.
type PDFGenerator interface {
	GenerateBalanceReport(rows []dto.BalanceRowDTO) ([]byte, error)
}

// XMLExporter puerto para exportar el reporte de saldos como XML.
type XMLExporter interface {
	ExportBalanceReport(rows []dto.BalanceRowDTO) ([]byte, error)
}

// ReportUseCase construye los reportes de saldos a partir del libro.
type ReportUseCase struct {
	movRepo      repository.MovementRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	pdf          PDFGenerator
	xml          XMLExporter
	collator     *collate.Collator
}

// NewReportUseCase construye el caso de uso. pdf y xml pueden ser nil si no
// se exponen esas exportaciones.
func NewReportUseCase(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	pdf PDFGenerator,
	xml XMLExporter,
) *ReportUseCase {
	return &ReportUseCase{
		movRepo:      movRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		pdf:          pdf,
		xml:          xml,
		collator:     collate.New(language.Spanish),
	}
}

// Balances devuelve las filas del reporte: saldos distintos de cero con
// nombres resueltos, ordenadas por (producto, ubicación). Las claves que
// nunca tuvieron movimientos no aparecen.
func (uc *ReportUseCase) Balances() ([]dto.BalanceRowDTO, error) {
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	balances := inventory.ComputeBalances(movements)

	productNames, err := uc.productNames()
	if err != nil {
		return nil, err
	}
	locationNames, err := uc.locationNames()
	if err != nil {
		return nil, err
	}

	rows := make([]dto.BalanceRowDTO, 0, len(balances))
	for key, qty := range balances {
		if qty == 0 {
			continue
		}
		rows = append(rows, dto.BalanceRowDTO{
			ProductID:    key.ProductID,
			ProductName:  nameOr(productNames, key.ProductID),
			LocationID:   key.LocationID,
			LocationName: nameOr(locationNames, key.LocationID),
			Qty:          qty,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductID != rows[j].ProductID {
			return rows[i].ProductID < rows[j].ProductID
		}
		return rows[i].LocationID < rows[j].LocationID
	})
	return rows, nil
}

// ProductStock devuelve el total y el desglose por ubicación de un producto,
// desglose ordenado por nombre de ubicación (colación en español).
func (uc *ReportUseCase) ProductStock(productID string) (*dto.ProductStockResponse, error) {
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	locationNames, err := uc.locationNames()
	if err != nil {
		return nil, err
	}

	out := &dto.ProductStockResponse{ProductID: productID, Breakdown: []dto.LocationQtyDTO{}}
	for key, qty := range inventory.ComputeBalances(movements) {
		if key.ProductID != productID || qty == 0 {
			continue
		}
		out.Total += qty
		out.Breakdown = append(out.Breakdown, dto.LocationQtyDTO{
			LocationID:   key.LocationID,
			LocationName: nameOr(locationNames, key.LocationID),
			Qty:          qty,
		})
	}
	sort.Slice(out.Breakdown, func(i, j int) bool {
		return uc.collator.CompareString(out.Breakdown[i].LocationName, out.Breakdown[j].LocationName) < 0
	})
	return out, nil
}

// Dashboard arma el resumen principal: conteos, últimos movimientos y los 10
// saldos más grandes por valor absoluto.
func (uc *ReportUseCase) Dashboard() (*dto.DashboardResponse, error) {
	productCount, err := uc.productRepo.Count()
	if err != nil {
		return nil, err
	}
	locationCount, err := uc.locationRepo.Count()
	if err != nil {
		return nil, err
	}
	movementCount, err := uc.movRepo.Count()
	if err != nil {
		return nil, err
	}
	recent, err := uc.movRepo.ListRecent(10)
	if err != nil {
		return nil, err
	}
	rows, err := uc.Balances()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return abs(rows[i].Qty) > abs(rows[j].Qty) })
	if len(rows) > 10 {
		rows = rows[:10]
	}

	recentDTO := make([]dto.MovementResponse, 0, len(recent))
	for _, m := range recent {
		recentDTO = append(recentDTO, dto.MovementResponse{
			MovementID:   m.ID,
			ProductID:    m.ProductID,
			FromLocation: m.FromLocation,
			ToLocation:   m.ToLocation,
			Qty:          m.Qty,
			Timestamp:    m.Timestamp,
		})
	}
	return &dto.DashboardResponse{
		ProductCount:    productCount,
		LocationCount:   locationCount,
		MovementCount:   movementCount,
		RecentMovements: recentDTO,
		TopBalances:     rows,
	}, nil
}

// ExportPDF genera el reporte de saldos en PDF.
func (uc *ReportUseCase) ExportPDF() ([]byte, error) {
	rows, err := uc.Balances()
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateBalanceReport(rows)
}

// ExportXML genera el reporte de saldos en XML.
func (uc *ReportUseCase) ExportXML() ([]byte, error) {
	rows, err := uc.Balances()
	if err != nil {
		return nil, err
	}
	return uc.xml.ExportBalanceReport(rows)
}

func (uc *ReportUseCase) productNames() (map[string]string, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names, nil
}

func (uc *ReportUseCase) locationNames() (map[string]string, error) {
	locations, err := uc.locationRepo.List()
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(locations))
	for _, l := range locations {
		names[l.ID] = l.Name
	}
	return names, nil
}

// nameOr resuelve el nombre o cae al ID si la entidad ya no existe.
func nameOr(names map[string]string, id string) string {
	if name, ok := names[id]; ok {
		return name
	}
	return id
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

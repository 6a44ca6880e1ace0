// Package xmlreport implementa la exportación del reporte de saldos a XML,
// pensada para intercambio con sistemas externos (ERP, contabilidad).
package xmlreport

import (
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/application/report"
)

var _ report.XMLExporter = (*Exporter)(nil)

// Exporter implementa report.XMLExporter usando etree.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportBalanceReport serializa las filas del reporte:
//
//	<BalanceReport generatedAt="...">
//	  <Balance productId="A" locationId="X" qty="41">
//	    <ProductName>Producto A</ProductName>
//	    <LocationName>Bodega X</LocationName>
//	  </Balance>
//	</BalanceReport>
func (e *Exporter) ExportBalanceReport(rows []dto.BalanceRowDTO) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("BalanceReport")
	root.CreateAttr("generatedAt", time.Now().UTC().Format(time.RFC3339))

	for _, r := range rows {
		balance := root.CreateElement("Balance")
		balance.CreateAttr("productId", r.ProductID)
		balance.CreateAttr("locationId", r.LocationID)
		balance.CreateAttr("qty", strconv.Itoa(r.Qty))
		balance.CreateElement("ProductName").SetText(r.ProductName)
		balance.CreateElement("LocationName").SetText(r.LocationName)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}

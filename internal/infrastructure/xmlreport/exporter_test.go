package xmlreport_test

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/infrastructure/xmlreport"
)

func TestExportBalanceReport(t *testing.T) {
	exporter := xmlreport.NewExporter()
	out, err := exporter.ExportBalanceReport([]dto.BalanceRowDTO{
		{ProductID: "A", ProductName: "Producto A", LocationID: "X", LocationName: "Bodega X", Qty: 41},
		{ProductID: "B", ProductName: "Producto B", LocationID: "Z", LocationName: "Bodega Z", Qty: -3},
	})
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))

	root := doc.SelectElement("BalanceReport")
	require.NotNil(t, root)
	assert.NotEmpty(t, root.SelectAttrValue("generatedAt", ""))

	balances := root.SelectElements("Balance")
	require.Len(t, balances, 2)
	assert.Equal(t, "A", balances[0].SelectAttrValue("productId", ""))
	assert.Equal(t, "41", balances[0].SelectAttrValue("qty", ""))
	assert.Equal(t, "Producto A", balances[0].SelectElement("ProductName").Text())
	assert.Equal(t, "-3", balances[1].SelectAttrValue("qty", ""))
}

func TestExportBalanceReport_SinFilas(t *testing.T) {
	exporter := xmlreport.NewExporter()
	out, err := exporter.ExportBalanceReport(nil)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	root := doc.SelectElement("BalanceReport")
	require.NotNil(t, root)
	assert.Empty(t, root.SelectElements("Balance"))
}

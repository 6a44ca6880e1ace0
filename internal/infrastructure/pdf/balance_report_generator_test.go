package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-api/internal/application/dto"
	"github.com/jhoicas/kardex-api/internal/infrastructure/pdf"
)

func TestGenerateBalanceReport(t *testing.T) {
	generator := pdf.NewBalanceReportGenerator()
	out, err := generator.GenerateBalanceReport([]dto.BalanceRowDTO{
		{ProductID: "A", ProductName: "Producto A", LocationID: "X", LocationName: "Bodega X", Qty: 41},
		{ProductID: "B", ProductName: "Producto B", LocationID: "Z", LocationName: "Bodega Z", Qty: -3},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	// Cabecera mágica de todo documento PDF.
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateBalanceReport_SinFilas(t *testing.T) {
	generator := pdf.NewBalanceReportGenerator()
	out, err := generator.GenerateBalanceReport(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

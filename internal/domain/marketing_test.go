package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultMarketingInput() MarketingROIInput {
	return MarketingROIInput{
		Mode:             ValueModeAOV,
		AdSpend:          5000,
		OtherCosts:       1000,
		SalesCosts:       2000,
		CPC:              2.50,
		VisitorToLeadPct: 5.0,
		LeadToCustPct:    20.0,
		AOV:              150,
		COGSPct:          40,
		ARPA:             99,
		GrossMarginPct:   85,
		ChurnRatePct:     4.0,
	}
}

func TestCalculateMarketingROI(t *testing.T) {
	t.Run("Deve calcular o funil no modo de pedido único", func(t *testing.T) {
		result := CalculateMarketingROI(defaultMarketingInput())

		assert.InDelta(t, 2000.0, result.Clicks, 0.0001)
		assert.InDelta(t, 100.0, result.Leads, 0.0001)
		assert.InDelta(t, 20.0, result.Customers, 0.0001)
		assert.InDelta(t, 3000.0, result.Revenue, 0.0001)
		assert.InDelta(t, 1200.0, result.TotalCOGS, 0.0001)
		assert.InDelta(t, 8000.0, result.TotalAcquisitionCost, 0.0001)
		assert.InDelta(t, -6200.0, result.NetProfit, 0.0001)
		assert.InDelta(t, -77.5, result.ROI, 0.0001)
		assert.InDelta(t, 0.6, result.ROAS, 0.0001)
		assert.InDelta(t, 400.0, result.CAC, 0.0001)
	})

	t.Run("Deve calcular o valor de vida no modo de assinatura", func(t *testing.T) {
		in := defaultMarketingInput()
		in.Mode = ValueModeLTV

		result := CalculateMarketingROI(in)

		// churn 4% dá vida útil de 25 meses: receita vitalícia 2475 e LTV
		// com margem de 85%.
		assert.InDelta(t, 2475.0*0.85, result.LTV, 0.0001)
		assert.InDelta(t, 20.0*2475.0, result.Revenue, 0.0001)
	})

	t.Run("Deve limitar a vida útil a 24 meses quando o churn é zero", func(t *testing.T) {
		in := defaultMarketingInput()
		in.Mode = ValueModeLTV
		in.ChurnRatePct = 0

		result := CalculateMarketingROI(in)

		assert.InDelta(t, 20.0*99.0*24.0, result.Revenue, 0.0001)
	})

	t.Run("Deve sinalizar ponto de equilíbrio alcançável com margem positiva", func(t *testing.T) {
		result := CalculateMarketingROI(defaultMarketingInput())

		require.True(t, result.Breakeven.Reachable)
		// margem unitária de 90 sobre custo total de 8000
		assert.InDelta(t, 8000.0/90.0, result.Breakeven.Customers, 0.0001)
		assert.InDelta(t, 8000.0/90.0*150.0, result.Breakeven.Revenue, 0.0001)
	})

	t.Run("Deve sinalizar ponto de equilíbrio inalcançável com margem não-positiva", func(t *testing.T) {
		in := defaultMarketingInput()
		in.COGSPct = 100

		result := CalculateMarketingROI(in)

		assert.False(t, result.Breakeven.Reachable)
		assert.Equal(t, 0.0, result.Breakeven.Customers)
		assert.Equal(t, 0.0, result.Breakeven.Revenue)
	})

	t.Run("Deve zerar o funil quando o CPC é zero", func(t *testing.T) {
		in := defaultMarketingInput()
		in.CPC = 0

		result := CalculateMarketingROI(in)

		assert.Equal(t, 0.0, result.Clicks)
		assert.Equal(t, 0.0, result.Customers)
		assert.Equal(t, 0.0, result.CAC)
	})
}

func TestProjectSpendCurve(t *testing.T) {
	t.Run("Deve varrer onze níveis de investimento em passos de 500", func(t *testing.T) {
		points := ProjectSpendCurve(defaultMarketingInput())

		require.Len(t, points, 11)
		assert.Equal(t, 2500.0, points[0].Spend)
		assert.Equal(t, 7500.0, points[10].Spend)
	})

	t.Run("Deve começar em zero quando o gasto atual é baixo", func(t *testing.T) {
		in := defaultMarketingInput()
		in.AdSpend = 1000

		points := ProjectSpendCurve(in)

		assert.Equal(t, 0.0, points[0].Spend)
	})
}

func TestLookupChannelBenchmark(t *testing.T) {
	t.Run("Deve retornar o benchmark de e-commerce", func(t *testing.T) {
		b, ok := LookupChannelBenchmark("ecommerce")

		require.True(t, ok)
		assert.Equal(t, 4.0, b.ROAS)
		assert.Equal(t, 1.31, b.CPC)
	})

	t.Run("Deve sinalizar canal desconhecido", func(t *testing.T) {
		_, ok := LookupChannelBenchmark("radio")

		assert.False(t, ok)
	})
}

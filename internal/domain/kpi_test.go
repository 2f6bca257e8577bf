package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseSnapshot() *FinancialSnapshot {
	return &FinancialSnapshot{
		Period:             "Q1 2025",
		Industry:           "Technology",
		Revenue:            500000,
		NetCreditSales:     350000,
		COGS:               200000,
		OperatingExpenses:  150000,
		InterestExpense:    5000,
		TaxExpense:         25000,
		CurrentAssets:      120000,
		Inventory:          25000,
		AccountsReceivable: 45000,
		CurrentLiabilities: 60000,
		TotalAssets:        450000,
		TotalLiabilities:   150000,
		TotalEquity:        300000,
		CashInflow:         45000,
		CashOutflow:        38000,
		MarketingSpend:     15000,
		LeadsGenerated:     1200,
		Conversions:        80,
	}
}

func TestCalculateKPIs(t *testing.T) {
	t.Run("Deve calcular lucro líquido e margem do snapshot de referência", func(t *testing.T) {
		kpis := CalculateKPIs(baseSnapshot())

		assert.Equal(t, 300000.0, kpis.GrossProfit)
		assert.Equal(t, 150000.0, kpis.EBITDA)
		assert.Equal(t, 120000.0, kpis.NetIncome)
		assert.InDelta(t, 24.0, kpis.NetProfitMargin, 0.0001)
	})

	t.Run("Deve calcular índices de liquidez do snapshot de referência", func(t *testing.T) {
		kpis := CalculateKPIs(baseSnapshot())

		assert.InDelta(t, 2.0, kpis.CurrentRatio, 0.0001)
		assert.InDelta(t, 1.58333, kpis.QuickRatio, 0.0001)
		assert.InDelta(t, 0.5, kpis.DebtToEquity, 0.0001)
	})

	t.Run("Deve retornar zero para índices quando o passivo circulante é zero", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.CurrentLiabilities = 0

		kpis := CalculateKPIs(snapshot)

		assert.Equal(t, 0.0, kpis.CurrentRatio)
		assert.Equal(t, 0.0, kpis.QuickRatio)
	})

	t.Run("Deve retornar zero para alavancagem quando o patrimônio é zero", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.TotalEquity = 0

		kpis := CalculateKPIs(snapshot)

		assert.Equal(t, 0.0, kpis.DebtToEquity)
		assert.Equal(t, 0.0, kpis.ROE)
	})

	t.Run("Deve aplicar piso de 1000 na queima de caixa para o runway", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.CashInflow = 50000
		snapshot.CashOutflow = 50000

		kpis := CalculateKPIs(snapshot)

		assert.InDelta(t, 120.0, kpis.CashRunway, 0.0001)
	})

	t.Run("Deve usar divisor 1 no CAC quando não há conversões", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Conversions = 0

		kpis := CalculateKPIs(snapshot)

		assert.InDelta(t, 15000.0, kpis.CAC, 0.0001)
	})

	t.Run("Deve usar a receita total quando não há vendas a crédito", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.NetCreditSales = 0

		kpis := CalculateKPIs(snapshot)

		assert.InDelta(t, 500000.0/45000.0, kpis.ReceivablesTurnover, 0.0001)
	})

	t.Run("Deve retornar conjunto zerado para snapshot nulo", func(t *testing.T) {
		kpis := CalculateKPIs(nil)

		assert.Equal(t, &KPISet{}, kpis)
	})

	t.Run("Não deve produzir NaN ou Inf com snapshot totalmente zerado", func(t *testing.T) {
		kpis := CalculateKPIs(&FinancialSnapshot{Period: "New Period"})

		assert.Equal(t, 0.0, kpis.NetProfitMargin)
		assert.Equal(t, 0.0, kpis.MarketingROI)
		assert.Equal(t, 0.0, kpis.ROA)
		assert.Equal(t, 0.0, kpis.InventoryTurnover)
	})
}

func TestFinancialSnapshotValidate(t *testing.T) {
	t.Run("Deve aceitar snapshot de referência", func(t *testing.T) {
		assert.NoError(t, baseSnapshot().Validate())
	})

	t.Run("Deve rejeitar snapshot sem período", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Period = ""

		assert.Error(t, snapshot.Validate())
	})

	t.Run("Deve rejeitar valor monetário negativo", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Revenue = -1

		assert.Error(t, snapshot.Validate())
	})
}

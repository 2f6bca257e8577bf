package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCashFlow(t *testing.T) {
	t.Run("Deve calcular queima e runway com saída maior que entrada", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.CashInflow = 38000
		snapshot.CashOutflow = 45000

		summary := SummarizeCashFlow(snapshot)

		assert.Equal(t, -7000.0, summary.NetCashFlow)
		assert.Equal(t, 7000.0, summary.BurnRate)
		assert.Equal(t, 95000.0, summary.LiquidAssets)
		assert.False(t, summary.RunwayUnbounded)
		assert.InDelta(t, 95000.0/7000.0, summary.RunwayMonths, 0.0001)
	})

	t.Run("Deve sinalizar runway ilimitado quando não há queima", func(t *testing.T) {
		summary := SummarizeCashFlow(baseSnapshot())

		assert.Equal(t, 7000.0, summary.NetCashFlow)
		assert.Equal(t, 0.0, summary.BurnRate)
		assert.True(t, summary.RunwayUnbounded)
		assert.Equal(t, 0.0, summary.RunwayMonths)
	})

	t.Run("Deve tratar snapshot nulo como ilimitado", func(t *testing.T) {
		summary := SummarizeCashFlow(nil)

		assert.True(t, summary.RunwayUnbounded)
	})
}

func TestExpenseBreakdown(t *testing.T) {
	t.Run("Deve listar apenas despesas não-nulas", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.InterestExpense = 0

		slices := ExpenseBreakdown(snapshot)

		require.Len(t, slices, 3)
		assert.Equal(t, "COGS", slices[0].Name)
		assert.Equal(t, "OpEx", slices[1].Name)
		assert.Equal(t, "Tax", slices[2].Name)
	})
}

func TestForecastBalance(t *testing.T) {
	t.Run("Deve projetar sete pontos com fluxo constante", func(t *testing.T) {
		points := ForecastBalance(100000, 40000, 50000)

		require.Len(t, points, 7)
		assert.Equal(t, "Now", points[0].Month)
		assert.Equal(t, "+6 Mo", points[6].Month)
		assert.Equal(t, 100000.0, points[0].Balance)
		assert.Equal(t, 40000.0, points[6].Balance)

		for _, p := range points {
			assert.True(t, p.Safe)
		}
	})

	t.Run("Deve marcar saldo negativo como inseguro", func(t *testing.T) {
		points := ForecastBalance(10000, 0, 5000)

		assert.True(t, points[1].Safe)
		assert.False(t, points[2].Safe)
		assert.False(t, points[6].Safe)
	})
}

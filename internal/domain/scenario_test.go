package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectScenario(t *testing.T) {
	t.Run("Deve reproduzir o lucro do período base com parâmetros zerados", func(t *testing.T) {
		snapshot := baseSnapshot()

		series := ProjectScenario(snapshot, ScenarioParameters{})

		require.Len(t, series.Points, 13)
		assert.Equal(t, "Now", series.Points[0].Month)
		assert.Equal(t, "Month 12", series.Points[12].Month)
		assert.InDelta(t, 120000.0, series.BaselineNetIncome, 0.0001)

		// EBT base 145000 com imposto 25000 dá alíquota efetiva de
		// 25/145; sem crescimento a projeção fica estável em todos os meses.
		for _, point := range series.Points {
			assert.InDelta(t, snapshot.Revenue, point.Revenue, 0.0001)
			assert.InDelta(t, 120000.0, point.NetIncome, 0.0001)
		}
	})

	t.Run("Deve compor o crescimento mensalmente e não linearmente", func(t *testing.T) {
		snapshot := baseSnapshot()

		series := ProjectScenario(snapshot, ScenarioParameters{RevenueGrowthPct: 12})

		expected := snapshot.Revenue * math.Pow(1.01, 12)
		assert.InDelta(t, expected, series.Points[12].Revenue, 0.0001)
		assert.Greater(t, series.Points[12].Revenue, snapshot.Revenue*1.12)
	})

	t.Run("Deve calcular a alíquota efetiva uma única vez sobre o período base", func(t *testing.T) {
		snapshot := baseSnapshot()

		series := ProjectScenario(snapshot, ScenarioParameters{RevenueGrowthPct: 40})

		assert.InDelta(t, 25000.0/145000.0, series.EffectiveTaxRate, 0.0001)
	})

	t.Run("Deve usar a alíquota padrão quando o EBT base é não-positivo", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.OperatingExpenses = 400000

		series := ProjectScenario(snapshot, ScenarioParameters{})

		assert.Equal(t, defaultEffectiveTaxRate, series.EffectiveTaxRate)
	})

	t.Run("Não deve cobrar imposto sobre prejuízo projetado", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.Revenue = 100000
		snapshot.COGS = 90000
		snapshot.OperatingExpenses = 50000

		series := ProjectScenario(snapshot, ScenarioParameters{})

		for _, point := range series.Points {
			assert.Equal(t, 0.0, point.Tax)
			assert.InDelta(t, point.EBT, point.NetIncome, 0.0001)
		}
	})

	t.Run("Deve aplicar piso de 1 nas despesas operacionais projetadas", func(t *testing.T) {
		snapshot := baseSnapshot()
		snapshot.OperatingExpenses = 10000

		series := ProjectScenario(snapshot, ScenarioParameters{
			OpexReductionPct: 100,
			HeadcountDelta:   -5,
		})

		for _, point := range series.Points {
			assert.Equal(t, 1.0, point.Opex)
		}
	})

	t.Run("Deve separar custo de contratação e economia de demissão", func(t *testing.T) {
		snapshot := baseSnapshot()

		hiring := ProjectScenario(snapshot, ScenarioParameters{HeadcountDelta: 2, AverageHeadCost: 6000})
		layoff := ProjectScenario(snapshot, ScenarioParameters{HeadcountDelta: -2, AverageHeadCost: 6000})

		assert.InDelta(t, snapshot.OperatingExpenses+12000, hiring.Points[0].Opex, 0.0001)
		assert.InDelta(t, snapshot.OperatingExpenses-12000, layoff.Points[0].Opex, 0.0001)
	})

	t.Run("Deve escalar o CPV com a receita antes do ganho de eficiência", func(t *testing.T) {
		snapshot := baseSnapshot()

		series := ProjectScenario(snapshot, ScenarioParameters{RevenueGrowthPct: 12, COGSReductionPct: 10})

		point := series.Points[12]
		expectedCOGS := snapshot.COGS * (point.Revenue / snapshot.Revenue) * 0.9
		assert.InDelta(t, expectedCOGS, point.COGS, 0.0001)
	})

	t.Run("Deve retornar série vazia para snapshot nulo", func(t *testing.T) {
		series := ProjectScenario(nil, ScenarioParameters{})

		assert.Empty(t, series.Points)
	})
}

func TestScenarioPresets(t *testing.T) {
	t.Run("Deve conter os três cenários de estresse", func(t *testing.T) {
		assert.Equal(t, []string{"recession", "hypergrowth", "efficiency"}, ListScenarioPresets())
	})

	t.Run("Deve retornar os parâmetros de recessão", func(t *testing.T) {
		params, ok := LookupScenarioPreset(ScenarioPresetRecession)

		assert.True(t, ok)
		assert.Equal(t, -15.0, params.RevenueGrowthPct)
		assert.Equal(t, 10.0, params.OpexReductionPct)
		assert.Equal(t, -2.0, params.HeadcountDelta)
	})

	t.Run("Deve sinalizar preset desconhecido", func(t *testing.T) {
		_, ok := LookupScenarioPreset("apocalypse")

		assert.False(t, ok)
	})
}

package domain

import (
	"fmt"
	"math"
)

// defaultEffectiveTaxRate é a alíquota usada quando o EBT do período base é
// não-positivo. Constante de política sujeita a revisão.
const defaultEffectiveTaxRate = 0.21

// defaultAverageHeadCost é o custo mensal médio por contratação quando o
// parâmetro não é informado.
const defaultAverageHeadCost = 6000

// ScenarioParameters são os ajustes do planejador de cenários. Crescimento
// anual é composto mensalmente; reduções são percentuais de eficiência.
type ScenarioParameters struct {
	RevenueGrowthPct float64 `json:"revenue_growth_pct"`
	COGSReductionPct float64 `json:"cogs_reduction_pct"`
	OpexReductionPct float64 `json:"opex_reduction_pct"`
	HeadcountDelta   float64 `json:"headcount_delta"`
	AverageHeadCost  float64 `json:"average_head_cost"`
}

// ProjectionPoint é um ponto mensal da projeção.
type ProjectionPoint struct {
	Month     string  `json:"month"`
	Revenue   float64 `json:"revenue"`
	COGS      float64 `json:"cogs"`
	Opex      float64 `json:"opex"`
	EBT       float64 `json:"ebt"`
	Tax       float64 `json:"tax"`
	NetIncome float64 `json:"net_income"`
	Margin    float64 `json:"margin"`
}

// ProjectionSeries é a série de 13 pontos mensais (mês 0 = agora) com o
// lucro líquido do período base para comparação.
type ProjectionSeries struct {
	Points            []ProjectionPoint  `json:"points"`
	BaselineNetIncome float64            `json:"baseline_net_income"`
	EffectiveTaxRate  float64            `json:"effective_tax_rate"`
	Parameters        ScenarioParameters `json:"parameters"`
}

const projectionMonths = 13

// ProjectScenario projeta 13 meses a partir do snapshot e dos parâmetros.
// A alíquota efetiva é calculada uma única vez sobre o período base.
func ProjectScenario(snapshot *FinancialSnapshot, params ScenarioParameters) *ProjectionSeries {
	if snapshot == nil {
		return &ProjectionSeries{Points: []ProjectionPoint{}}
	}

	if params.AverageHeadCost == 0 {
		params.AverageHeadCost = defaultAverageHeadCost
	}

	effectiveTaxRate := defaultEffectiveTaxRate
	if ebt := snapshot.EBT(); ebt > 0 {
		effectiveTaxRate = snapshot.TaxExpense / ebt
	}

	baselineNetIncome := snapshot.Revenue - snapshot.COGS - snapshot.OperatingExpenses -
		snapshot.InterestExpense - snapshot.TaxExpense

	monthlyGrowthRate := params.RevenueGrowthPct / 100 / 12

	newHiringCosts := 0.0
	salarySavings := 0.0
	if params.HeadcountDelta > 0 {
		newHiringCosts = params.HeadcountDelta * params.AverageHeadCost
	} else if params.HeadcountDelta < 0 {
		salarySavings = math.Abs(params.HeadcountDelta) * params.AverageHeadCost
	}

	points := make([]ProjectionPoint, 0, projectionMonths)

	for i := 0; i < projectionMonths; i++ {
		growthFactor := math.Pow(1+monthlyGrowthRate, float64(i))
		projectedRevenue := snapshot.Revenue * growthFactor

		// O CPV acompanha o volume de receita antes do ganho de eficiência.
		baseCOGS := snapshot.COGS * safeDiv(projectedRevenue, snapshot.Revenue)
		projectedCOGS := baseCOGS * (1 - params.COGSReductionPct/100)

		baseOpex := snapshot.OperatingExpenses * (1 - params.OpexReductionPct/100)
		projectedOpex := math.Max(1, baseOpex+newHiringCosts-salarySavings)

		projectedEBT := projectedRevenue - projectedCOGS - projectedOpex - snapshot.InterestExpense

		// Sem crédito fiscal sobre prejuízo.
		projectedTax := 0.0
		if projectedEBT > 0 {
			projectedTax = projectedEBT * effectiveTaxRate
		}

		projectedNetIncome := projectedEBT - projectedTax

		label := "Now"
		if i > 0 {
			label = fmt.Sprintf("Month %d", i)
		}

		points = append(points, ProjectionPoint{
			Month:     label,
			Revenue:   projectedRevenue,
			COGS:      projectedCOGS,
			Opex:      projectedOpex,
			EBT:       projectedEBT,
			Tax:       projectedTax,
			NetIncome: projectedNetIncome,
			Margin:    safeDiv(projectedNetIncome, projectedRevenue) * 100,
		})
	}

	return &ProjectionSeries{
		Points:            points,
		BaselineNetIncome: baselineNetIncome,
		EffectiveTaxRate:  effectiveTaxRate,
		Parameters:        params,
	}
}

// Presets de cenário de estresse. São apenas conjuntos nomeados dos mesmos
// cinco parâmetros, não algoritmos distintos.
const (
	ScenarioPresetRecession   = "recession"
	ScenarioPresetHypergrowth = "hypergrowth"
	ScenarioPresetEfficiency  = "efficiency"
)

var scenarioPresets = map[string]ScenarioParameters{
	ScenarioPresetRecession: {
		RevenueGrowthPct: -15,
		COGSReductionPct: 0,
		OpexReductionPct: 10,
		HeadcountDelta:   -2,
		AverageHeadCost:  defaultAverageHeadCost,
	},
	ScenarioPresetHypergrowth: {
		RevenueGrowthPct: 40,
		COGSReductionPct: 5,
		OpexReductionPct: 0,
		HeadcountDelta:   4,
		AverageHeadCost:  defaultAverageHeadCost,
	},
	ScenarioPresetEfficiency: {
		RevenueGrowthPct: 5,
		COGSReductionPct: 15,
		OpexReductionPct: 20,
		HeadcountDelta:   0,
		AverageHeadCost:  defaultAverageHeadCost,
	},
}

// LookupScenarioPreset retorna os parâmetros de um preset nomeado.
func LookupScenarioPreset(name string) (ScenarioParameters, bool) {
	params, ok := scenarioPresets[name]
	return params, ok
}

// ListScenarioPresets retorna os nomes dos presets disponíveis.
func ListScenarioPresets() []string {
	return []string{ScenarioPresetRecession, ScenarioPresetHypergrowth, ScenarioPresetEfficiency}
}

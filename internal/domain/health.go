package domain

import (
	"math"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/utils"
)

// Rótulos do score de saúde financeira.
const (
	HealthLabelStrong         = "Strong"
	HealthLabelModerate       = "Moderate"
	HealthLabelNeedsAttention = "Needs Attention"
	HealthLabelNotAvailable   = "N/A"
)

// HealthComponent é um subcomponente do score para exibição.
type HealthComponent struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// HealthScore é o índice composto de saúde financeira (0 a 100) com o
// rótulo qualitativo e os subcomponentes.
type HealthScore struct {
	Total      int               `json:"total"`
	Label      string            `json:"label"`
	Components []HealthComponent `json:"components"`
}

// Faixas saudáveis usadas na normalização dos componentes.
const (
	liquidityBandFloor   = 0.5
	liquidityBandCeiling = 2.5
	leverageBandFloor    = 0.5
	leverageBandCeiling  = 2.0
)

// CalculateHealthScore compõe o score de saúde a partir dos indicadores e do
// benchmark do setor. Entrada degenerada produz um resultado "N/A" zerado em
// vez de erro. Pesos: rentabilidade 30%, liquidez 30%, solvência 40%.
func CalculateHealthScore(kpis *KPISet, benchmark *IndustryBenchmark) *HealthScore {
	if kpis == nil || benchmark == nil {
		return &HealthScore{
			Total:      0,
			Label:      HealthLabelNotAvailable,
			Components: []HealthComponent{},
		}
	}

	marginScore := utils.Clamp(kpis.NetProfitMargin/(benchmark.NetMargin*1.5)*100, 0, 100)
	currentRatioScore := utils.Clamp((kpis.CurrentRatio-liquidityBandFloor)/(liquidityBandCeiling-liquidityBandFloor)*100, 0, 100)
	debtToEquityScore := utils.Clamp((leverageBandCeiling-kpis.DebtToEquity)/(leverageBandCeiling-leverageBandFloor)*100, 0, 100)

	total := marginScore*0.30 + currentRatioScore*0.30 + debtToEquityScore*0.40

	// O rótulo considera o total antes do arredondamento: 78.4 exibe 78
	// com rótulo "Strong".
	label := HealthLabelNeedsAttention
	if total > 78 {
		label = HealthLabelStrong
	} else if total > 50 {
		label = HealthLabelModerate
	}

	return &HealthScore{
		Total: int(math.Round(total)),
		Label: label,
		Components: []HealthComponent{
			{Name: "Profitability", Value: int(math.Round(marginScore))},
			{Name: "Liquidity", Value: int(math.Round(currentRatioScore))},
			{Name: "Solvency", Value: int(math.Round(debtToEquityScore))},
		},
	}
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHealthScore(t *testing.T) {
	benchmark := LookupBenchmark("Technology")

	t.Run("Deve calcular score forte para o snapshot de referência", func(t *testing.T) {
		kpis := CalculateKPIs(baseSnapshot())

		score := CalculateHealthScore(kpis, &benchmark)

		// margem 24% contra alvo 15*1.5 satura em 100; liquidez 2.0 pontua
		// 75; alavancagem 0.5 pontua 100.
		assert.Equal(t, 93, score.Total)
		assert.Equal(t, HealthLabelStrong, score.Label)
		assert.Len(t, score.Components, 3)
		assert.Equal(t, 100, score.Components[0].Value)
		assert.Equal(t, 75, score.Components[1].Value)
		assert.Equal(t, 100, score.Components[2].Value)
	})

	t.Run("Deve retornar N/A zerado para entrada degenerada", func(t *testing.T) {
		score := CalculateHealthScore(nil, &benchmark)

		assert.Equal(t, 0, score.Total)
		assert.Equal(t, HealthLabelNotAvailable, score.Label)
		assert.Empty(t, score.Components)

		score = CalculateHealthScore(&KPISet{}, nil)

		assert.Equal(t, HealthLabelNotAvailable, score.Label)
	})

	t.Run("Deve manter o total no intervalo de 0 a 100", func(t *testing.T) {
		tests := []struct {
			name string
			kpis *KPISet
		}{
			{name: "indicadores extremos positivos", kpis: &KPISet{NetProfitMargin: 1000, CurrentRatio: 50, DebtToEquity: 0}},
			{name: "indicadores extremos negativos", kpis: &KPISet{NetProfitMargin: -1000, CurrentRatio: -5, DebtToEquity: 50}},
			{name: "indicadores zerados", kpis: &KPISet{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				score := CalculateHealthScore(tt.kpis, &benchmark)

				assert.GreaterOrEqual(t, score.Total, 0)
				assert.LessOrEqual(t, score.Total, 100)
			})
		}
	})

	t.Run("Deve aplicar os limiares de rótulo", func(t *testing.T) {
		tests := []struct {
			name          string
			kpis          *KPISet
			expectedLabel string
		}{
			{
				// margem 0, liquidez 2.5 pontua 100, dívida 2.0 pontua 0: total 30
				name:          "total 30 precisa de atenção",
				kpis:          &KPISet{NetProfitMargin: 0, CurrentRatio: 2.5, DebtToEquity: 2.0},
				expectedLabel: HealthLabelNeedsAttention,
			},
			{
				// margem satura 100, liquidez 100, dívida 0: total 60
				name:          "total 60 moderado",
				kpis:          &KPISet{NetProfitMargin: 100, CurrentRatio: 2.5, DebtToEquity: 2.0},
				expectedLabel: HealthLabelModerate,
			},
			{
				// todos os componentes saturados: total 100
				name:          "total 100 forte",
				kpis:          &KPISet{NetProfitMargin: 100, CurrentRatio: 2.5, DebtToEquity: 0.5},
				expectedLabel: HealthLabelStrong,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				score := CalculateHealthScore(tt.kpis, &benchmark)

				assert.Equal(t, tt.expectedLabel, score.Label)
			})
		}
	})

	t.Run("Deve rotular pelo total sem arredondamento", func(t *testing.T) {
		// margem 100, liquidez 100, dívida 1.32 pontua 45.33: total 78.13,
		// exibido como 78 mas ainda acima do limiar de "Strong".
		kpis := &KPISet{NetProfitMargin: 100, CurrentRatio: 2.5, DebtToEquity: 1.32}

		score := CalculateHealthScore(kpis, &benchmark)

		assert.Equal(t, 78, score.Total)
		assert.Equal(t, HealthLabelStrong, score.Label)
	})
}

func TestLookupBenchmark(t *testing.T) {
	t.Run("Deve retornar benchmark do setor conhecido", func(t *testing.T) {
		b := LookupBenchmark("SaaS (Software)")

		assert.Equal(t, 22.0, b.NetMargin)
		assert.Equal(t, 25.0, b.ROE)
	})

	t.Run("Deve cair no setor padrão quando desconhecido", func(t *testing.T) {
		b := LookupBenchmark("Space Mining")

		assert.Equal(t, DefaultIndustry, b.Industry)
		assert.Equal(t, 15.0, b.NetMargin)
	})

	t.Run("Deve listar os setores em ordem alfabética", func(t *testing.T) {
		industries := ListIndustries()

		assert.Len(t, industries, 17)
		assert.Equal(t, "Agriculture", industries[0])
	})
}

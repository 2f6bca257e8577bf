package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareWithBenchmark(t *testing.T) {
	t.Run("Deve comparar o ROE calculado com o ROE de referência do setor", func(t *testing.T) {
		kpis := CalculateKPIs(baseSnapshot())

		comparison := CompareWithBenchmark(kpis, "Technology")

		require.Len(t, comparison.Rows, 5)

		roe := comparison.Rows[4]
		assert.Equal(t, "roe", roe.Metric)
		assert.InDelta(t, 40.0, roe.Actual, 0.0001)
		assert.InDelta(t, 18.0, roe.Benchmark, 0.0001)
		assert.InDelta(t, 22.0, roe.Delta, 0.0001)
	})

	t.Run("Deve usar o setor padrão para setor desconhecido", func(t *testing.T) {
		comparison := CompareWithBenchmark(&KPISet{}, "Space Mining")

		assert.Equal(t, DefaultIndustry, comparison.Industry)
	})

	t.Run("Deve tratar KPIs nulos como zerados", func(t *testing.T) {
		comparison := CompareWithBenchmark(nil, "Technology")

		require.Len(t, comparison.Rows, 5)
		assert.Equal(t, 0.0, comparison.Rows[0].Actual)
		assert.InDelta(t, -15.0, comparison.Rows[0].Delta, 0.0001)
	})
}

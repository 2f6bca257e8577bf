package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGoalProgress(t *testing.T) {
	snapshot := baseSnapshot()
	kpis := CalculateKPIs(snapshot)

	t.Run("Deve medir o avanço de uma meta de receita", func(t *testing.T) {
		goal := &FinancialGoal{Metric: GoalMetricRevenue, TargetValue: 1000000}

		progress := CalculateGoalProgress(goal, snapshot, kpis)

		assert.InDelta(t, 500000.0, progress.ActualValue, 0.0001)
		assert.InDelta(t, 50.0, progress.ProgressPct, 0.0001)
		assert.False(t, progress.Achieved)
	})

	t.Run("Deve limitar o avanço a 100 por cento", func(t *testing.T) {
		goal := &FinancialGoal{Metric: GoalMetricNetProfit, TargetValue: 60000}

		progress := CalculateGoalProgress(goal, snapshot, kpis)

		assert.Equal(t, 100.0, progress.ProgressPct)
		assert.True(t, progress.Achieved)
	})

	t.Run("Deve zerar o avanço com alvo não-positivo", func(t *testing.T) {
		goal := &FinancialGoal{Metric: GoalMetricRevenue, TargetValue: 0}

		progress := CalculateGoalProgress(goal, snapshot, kpis)

		assert.Equal(t, 0.0, progress.ProgressPct)
		assert.False(t, progress.Achieved)
	})

	t.Run("Deve extrair o valor atual de cada indicador", func(t *testing.T) {
		tests := []struct {
			metric   GoalMetric
			expected float64
		}{
			{metric: GoalMetricRevenue, expected: 500000},
			{metric: GoalMetricNetProfit, expected: 120000},
			{metric: GoalMetricNetMargin, expected: 24},
			{metric: GoalMetricCurrentAssets, expected: 120000},
			{metric: GoalMetricLeadsGenerated, expected: 1200},
			{metric: GoalMetric("unknown"), expected: 0},
		}

		for _, tt := range tests {
			t.Run(string(tt.metric), func(t *testing.T) {
				assert.InDelta(t, tt.expected, MetricActualValue(tt.metric, snapshot, kpis), 0.0001)
			})
		}
	})

	t.Run("Deve tratar meta nula", func(t *testing.T) {
		progress := CalculateGoalProgress(nil, snapshot, kpis)

		assert.Nil(t, progress.Goal)
		assert.Equal(t, 0.0, progress.ProgressPct)
	})
}

func TestFinancialGoalValidMetric(t *testing.T) {
	assert.True(t, (&FinancialGoal{Metric: GoalMetricRevenue}).ValidMetric())
	assert.True(t, (&FinancialGoal{Metric: GoalMetricNetMargin}).ValidMetric())
	assert.False(t, (&FinancialGoal{Metric: GoalMetric("ebitda")}).ValidMetric())
}

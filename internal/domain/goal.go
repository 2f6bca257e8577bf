package domain

import (
	"math"
	"time"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/utils"
)

// GoalMetric identifica qual indicador uma meta acompanha.
type GoalMetric string

const (
	GoalMetricRevenue        GoalMetric = "revenue"
	GoalMetricNetProfit      GoalMetric = "net_profit"
	GoalMetricNetMargin      GoalMetric = "net_margin"
	GoalMetricCurrentAssets  GoalMetric = "current_assets"
	GoalMetricLeadsGenerated GoalMetric = "leads_generated"
)

// GoalStatuses possíveis de uma meta financeira.
const (
	GoalStatusOnTrack   = "on_track"
	GoalStatusAtRisk    = "at_risk"
	GoalStatusCompleted = "completed"
)

// FinancialGoal é uma meta financeira de um negócio com valor alvo e prazo.
type FinancialGoal struct {
	ID          string     `json:"id"`
	BusinessID  string     `json:"business_id"`
	Name        string     `json:"name"`
	Metric      GoalMetric `json:"metric"`
	TargetValue float64    `json:"target_value"`
	Deadline    string     `json:"deadline"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type UpdateGoalRequest struct {
	ID          string      `json:"id"`
	Name        *string     `json:"name,omitempty"`
	Metric      *GoalMetric `json:"metric,omitempty"`
	TargetValue *float64    `json:"target_value,omitempty"`
	Deadline    *string     `json:"deadline,omitempty"`
}

// GoalProgress é o avanço de uma meta frente ao snapshot mais recente.
type GoalProgress struct {
	Goal        *FinancialGoal `json:"goal"`
	ActualValue float64        `json:"actual_value"`
	ProgressPct float64        `json:"progress_pct"`
	Achieved    bool           `json:"achieved"`
}

// ValidMetric verifica se o indicador da meta é reconhecido.
func (g *FinancialGoal) ValidMetric() bool {
	switch g.Metric {
	case GoalMetricRevenue, GoalMetricNetProfit, GoalMetricNetMargin,
		GoalMetricCurrentAssets, GoalMetricLeadsGenerated:
		return true
	}
	return false
}

// MetricActualValue extrai do snapshot o valor atual do indicador da meta.
func MetricActualValue(metric GoalMetric, snapshot *FinancialSnapshot, kpis *KPISet) float64 {
	if snapshot == nil || kpis == nil {
		return 0
	}

	switch metric {
	case GoalMetricRevenue:
		return snapshot.Revenue
	case GoalMetricNetProfit:
		return kpis.NetIncome
	case GoalMetricNetMargin:
		return kpis.NetProfitMargin
	case GoalMetricCurrentAssets:
		return snapshot.CurrentAssets
	case GoalMetricLeadsGenerated:
		return snapshot.LeadsGenerated
	}

	return 0
}

// CalculateGoalProgress mede o avanço de uma meta, com progresso limitado a
// 100%.
func CalculateGoalProgress(goal *FinancialGoal, snapshot *FinancialSnapshot, kpis *KPISet) *GoalProgress {
	if goal == nil {
		return &GoalProgress{}
	}

	actual := MetricActualValue(goal.Metric, snapshot, kpis)

	progress := 0.0
	if goal.TargetValue > 0 {
		progress = math.Min(actual/goal.TargetValue*100, 100)
	}

	return &GoalProgress{
		Goal:        goal,
		ActualValue: actual,
		ProgressPct: utils.RoundWithOneDecimalPlace(progress),
		Achieved:    progress >= 100,
	}
}

// ResolveGoalStatus decide o status de uma meta a partir do avanço atual.
// Metas não atingidas após o prazo ficam em risco.
func ResolveGoalStatus(goal *FinancialGoal, progress *GoalProgress, now time.Time) string {
	if progress != nil && progress.Achieved {
		return GoalStatusCompleted
	}

	if goal != nil && goal.Deadline != "" {
		deadline, err := utils.ParseDate(goal.Deadline)
		if err == nil && now.After(*deadline) {
			return GoalStatusAtRisk
		}
	}

	return GoalStatusOnTrack
}

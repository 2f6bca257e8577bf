package domain

import (
	"fmt"
	"math"
)

// CashFlowSummary resume o fluxo de caixa do período. Quando a queima mensal
// é zero o runway é ilimitado e o campo Unbounded sinaliza isso explicitamente
// em vez de um valor infinito.
type CashFlowSummary struct {
	NetCashFlow     float64 `json:"net_cash_flow"`
	BurnRate        float64 `json:"burn_rate"`
	LiquidAssets    float64 `json:"liquid_assets"`
	RunwayMonths    float64 `json:"runway_months"`
	RunwayUnbounded bool    `json:"runway_unbounded"`
}

// ExpenseSlice é uma fatia da composição de despesas para exibição.
type ExpenseSlice struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// BalancePoint é um ponto da previsão de saldo de caixa.
type BalancePoint struct {
	Month   string  `json:"month"`
	Balance float64 `json:"balance"`
	Safe    bool    `json:"safe"`
}

const balanceForecastMonths = 7

// SummarizeCashFlow calcula o resumo de caixa de um snapshot.
func SummarizeCashFlow(snapshot *FinancialSnapshot) *CashFlowSummary {
	if snapshot == nil {
		return &CashFlowSummary{RunwayUnbounded: true}
	}

	netCashFlow := snapshot.CashInflow - snapshot.CashOutflow
	burnRate := math.Max(0, snapshot.CashOutflow-snapshot.CashInflow)
	liquidAssets := math.Max(0, snapshot.CurrentAssets-snapshot.Inventory)

	summary := &CashFlowSummary{
		NetCashFlow:  netCashFlow,
		BurnRate:     burnRate,
		LiquidAssets: liquidAssets,
	}

	if burnRate > 0 {
		summary.RunwayMonths = liquidAssets / burnRate
	} else {
		summary.RunwayUnbounded = true
	}

	return summary
}

// ExpenseBreakdown retorna as despesas não-nulas do período.
func ExpenseBreakdown(snapshot *FinancialSnapshot) []ExpenseSlice {
	if snapshot == nil {
		return []ExpenseSlice{}
	}

	slices := []ExpenseSlice{
		{Name: "COGS", Value: snapshot.COGS},
		{Name: "OpEx", Value: snapshot.OperatingExpenses},
		{Name: "Interest", Value: snapshot.InterestExpense},
		{Name: "Tax", Value: snapshot.TaxExpense},
	}

	filtered := make([]ExpenseSlice, 0, len(slices))
	for _, s := range slices {
		if s.Value > 0 {
			filtered = append(filtered, s)
		}
	}

	return filtered
}

// ForecastBalance projeta o saldo de caixa por 7 pontos mensais assumindo
// fluxo líquido constante.
func ForecastBalance(startingCash, monthlyInflow, monthlyOutflow float64) []BalancePoint {
	netFlow := monthlyInflow - monthlyOutflow

	points := make([]BalancePoint, 0, balanceForecastMonths)
	for i := 0; i < balanceForecastMonths; i++ {
		balance := startingCash + netFlow*float64(i)

		label := "Now"
		if i > 0 {
			label = fmt.Sprintf("+%d Mo", i)
		}

		points = append(points, BalancePoint{
			Month:   label,
			Balance: balance,
			Safe:    balance > 0,
		})
	}

	return points
}

package analyzing

import (
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

// CashFlowReport reúne o resumo de caixa, a composição de despesas e a
// previsão de saldo de um negócio.
type CashFlowReport struct {
	Summary   *domain.CashFlowSummary `json:"summary"`
	Breakdown []domain.ExpenseSlice   `json:"breakdown"`
	Forecast  []domain.BalancePoint   `json:"forecast"`
}

// Analyzer define as operações de análise financeira sobre snapshots.
type Analyzer interface {
	// Overview monta a visão geral do negócio: snapshot, KPIs, score de
	// saúde, caixa e benchmark do setor.
	Overview(businessID, period string) (*domain.BusinessOverview, error)

	// KPIs calcula os indicadores do snapshot do período informado. Período
	// vazio usa o snapshot mais recente.
	KPIs(businessID, period string) (*domain.KPISet, error)

	// Health calcula o score de saúde financeira do negócio.
	Health(businessID, period string) (*domain.HealthScore, error)

	// CashFlow monta o relatório de caixa do negócio.
	CashFlow(businessID, period string) (*CashFlowReport, error)

	// BenchmarkComparison compara os indicadores do negócio com o setor.
	BenchmarkComparison(businessID, period string) (*domain.BenchmarkComparison, error)

	// ListBenchmarks retorna a tabela completa de referências por setor.
	ListBenchmarks() []domain.IndustryBenchmark

	// Consolidate agrega os negócios de um usuário em uma moeda base.
	Consolidate(ownerID int, baseCurrency string) (*domain.ConsolidatedReport, error)
}

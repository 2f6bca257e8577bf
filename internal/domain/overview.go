package domain

// BusinessOverview é a visão geral de um negócio no período mais recente.
type BusinessOverview struct {
	Business  *BusinessProfile   `json:"business"`
	Snapshot  *FinancialSnapshot `json:"snapshot"`
	KPIs      *KPISet            `json:"kpis"`
	Health    *HealthScore       `json:"health"`
	CashFlow  *CashFlowSummary   `json:"cash_flow"`
	Benchmark IndustryBenchmark  `json:"benchmark"`
}

// BenchmarkComparisonRow compara um indicador do negócio com a referência do
// setor.
type BenchmarkComparisonRow struct {
	Metric    string  `json:"metric"`
	Actual    float64 `json:"actual"`
	Benchmark float64 `json:"benchmark"`
	Delta     float64 `json:"delta"`
}

// BenchmarkComparison é o conjunto de comparações de um negócio com seu setor.
type BenchmarkComparison struct {
	Industry string                   `json:"industry"`
	Rows     []BenchmarkComparisonRow `json:"rows"`
}

// CompareWithBenchmark compara os indicadores calculados com a tabela de
// referência do setor informado.
func CompareWithBenchmark(kpis *KPISet, industry string) *BenchmarkComparison {
	benchmark := LookupBenchmark(industry)

	if kpis == nil {
		kpis = &KPISet{}
	}

	rows := []BenchmarkComparisonRow{
		{Metric: "net_margin", Actual: kpis.NetProfitMargin, Benchmark: benchmark.NetMargin},
		{Metric: "current_ratio", Actual: kpis.CurrentRatio, Benchmark: benchmark.CurrentRatio},
		{Metric: "quick_ratio", Actual: kpis.QuickRatio, Benchmark: benchmark.QuickRatio},
		{Metric: "debt_to_equity", Actual: kpis.DebtToEquity, Benchmark: benchmark.DebtToEquity},
		{Metric: "roe", Actual: kpis.ROE, Benchmark: benchmark.ROE},
	}

	for i := range rows {
		rows[i].Delta = rows[i].Actual - rows[i].Benchmark
	}

	return &BenchmarkComparison{
		Industry: benchmark.Industry,
		Rows:     rows,
	}
}

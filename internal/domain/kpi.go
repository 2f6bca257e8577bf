package domain

// KPISet reúne os indicadores derivados de um snapshot financeiro.
// É recalculado a cada chamada e nunca armazenado em cache.
type KPISet struct {
	GrossProfit         float64 `json:"gross_profit"`
	EBITDA              float64 `json:"ebitda"`
	NetIncome           float64 `json:"net_income"`
	NetProfitMargin     float64 `json:"net_profit_margin"`
	CurrentRatio        float64 `json:"current_ratio"`
	QuickRatio          float64 `json:"quick_ratio"`
	DebtToEquity        float64 `json:"debt_to_equity"`
	ROE                 float64 `json:"roe"`
	ROA                 float64 `json:"roa"`
	CashRunway          float64 `json:"cash_runway"`
	CAC                 float64 `json:"cac"`
	MarketingROI        float64 `json:"marketing_roi"`
	InventoryTurnover   float64 `json:"inventory_turnover"`
	ReceivablesTurnover float64 `json:"receivables_turnover"`
}

// safeDiv divide protegendo contra denominador zero.
func safeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// CalculateKPIs calcula os indicadores de um snapshot. Função pura e total:
// divisões por zero resultam em 0 em vez de Inf/NaN.
func CalculateKPIs(snapshot *FinancialSnapshot) *KPISet {
	if snapshot == nil {
		return &KPISet{}
	}

	grossProfit := snapshot.Revenue - snapshot.COGS
	ebitda := grossProfit - snapshot.OperatingExpenses
	netIncome := ebitda - snapshot.InterestExpense - snapshot.TaxExpense

	// Queima de caixa com piso de 1000 para evitar runway explosivo quando
	// a queima mensal é próxima de zero.
	burn := snapshot.CashOutflow - snapshot.CashInflow
	if burn < 1000 {
		burn = 1000
	}

	conversions := snapshot.Conversions
	if conversions < 1 {
		conversions = 1
	}

	inventory := snapshot.Inventory
	if inventory < 1 {
		inventory = 1
	}

	receivables := snapshot.AccountsReceivable
	if receivables < 1 {
		receivables = 1
	}

	creditSales := snapshot.NetCreditSales
	if creditSales == 0 {
		creditSales = snapshot.Revenue
	}

	// Receita estimada pelo funil de conversão. Mantido por paridade com a
	// planilha de origem, ainda que misture estimativa e receita real.
	estimatedRevenue := snapshot.Revenue * safeDiv(snapshot.Conversions, snapshot.LeadsGenerated)
	marketingROI := safeDiv(estimatedRevenue-snapshot.MarketingSpend, snapshot.MarketingSpend) * 100

	return &KPISet{
		GrossProfit:         grossProfit,
		EBITDA:              ebitda,
		NetIncome:           netIncome,
		NetProfitMargin:     safeDiv(netIncome, snapshot.Revenue) * 100,
		CurrentRatio:        safeDiv(snapshot.CurrentAssets, snapshot.CurrentLiabilities),
		QuickRatio:          safeDiv(snapshot.CurrentAssets-snapshot.Inventory, snapshot.CurrentLiabilities),
		DebtToEquity:        safeDiv(snapshot.TotalLiabilities, snapshot.TotalEquity),
		ROE:                 safeDiv(netIncome, snapshot.TotalEquity) * 100,
		ROA:                 safeDiv(netIncome, snapshot.TotalAssets) * 100,
		CashRunway:          snapshot.CurrentAssets / burn,
		CAC:                 snapshot.MarketingSpend / conversions,
		MarketingROI:        marketingROI,
		InventoryTurnover:   snapshot.COGS / inventory,
		ReceivablesTurnover: creditSales / receivables,
	}
}

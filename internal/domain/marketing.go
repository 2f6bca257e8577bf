package domain

import "math"

// ValueMode define como o valor por cliente é calculado: pedido único (AOV)
// ou valor de vida de assinatura (LTV).
type ValueMode string

const (
	ValueModeAOV ValueMode = "aov"
	ValueModeLTV ValueMode = "ltv"
)

// Quando o churn é zero a vida útil da assinatura é limitada a 24 meses.
const maxSubscriptionMonths = 24

// MarketingROIInput reúne as entradas do projetor de ROI de marketing pago.
type MarketingROIInput struct {
	Mode             ValueMode `json:"mode"`
	AdSpend          float64   `json:"ad_spend"`
	OtherCosts       float64   `json:"other_costs"`
	SalesCosts       float64   `json:"sales_costs"`
	CPC              float64   `json:"cpc"`
	VisitorToLeadPct float64   `json:"visitor_to_lead_pct"`
	LeadToCustPct    float64   `json:"lead_to_customer_pct"`
	AOV              float64   `json:"aov"`
	COGSPct          float64   `json:"cogs_pct"`
	ARPA             float64   `json:"arpa"`
	GrossMarginPct   float64   `json:"gross_margin_pct"`
	ChurnRatePct     float64   `json:"churn_rate_pct"`
}

// BreakevenPoint expõe o ponto de equilíbrio com sinalização explícita de
// inalcançabilidade quando a margem unitária é não-positiva.
type BreakevenPoint struct {
	Customers float64 `json:"customers"`
	Revenue   float64 `json:"revenue"`
	Reachable bool    `json:"reachable"`
}

// MarketingROIResult é a saída do projetor de marketing pago.
type MarketingROIResult struct {
	Clicks               float64        `json:"clicks"`
	Leads                float64        `json:"leads"`
	Customers            float64        `json:"customers"`
	Revenue              float64        `json:"revenue"`
	TotalCOGS            float64        `json:"total_cogs"`
	GrossProfit          float64        `json:"gross_profit"`
	NetProfit            float64        `json:"net_profit"`
	ROI                  float64        `json:"roi"`
	ROAS                 float64        `json:"roas"`
	CAC                  float64        `json:"cac"`
	LTV                  float64        `json:"ltv"`
	LTVCACRatio          float64        `json:"ltv_cac_ratio"`
	TotalAcquisitionCost float64        `json:"total_acquisition_cost"`
	ProfitPerCustomer    float64        `json:"profit_per_customer"`
	Breakeven            BreakevenPoint `json:"breakeven"`
}

// SpendCurvePoint é um ponto da curva de ROI por nível de investimento.
type SpendCurvePoint struct {
	Spend float64 `json:"spend"`
	ROI   float64 `json:"roi"`
}

// subscriptionMonths retorna a vida útil esperada do cliente em meses.
func subscriptionMonths(churnRatePct float64) float64 {
	if churnRatePct > 0 {
		return 100 / churnRatePct
	}
	return maxSubscriptionMonths
}

// CalculateMarketingROI projeta funil, valor e ponto de equilíbrio de uma
// campanha de mídia paga. Função pura e total.
func CalculateMarketingROI(in MarketingROIInput) *MarketingROIResult {
	totalMarketing := in.AdSpend + in.OtherCosts
	totalAcquisitionCost := totalMarketing + in.SalesCosts

	clicks := 0.0
	if in.CPC > 0 {
		clicks = in.AdSpend / in.CPC
	}
	leads := clicks * (in.VisitorToLeadPct / 100)
	customers := leads * (in.LeadToCustPct / 100)

	var revenue, totalCOGS, ltv float64

	if in.Mode == ValueModeLTV {
		months := subscriptionMonths(in.ChurnRatePct)
		lifetimeRev := in.ARPA * months
		ltv = lifetimeRev * (in.GrossMarginPct / 100)
		revenue = customers * lifetimeRev
		totalCOGS = revenue * (1 - in.GrossMarginPct/100)
	} else {
		revenue = customers * in.AOV
		totalCOGS = revenue * (in.COGSPct / 100)
	}

	grossProfit := revenue - totalCOGS
	netProfit := grossProfit - totalAcquisitionCost

	roi := 0.0
	if totalAcquisitionCost > 0 {
		roi = netProfit / totalAcquisitionCost * 100
	}

	roas := 0.0
	if in.AdSpend > 0 {
		roas = revenue / in.AdSpend
	}

	cac := 0.0
	if customers > 0 {
		cac = totalAcquisitionCost / customers
	}

	ltvCacRatio := 0.0
	if cac > 0 {
		if in.Mode == ValueModeLTV {
			ltvCacRatio = ltv / cac
		} else {
			ltvCacRatio = in.AOV * (1 - in.COGSPct/100) / cac
		}
	}

	var unitRevenue, unitCOGS float64
	if in.Mode == ValueModeLTV {
		unitRevenue = in.ARPA * subscriptionMonths(in.ChurnRatePct)
		unitCOGS = unitRevenue * (1 - in.GrossMarginPct/100)
	} else {
		unitRevenue = in.AOV
		unitCOGS = in.AOV * (in.COGSPct / 100)
	}
	unitMargin := unitRevenue - unitCOGS

	profitPerCustomer := unitMargin - cac

	breakeven := BreakevenPoint{Reachable: unitMargin > 0}
	if breakeven.Reachable {
		breakeven.Customers = totalAcquisitionCost / unitMargin
		breakeven.Revenue = breakeven.Customers * unitRevenue
	}

	return &MarketingROIResult{
		Clicks:               clicks,
		Leads:                leads,
		Customers:            customers,
		Revenue:              revenue,
		TotalCOGS:            totalCOGS,
		GrossProfit:          grossProfit,
		NetProfit:            netProfit,
		ROI:                  roi,
		ROAS:                 roas,
		CAC:                  cac,
		LTV:                  ltv,
		LTVCACRatio:          ltvCacRatio,
		TotalAcquisitionCost: totalAcquisitionCost,
		ProfitPerCustomer:    profitPerCustomer,
		Breakeven:            breakeven,
	}
}

const (
	spendCurveStep  = 500.0
	spendCurveSteps = 10
)

// ProjectSpendCurve varre níveis de investimento ao redor do gasto atual e
// recalcula o ROI em cada nível, com custos fixos mantidos.
func ProjectSpendCurve(in MarketingROIInput) []SpendCurvePoint {
	start := math.Max(0, in.AdSpend-spendCurveStep*5)

	points := make([]SpendCurvePoint, 0, spendCurveSteps+1)
	for i := 0; i <= spendCurveSteps; i++ {
		spend := start + float64(i)*spendCurveStep

		clicks := 0.0
		if in.CPC > 0 {
			clicks = spend / in.CPC
		}
		customers := clicks * (in.VisitorToLeadPct / 100) * (in.LeadToCustPct / 100)

		var revenue, totalCOGS float64
		if in.Mode == ValueModeLTV {
			lifetimeRev := in.ARPA * subscriptionMonths(in.ChurnRatePct)
			revenue = customers * lifetimeRev
			totalCOGS = revenue * (1 - in.GrossMarginPct/100)
		} else {
			revenue = customers * in.AOV
			totalCOGS = revenue * (in.COGSPct / 100)
		}

		acquisition := spend + in.OtherCosts + in.SalesCosts
		netProfit := revenue - totalCOGS - acquisition

		roi := 0.0
		if acquisition > 0 {
			roi = netProfit / acquisition * 100
		}

		points = append(points, SpendCurvePoint{
			Spend: spend,
			ROI:   math.Round(roi),
		})
	}

	return points
}

// ChannelBenchmark são referências de mercado por canal de aquisição.
type ChannelBenchmark struct {
	Label string  `json:"label"`
	ROAS  float64 `json:"roas"`
	CVR   float64 `json:"cvr"`
	CPC   float64 `json:"cpc"`
}

var channelBenchmarks = map[string]ChannelBenchmark{
	"ecommerce":             {Label: "E-commerce", ROAS: 4, CVR: 2.8, CPC: 1.31},
	"saas":                  {Label: "SaaS (B2B)", ROAS: 3, CVR: 3.5, CPC: 5.45},
	"real_estate":           {Label: "Real Estate", ROAS: 5, CVR: 1.5, CPC: 1.85},
	"professional_services": {Label: "Services", ROAS: 5, CVR: 4.0, CPC: 4.17},
}

// LookupChannelBenchmark retorna o benchmark do canal informado.
func LookupChannelBenchmark(channel string) (ChannelBenchmark, bool) {
	b, ok := channelBenchmarks[channel]
	return b, ok
}

// ChannelBenchmarks retorna a tabela completa de referências por canal.
func ChannelBenchmarks() map[string]ChannelBenchmark {
	table := make(map[string]ChannelBenchmark, len(channelBenchmarks))
	for channel, b := range channelBenchmarks {
		table[channel] = b
	}
	return table
}

package domain

// BusinessModel define como o valor por conversão de e-mail é medido:
// valor médio de pedido (e-commerce) ou valor por lead (geração de leads).
type BusinessModel string

const (
	BusinessModelEcommerce BusinessModel = "ecommerce"
	BusinessModelLeadGen   BusinessModel = "leadgen"
)

// ESPCostType define o modelo de cobrança do provedor de envio: valor fixo
// mensal ou custo por mil e-mails enviados.
type ESPCostType string

const (
	ESPCostFixed ESPCostType = "fixed"
	ESPCostCPM   ESPCostType = "cpm"
)

// EmailROIInput reúne custos, métricas de funil e valores de conversão de um
// programa de e-mail marketing, além dos deltas dos cenários hipotéticos.
type EmailROIInput struct {
	BusinessModel             BusinessModel `json:"business_model"`
	ESPCostType               ESPCostType   `json:"esp_cost_type"`
	ESPCost                   float64       `json:"esp_cost"`
	SoftwareCost              float64       `json:"software_cost"`
	TeamHours                 float64       `json:"team_hours"`
	HourlyRate                float64       `json:"hourly_rate"`
	AgencyFees                float64       `json:"agency_fees"`
	SubscriberAcquisitionCost float64       `json:"subscriber_acquisition_cost"`
	ContentCost               float64       `json:"content_cost"`
	ListCost                  float64       `json:"list_cost"`

	EmailsSent     float64 `json:"emails_sent"`
	OpenRatePct    float64 `json:"open_rate_pct"`
	CTRPct         float64 `json:"ctr_pct"`
	ConversionPct  float64 `json:"conversion_pct"`
	UnsubscribePct float64 `json:"unsubscribe_pct"`

	AOV          float64 `json:"aov"`
	ValuePerLead float64 `json:"value_per_lead"`
	LTV          float64 `json:"ltv"`

	WhatIfOpenRatePct   float64 `json:"what_if_open_rate_pct"`
	WhatIfConversionPct float64 `json:"what_if_conversion_pct"`

	ABConversionAPct float64 `json:"ab_conversion_a_pct"`
	ABConversionBPct float64 `json:"ab_conversion_b_pct"`

	BounceRatePct float64 `json:"bounce_rate_pct"`
}

// EmailROIResult é a saída do projetor de e-mail marketing.
type EmailROIResult struct {
	PlatformCosts   float64 `json:"platform_costs"`
	HRCosts         float64 `json:"hr_costs"`
	OtherCosts      float64 `json:"other_costs"`
	AcquisitionCost float64 `json:"acquisition_cost"`

	EmailsOpened float64 `json:"emails_opened"`
	Clicks       float64 `json:"clicks"`
	Conversions  float64 `json:"conversions"`
	Unsubscribes float64 `json:"unsubscribes"`
	CTOR         float64 `json:"ctor"`

	ImmediateRevenue float64 `json:"immediate_revenue"`
	TotalValueLTV    float64 `json:"total_value_ltv"`

	TotalInvestment float64 `json:"total_investment"`
	NetProfit       float64 `json:"net_profit"`
	OverallROI      float64 `json:"overall_roi"`
	CPA             float64 `json:"cpa"`

	ProfitUplift float64 `json:"profit_uplift"`
	ABUplift     float64 `json:"ab_uplift"`
	LostRevenue  float64 `json:"lost_revenue"`
}

// CalculateEmailROI calcula investimento, valor e cenários de um programa de
// e-mail marketing. Função pura e total.
func CalculateEmailROI(in EmailROIInput) *EmailROIResult {
	espCostTotal := in.ESPCost
	if in.ESPCostType == ESPCostCPM {
		espCostTotal = in.EmailsSent / 1000 * in.ESPCost
	}

	laborCost := in.TeamHours * in.HourlyRate
	platformCosts := espCostTotal + in.SoftwareCost
	hrCosts := laborCost + in.AgencyFees
	otherCosts := in.ContentCost + in.ListCost

	emailsOpened := in.EmailsSent * (in.OpenRatePct / 100)
	clicks := in.EmailsSent * (in.CTRPct / 100)
	conversions := clicks * (in.ConversionPct / 100)
	unsubscribes := in.EmailsSent * (in.UnsubscribePct / 100)

	ctor := 0.0
	if emailsOpened > 0 {
		ctor = clicks / emailsOpened * 100
	}

	valuePerConversion := in.ValuePerLead
	if in.BusinessModel == BusinessModelEcommerce {
		valuePerConversion = in.AOV
	}

	immediateRevenue := conversions * valuePerConversion
	totalValueLTV := conversions * in.LTV
	acquisitionCost := conversions * in.SubscriberAcquisitionCost

	totalInvestment := platformCosts + hrCosts + otherCosts + acquisitionCost
	netProfit := totalValueLTV - totalInvestment

	overallROI := 0.0
	if totalInvestment > 0 {
		overallROI = netProfit / totalInvestment * 100
	}

	cpa := 0.0
	if conversions > 0 {
		cpa = totalInvestment / conversions
	}

	// Cenário hipotético: abertura melhorada propaga cliques pelo CTOR
	// original, com custos mantidos fixos.
	improvedOpened := in.EmailsSent * ((in.OpenRatePct + in.WhatIfOpenRatePct) / 100)
	originalCTOR := 0.0
	if emailsOpened > 0 {
		originalCTOR = clicks / emailsOpened
	}
	scenarioClicks := improvedOpened * originalCTOR
	scenarioConversions := scenarioClicks * ((in.ConversionPct + in.WhatIfConversionPct) / 100)
	scenarioRevenue := scenarioConversions * in.LTV
	scenarioProfit := scenarioRevenue - totalInvestment
	profitUplift := scenarioProfit - netProfit

	// Teste A/B: duas taxas de conversão sobre os mesmos cliques e valor.
	revenueA := clicks * (in.ABConversionAPct / 100) * valuePerConversion
	revenueB := clicks * (in.ABConversionBPct / 100) * valuePerConversion
	abUplift := revenueB - revenueA

	// Custo de entregabilidade: valor perdido nos e-mails devolvidos.
	deliveredEmails := in.EmailsSent * (1 - in.BounceRatePct/100)
	valuePerDelivered := 0.0
	if deliveredEmails > 0 {
		valuePerDelivered = totalValueLTV / deliveredEmails
	}
	bouncedEmails := in.EmailsSent * (in.BounceRatePct / 100)
	lostRevenue := bouncedEmails * valuePerDelivered

	return &EmailROIResult{
		PlatformCosts:    platformCosts,
		HRCosts:          hrCosts,
		OtherCosts:       otherCosts,
		AcquisitionCost:  acquisitionCost,
		EmailsOpened:     emailsOpened,
		Clicks:           clicks,
		Conversions:      conversions,
		Unsubscribes:     unsubscribes,
		CTOR:             ctor,
		ImmediateRevenue: immediateRevenue,
		TotalValueLTV:    totalValueLTV,
		TotalInvestment:  totalInvestment,
		NetProfit:        netProfit,
		OverallROI:       overallROI,
		CPA:              cpa,
		ProfitUplift:     profitUplift,
		ABUplift:         abUplift,
		LostRevenue:      lostRevenue,
	}
}

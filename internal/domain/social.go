package domain

// SocialPlatformInput são os custos e métricas de aquisição de um canal
// social individual.
type SocialPlatformInput struct {
	Name              string  `json:"name"`
	AdSpend           float64 `json:"ad_spend"`
	ContentCost       float64 `json:"content_cost"`
	InfluencerCost    float64 `json:"influencer_cost"`
	WebsiteClicks     float64 `json:"website_clicks"`
	WebsiteConvPct    float64 `json:"website_conversion_pct"`
	AOV               float64 `json:"aov"`
	LeadsGenerated    float64 `json:"leads_generated"`
	LeadToCustomerPct float64 `json:"lead_to_customer_pct"`
	LTV               float64 `json:"ltv"`
}

// SocialOverheads são os custos gerais da operação social, independentes de
// canal.
type SocialOverheads struct {
	TeamHours  float64 `json:"team_hours"`
	HourlyRate float64 `json:"hourly_rate"`
	ToolCosts  float64 `json:"tool_costs"`
}

// BrandEquityInput atribui valor monetário a seguidores e engajamentos.
type BrandEquityInput struct {
	NewFollowers       float64 `json:"new_followers"`
	ValuePerFollower   float64 `json:"value_per_follower"`
	TotalEngagements   float64 `json:"total_engagements"`
	ValuePerEngagement float64 `json:"value_per_engagement"`
}

// SocialROIInput reúne as entradas do projetor de redes sociais.
type SocialROIInput struct {
	Overheads   SocialOverheads       `json:"overheads"`
	BrandEquity BrandEquityInput      `json:"brand_equity"`
	Platforms   []SocialPlatformInput `json:"platforms"`
}

// SocialPlatformResult é o resultado por canal.
type SocialPlatformResult struct {
	Name       string  `json:"name"`
	TotalCost  float64 `json:"total_cost"`
	TotalValue float64 `json:"total_value"`
	NetProfit  float64 `json:"net_profit"`
	ROI        float64 `json:"roi"`
}

// SocialROIResult é a saída consolidada do projetor de redes sociais.
type SocialROIResult struct {
	TimeCost            float64                `json:"time_cost"`
	ToolCost            float64                `json:"tool_cost"`
	OverheadTotal       float64                `json:"overhead_total"`
	TotalPlatformSpend  float64                `json:"total_platform_spend"`
	BrandEquityValue    float64                `json:"brand_equity_value"`
	TotalDirectValue    float64                `json:"total_direct_value"`
	TotalInvestment     float64                `json:"total_investment"`
	TotalValueGenerated float64                `json:"total_value_generated"`
	NetProfit           float64                `json:"net_profit"`
	SocialROI           float64                `json:"social_roi"`
	Platforms           []SocialPlatformResult `json:"platforms"`
}

// CalculateSocialROI consolida custos, valor direto e valor de marca de uma
// operação multicanal de redes sociais. Função pura e total.
func CalculateSocialROI(in SocialROIInput) *SocialROIResult {
	timeCost := in.Overheads.TeamHours * in.Overheads.HourlyRate
	toolCost := in.Overheads.ToolCosts
	overheadTotal := timeCost + toolCost

	brandEquityValue := in.BrandEquity.NewFollowers*in.BrandEquity.ValuePerFollower +
		in.BrandEquity.TotalEngagements*in.BrandEquity.ValuePerEngagement

	totalPlatformSpend := 0.0
	totalDirectValue := 0.0

	platforms := make([]SocialPlatformResult, 0, len(in.Platforms))
	for _, p := range in.Platforms {
		totalCost := p.AdSpend + p.ContentCost + p.InfluencerCost
		valueFromWebsite := p.WebsiteClicks * (p.WebsiteConvPct / 100) * p.AOV
		valueFromLeads := p.LeadsGenerated * (p.LeadToCustomerPct / 100) * p.LTV
		totalValue := valueFromWebsite + valueFromLeads

		totalPlatformSpend += totalCost
		totalDirectValue += totalValue

		netProfit := totalValue - totalCost
		roi := 0.0
		if totalCost > 0 {
			roi = netProfit / totalCost * 100
		}

		platforms = append(platforms, SocialPlatformResult{
			Name:       p.Name,
			TotalCost:  totalCost,
			TotalValue: totalValue,
			NetProfit:  netProfit,
			ROI:        roi,
		})
	}

	totalInvestment := overheadTotal + totalPlatformSpend
	totalValueGenerated := totalDirectValue + brandEquityValue
	netProfit := totalValueGenerated - totalInvestment

	socialROI := 0.0
	if totalInvestment > 0 {
		socialROI = netProfit / totalInvestment * 100
	}

	return &SocialROIResult{
		TimeCost:            timeCost,
		ToolCost:            toolCost,
		OverheadTotal:       overheadTotal,
		TotalPlatformSpend:  totalPlatformSpend,
		BrandEquityValue:    brandEquityValue,
		TotalDirectValue:    totalDirectValue,
		TotalInvestment:     totalInvestment,
		TotalValueGenerated: totalValueGenerated,
		NetProfit:           netProfit,
		SocialROI:           socialROI,
		Platforms:           platforms,
	}
}

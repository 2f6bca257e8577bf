package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSocialInput() SocialROIInput {
	return SocialROIInput{
		Overheads: SocialOverheads{
			TeamHours:  80,
			HourlyRate: 25,
			ToolCosts:  150,
		},
		BrandEquity: BrandEquityInput{
			NewFollowers:       1200,
			ValuePerFollower:   0.25,
			TotalEngagements:   5000,
			ValuePerEngagement: 0.10,
		},
		Platforms: []SocialPlatformInput{
			{
				Name:              "Facebook",
				AdSpend:           500,
				ContentCost:       200,
				InfluencerCost:    0,
				WebsiteClicks:     1000,
				WebsiteConvPct:    2.5,
				AOV:               50,
				LeadsGenerated:    50,
				LeadToCustomerPct: 10,
				LTV:               300,
			},
		},
	}
}

func TestCalculateSocialROI(t *testing.T) {
	t.Run("Deve consolidar custos gerais e valor de marca", func(t *testing.T) {
		result := CalculateSocialROI(defaultSocialInput())

		assert.InDelta(t, 2000.0, result.TimeCost, 0.0001)
		assert.InDelta(t, 150.0, result.ToolCost, 0.0001)
		assert.InDelta(t, 2150.0, result.OverheadTotal, 0.0001)
		assert.InDelta(t, 800.0, result.BrandEquityValue, 0.0001)
	})

	t.Run("Deve calcular o resultado por canal", func(t *testing.T) {
		result := CalculateSocialROI(defaultSocialInput())

		require.Len(t, result.Platforms, 1)
		facebook := result.Platforms[0]

		assert.Equal(t, "Facebook", facebook.Name)
		assert.InDelta(t, 700.0, facebook.TotalCost, 0.0001)
		// 1250 de vendas do site mais 1500 de leads convertidos
		assert.InDelta(t, 2750.0, facebook.TotalValue, 0.0001)
		assert.InDelta(t, 2050.0, facebook.NetProfit, 0.0001)
		assert.InDelta(t, 2050.0/700.0*100.0, facebook.ROI, 0.0001)
	})

	t.Run("Deve consolidar os totais da operação", func(t *testing.T) {
		result := CalculateSocialROI(defaultSocialInput())

		assert.InDelta(t, 2850.0, result.TotalInvestment, 0.0001)
		assert.InDelta(t, 3550.0, result.TotalValueGenerated, 0.0001)
		assert.InDelta(t, 700.0, result.NetProfit, 0.0001)
		assert.InDelta(t, 700.0/2850.0*100.0, result.SocialROI, 0.0001)
	})

	t.Run("Deve zerar o ROI de canal sem custo", func(t *testing.T) {
		in := defaultSocialInput()
		in.Platforms = append(in.Platforms, SocialPlatformInput{Name: "Instagram"})

		result := CalculateSocialROI(in)

		require.Len(t, result.Platforms, 2)
		assert.Equal(t, 0.0, result.Platforms[1].ROI)
	})

	t.Run("Deve aceitar operação sem canais", func(t *testing.T) {
		in := defaultSocialInput()
		in.Platforms = nil

		result := CalculateSocialROI(in)

		assert.Empty(t, result.Platforms)
		assert.InDelta(t, 2150.0, result.TotalInvestment, 0.0001)
		assert.InDelta(t, 800.0, result.TotalValueGenerated, 0.0001)
	})
}

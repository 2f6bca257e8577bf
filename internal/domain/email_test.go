package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func defaultEmailInput() EmailROIInput {
	return EmailROIInput{
		BusinessModel:             BusinessModelEcommerce,
		ESPCostType:               ESPCostFixed,
		ESPCost:                   200,
		SoftwareCost:              150,
		TeamHours:                 40,
		HourlyRate:                30,
		AgencyFees:                500,
		SubscriberAcquisitionCost: 2,
		ContentCost:               250,
		ListCost:                  100,
		EmailsSent:                50000,
		OpenRatePct:               25,
		CTRPct:                    4,
		ConversionPct:             5,
		UnsubscribePct:            0.5,
		AOV:                       75,
		ValuePerLead:              50,
		LTV:                       500,
		ABConversionAPct:          2.0,
		ABConversionBPct:          2.5,
		BounceRatePct:             2.0,
	}
}

func TestCalculateEmailROI(t *testing.T) {
	t.Run("Deve calcular o funil de referência", func(t *testing.T) {
		result := CalculateEmailROI(defaultEmailInput())

		assert.InDelta(t, 12500.0, result.EmailsOpened, 0.0001)
		assert.InDelta(t, 2000.0, result.Clicks, 0.0001)
		assert.InDelta(t, 100.0, result.Conversions, 0.0001)
		assert.InDelta(t, 250.0, result.Unsubscribes, 0.0001)
		assert.InDelta(t, 16.0, result.CTOR, 0.0001)
		assert.InDelta(t, 50000.0, result.TotalValueLTV, 0.0001)
	})

	t.Run("Deve consolidar o investimento total", func(t *testing.T) {
		result := CalculateEmailROI(defaultEmailInput())

		assert.InDelta(t, 350.0, result.PlatformCosts, 0.0001)
		assert.InDelta(t, 1700.0, result.HRCosts, 0.0001)
		assert.InDelta(t, 350.0, result.OtherCosts, 0.0001)
		assert.InDelta(t, 200.0, result.AcquisitionCost, 0.0001)
		assert.InDelta(t, 2600.0, result.TotalInvestment, 0.0001)
		assert.InDelta(t, 47400.0, result.NetProfit, 0.0001)
		assert.InDelta(t, 47400.0/2600.0*100.0, result.OverallROI, 0.0001)
		assert.InDelta(t, 26.0, result.CPA, 0.0001)
	})

	t.Run("Deve cobrar o provedor por mil envios no modo CPM", func(t *testing.T) {
		in := defaultEmailInput()
		in.ESPCostType = ESPCostCPM
		in.ESPCost = 5

		result := CalculateEmailROI(in)

		// 50 milheiros a 5 por milheiro mais software de 150
		assert.InDelta(t, 400.0, result.PlatformCosts, 0.0001)
	})

	t.Run("Deve usar valor por lead no modelo de geração de leads", func(t *testing.T) {
		in := defaultEmailInput()
		in.BusinessModel = BusinessModelLeadGen

		result := CalculateEmailROI(in)

		assert.InDelta(t, 100.0*50.0, result.ImmediateRevenue, 0.0001)
	})

	t.Run("Deve calcular o ganho do cenário hipotético com custos fixos", func(t *testing.T) {
		in := defaultEmailInput()
		in.WhatIfOpenRatePct = 5
		in.WhatIfConversionPct = 1

		result := CalculateEmailROI(in)

		// abertura 30% com CTOR original de 0.16 dá 2400 cliques;
		// conversão de 6% dá 144 conversões a 500 de LTV.
		expectedScenarioProfit := 144.0*500.0 - 2600.0
		assert.InDelta(t, expectedScenarioProfit-result.NetProfit, result.ProfitUplift, 0.0001)
	})

	t.Run("Deve calcular o ganho do teste A/B", func(t *testing.T) {
		result := CalculateEmailROI(defaultEmailInput())

		// 2000 cliques: variante A converte 40 e B converte 50, a 75 por pedido
		assert.InDelta(t, (50.0-40.0)*75.0, result.ABUplift, 0.0001)
	})

	t.Run("Deve estimar a receita perdida com devoluções", func(t *testing.T) {
		result := CalculateEmailROI(defaultEmailInput())

		valuePerDelivered := 50000.0 / 49000.0
		assert.InDelta(t, 1000.0*valuePerDelivered, result.LostRevenue, 0.0001)
	})

	t.Run("Não deve produzir NaN com entradas zeradas", func(t *testing.T) {
		result := CalculateEmailROI(EmailROIInput{})

		assert.Equal(t, 0.0, result.OverallROI)
		assert.Equal(t, 0.0, result.CTOR)
		assert.Equal(t, 0.0, result.CPA)
		assert.Equal(t, 0.0, result.LostRevenue)
	})
}

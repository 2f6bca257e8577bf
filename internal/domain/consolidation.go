package domain

import (
	"sort"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/utils"
)

// Taxas de câmbio estáticas para USD usadas na consolidação multi-entidade.
// Valores de referência, não cotações de mercado.
var exchangeRates = map[string]float64{
	"USD": 1.0,
	"EUR": 1.08,
	"GBP": 1.25,
	"JPY": 0.0067,
	"CAD": 0.74,
	"AUD": 0.66,
	"NGN": 0.00065,
}

// CurrencySymbols mapeia códigos de moeda para símbolos de exibição.
var CurrencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CNY": "¥",
	"INR": "₹",
	"NGN": "₦",
}

// ConvertCurrency converte um valor entre moedas pelas taxas estáticas.
// Moeda desconhecida é tratada como paridade.
func ConvertCurrency(amount float64, from, to string) float64 {
	fromRate, ok := exchangeRates[from]
	if !ok {
		fromRate = 1.0
	}
	toRate, ok := exchangeRates[to]
	if !ok {
		toRate = 1.0
	}
	return utils.RoundWithTwoDecimalPlace(amount * fromRate / toRate)
}

// ConsolidationEntity é um negócio com seu snapshot mais recente para
// consolidação.
type ConsolidationEntity struct {
	BusinessID string
	Name       string
	Currency   string
	Snapshot   *FinancialSnapshot
}

// EntityPerformance é o desempenho de uma entidade convertido para a moeda
// base.
type EntityPerformance struct {
	BusinessID string  `json:"business_id"`
	Name       string  `json:"name"`
	Currency   string  `json:"currency"`
	Revenue    float64 `json:"revenue"`
	Profit     float64 `json:"profit"`
	Margin     float64 `json:"margin"`
	Cash       float64 `json:"cash"`
}

// ConsolidatedReport agrega os totais de todas as entidades na moeda base.
type ConsolidatedReport struct {
	BaseCurrency       string              `json:"base_currency"`
	TotalRevenue       float64             `json:"total_revenue"`
	TotalNetIncome     float64             `json:"total_net_income"`
	TotalCash          float64             `json:"total_cash"`
	TotalLiabilities   float64             `json:"total_liabilities"`
	HasMixedCurrencies bool                `json:"has_mixed_currencies"`
	Entities           []EntityPerformance `json:"entities"`
}

// Consolidate agrega as entidades na moeda base, ordenando o desempenho por
// receita convertida em ordem decrescente.
func Consolidate(entities []ConsolidationEntity, baseCurrency string) *ConsolidatedReport {
	report := &ConsolidatedReport{
		BaseCurrency: baseCurrency,
		Entities:     []EntityPerformance{},
	}

	for _, entity := range entities {
		currency := entity.Currency
		if currency == "" {
			currency = "USD"
		}

		if currency != baseCurrency {
			report.HasMixedCurrencies = true
		}

		if entity.Snapshot == nil {
			continue
		}

		kpis := CalculateKPIs(entity.Snapshot)

		report.TotalRevenue += ConvertCurrency(entity.Snapshot.Revenue, currency, baseCurrency)
		report.TotalNetIncome += ConvertCurrency(kpis.NetIncome, currency, baseCurrency)
		report.TotalCash += ConvertCurrency(entity.Snapshot.CurrentAssets, currency, baseCurrency)
		report.TotalLiabilities += ConvertCurrency(entity.Snapshot.TotalLiabilities, currency, baseCurrency)

		report.Entities = append(report.Entities, EntityPerformance{
			BusinessID: entity.BusinessID,
			Name:       entity.Name,
			Currency:   currency,
			Revenue:    ConvertCurrency(entity.Snapshot.Revenue, currency, baseCurrency),
			Profit:     ConvertCurrency(kpis.NetIncome, currency, baseCurrency),
			Margin:     kpis.NetProfitMargin,
			Cash:       ConvertCurrency(entity.Snapshot.CurrentAssets, currency, baseCurrency),
		})
	}

	sort.Slice(report.Entities, func(i, j int) bool {
		return report.Entities[i].Revenue > report.Entities[j].Revenue
	})

	return report
}

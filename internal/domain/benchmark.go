package domain

import "sort"

// IndustryBenchmark reúne os valores de referência de um setor usados na
// comparação e no cálculo do score de saúde financeira.
type IndustryBenchmark struct {
	Industry     string  `json:"industry"`
	NetMargin    float64 `json:"net_margin"`
	CurrentRatio float64 `json:"current_ratio"`
	QuickRatio   float64 `json:"quick_ratio"`
	DebtToEquity float64 `json:"debt_to_equity"`
	ROE          float64 `json:"roe"`
}

// DefaultIndustry é o setor usado quando o setor informado não está na tabela.
const DefaultIndustry = "Technology"

var industryBenchmarks = map[string]IndustryBenchmark{
	"Technology":               {Industry: "Technology", NetMargin: 15, CurrentRatio: 1.8, QuickRatio: 1.4, DebtToEquity: 0.6, ROE: 18},
	"SaaS (Software)":          {Industry: "SaaS (Software)", NetMargin: 22, CurrentRatio: 2.1, QuickRatio: 1.8, DebtToEquity: 0.4, ROE: 25},
	"Fintech":                  {Industry: "Fintech", NetMargin: 20, CurrentRatio: 1.5, QuickRatio: 1.2, DebtToEquity: 0.8, ROE: 20},
	"E-commerce":               {Industry: "E-commerce", NetMargin: 7, CurrentRatio: 1.4, QuickRatio: 0.9, DebtToEquity: 0.9, ROE: 16},
	"Retail":                   {Industry: "Retail", NetMargin: 5, CurrentRatio: 1.2, QuickRatio: 0.7, DebtToEquity: 1.2, ROE: 12},
	"Manufacturing":            {Industry: "Manufacturing", NetMargin: 9, CurrentRatio: 1.5, QuickRatio: 1.1, DebtToEquity: 0.9, ROE: 11},
	"Services (Consulting)":    {Industry: "Services (Consulting)", NetMargin: 14, CurrentRatio: 1.6, QuickRatio: 1.4, DebtToEquity: 0.5, ROE: 20},
	"Healthcare":               {Industry: "Healthcare", NetMargin: 12, CurrentRatio: 1.3, QuickRatio: 1.0, DebtToEquity: 1.0, ROE: 14},
	"Pharmaceuticals":          {Industry: "Pharmaceuticals", NetMargin: 18, CurrentRatio: 1.9, QuickRatio: 1.6, DebtToEquity: 0.7, ROE: 22},
	"Construction":             {Industry: "Construction", NetMargin: 5, CurrentRatio: 1.3, QuickRatio: 0.9, DebtToEquity: 1.5, ROE: 13},
	"Real Estate":              {Industry: "Real Estate", NetMargin: 35, CurrentRatio: 1.0, QuickRatio: 0.8, DebtToEquity: 2.5, ROE: 10},
	"Transportation/Logistics": {Industry: "Transportation/Logistics", NetMargin: 6, CurrentRatio: 1.2, QuickRatio: 0.8, DebtToEquity: 1.1, ROE: 15},
	"Hospitality/Restaurants":  {Industry: "Hospitality/Restaurants", NetMargin: 4, CurrentRatio: 0.9, QuickRatio: 0.5, DebtToEquity: 1.8, ROE: 18},
	"Energy":                   {Industry: "Energy", NetMargin: 10, CurrentRatio: 1.1, QuickRatio: 0.7, DebtToEquity: 1.3, ROE: 12},
	"Media & Entertainment":    {Industry: "Media & Entertainment", NetMargin: 13, CurrentRatio: 1.4, QuickRatio: 1.1, DebtToEquity: 0.8, ROE: 17},
	"Education":                {Industry: "Education", NetMargin: 8, CurrentRatio: 1.7, QuickRatio: 1.3, DebtToEquity: 0.6, ROE: 9},
	"Agriculture":              {Industry: "Agriculture", NetMargin: 4, CurrentRatio: 1.5, QuickRatio: 1.0, DebtToEquity: 0.5, ROE: 8},
}

// LookupBenchmark retorna o benchmark do setor informado, caindo no setor
// padrão quando desconhecido.
func LookupBenchmark(industry string) IndustryBenchmark {
	if b, ok := industryBenchmarks[industry]; ok {
		return b
	}
	return industryBenchmarks[DefaultIndustry]
}

// ListIndustries retorna os setores conhecidos em ordem alfabética.
func ListIndustries() []string {
	names := make([]string, 0, len(industryBenchmarks))
	for name := range industryBenchmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

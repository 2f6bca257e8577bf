package domain

import (
	"fmt"
	"time"
)

// FinancialSnapshot representa a demonstração financeira de um período de um negócio.
// Todos os valores monetários são não-negativos e em uma única moeda; o núcleo de
// cálculo nunca modifica um snapshot.
type FinancialSnapshot struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Period     string `json:"period"`
	Industry   string `json:"industry"`

	Revenue            float64 `json:"revenue"`
	NetCreditSales     float64 `json:"net_credit_sales"`
	COGS               float64 `json:"cogs"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	InterestExpense    float64 `json:"interest_expense"`
	TaxExpense         float64 `json:"tax_expense"`
	CurrentAssets      float64 `json:"current_assets"`
	Inventory          float64 `json:"inventory"`
	AccountsReceivable float64 `json:"accounts_receivable"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	TotalEquity        float64 `json:"total_equity"`
	CashInflow         float64 `json:"cash_inflow"`
	CashOutflow        float64 `json:"cash_outflow"`
	MarketingSpend     float64 `json:"marketing_spend"`
	LeadsGenerated     float64 `json:"leads_generated"`
	Conversions        float64 `json:"conversions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EBT retorna o lucro antes dos impostos do período.
func (s *FinancialSnapshot) EBT() float64 {
	return s.Revenue - s.COGS - s.OperatingExpenses - s.InterestExpense
}

// Validate verifica os invariantes do snapshot: campos monetários não-negativos
// e período informado.
func (s *FinancialSnapshot) Validate() error {
	if s.Period == "" {
		return fmt.Errorf("período é obrigatório")
	}

	fields := map[string]float64{
		"revenue":             s.Revenue,
		"net_credit_sales":    s.NetCreditSales,
		"cogs":                s.COGS,
		"operating_expenses":  s.OperatingExpenses,
		"interest_expense":    s.InterestExpense,
		"tax_expense":         s.TaxExpense,
		"current_assets":      s.CurrentAssets,
		"inventory":           s.Inventory,
		"accounts_receivable": s.AccountsReceivable,
		"current_liabilities": s.CurrentLiabilities,
		"total_assets":        s.TotalAssets,
		"total_liabilities":   s.TotalLiabilities,
		"total_equity":        s.TotalEquity,
		"cash_inflow":         s.CashInflow,
		"cash_outflow":        s.CashOutflow,
		"marketing_spend":     s.MarketingSpend,
		"leads_generated":     s.LeadsGenerated,
		"conversions":         s.Conversions,
	}

	for name, value := range fields {
		if value < 0 {
			return fmt.Errorf("campo %s não pode ser negativo: %.2f", name, value)
		}
	}

	return nil
}

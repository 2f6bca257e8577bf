package domain

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Aliases de cabeçalho comuns em exportações contábeis (QuickBooks, Xero)
// mapeados para os campos do snapshot.
var csvFieldAliases = map[string][]string{
	"revenue":             {"Total Revenue", "Gross Sales", "Sales", "Total Income", "Net Sales"},
	"net_credit_sales":    {"Credit Sales", "Net Credit Sales"},
	"cogs":                {"Cost of Goods Sold", "COGS", "Total COGS", "Direct Costs"},
	"operating_expenses":  {"Total Operating Expenses", "OpEx", "Total Expenses", "Operating Costs"},
	"interest_expense":    {"Interest Expense", "Total Interest"},
	"tax_expense":         {"Tax Expense", "Income Tax Expense", "Taxes"},
	"current_assets":      {"Total Current Assets", "Current Assets"},
	"current_liabilities": {"Total Current Liabilities", "Current Liabilities"},
	"total_assets":        {"Total Assets"},
	"total_liabilities":   {"Total Liabilities"},
	"inventory":           {"Inventory", "Total Inventory", "Stock"},
	"accounts_receivable": {"Accounts Receivable", "A/R", "Debtors"},
	"cash_inflow":         {"Total Inflow", "Cash Inflow", "Receipts"},
	"cash_outflow":        {"Total Outflow", "Cash Outflow", "Payments"},
	"marketing_spend":     {"Marketing", "Ads", "Advertising"},
	"leads_generated":     {"Leads", "Total Leads"},
	"conversions":         {"Conversions", "Sales count", "New Customers"},
}

var csvPeriodAliases = []string{"Period", "Date", "Month", "Reporting Period"}

// parseMoney converte um valor monetário textual removendo símbolo, separador
// de milhar e espaços.
func parseMoney(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "", "\t", "").Replace(raw)
	if cleaned == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// ParseSnapshotCSV interpreta a primeira linha de dados de uma exportação
// contábil em CSV e preenche os campos reconhecidos do snapshot. Cabeçalhos
// são casados por alias, ignorando caixa e espaços nas bordas.
func ParseSnapshotCSV(r io.Reader) (*FinancialSnapshot, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler cabeçalho do CSV")
	}

	record, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("CSV sem linhas de dados")
	}
	if err != nil {
		return nil, errors.Wrap(err, "falha ao ler linha de dados do CSV")
	}

	row := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(record) {
			row[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(record[i])
		}
	}

	lookup := func(aliases []string) (string, bool) {
		for _, alias := range aliases {
			if value, ok := row[strings.ToLower(alias)]; ok && value != "" {
				return value, true
			}
		}
		return "", false
	}

	snapshot := &FinancialSnapshot{}

	fields := map[string]*float64{
		"revenue":             &snapshot.Revenue,
		"net_credit_sales":    &snapshot.NetCreditSales,
		"cogs":                &snapshot.COGS,
		"operating_expenses":  &snapshot.OperatingExpenses,
		"interest_expense":    &snapshot.InterestExpense,
		"tax_expense":         &snapshot.TaxExpense,
		"current_assets":      &snapshot.CurrentAssets,
		"current_liabilities": &snapshot.CurrentLiabilities,
		"total_assets":        &snapshot.TotalAssets,
		"total_liabilities":   &snapshot.TotalLiabilities,
		"inventory":           &snapshot.Inventory,
		"accounts_receivable": &snapshot.AccountsReceivable,
		"cash_inflow":         &snapshot.CashInflow,
		"cash_outflow":        &snapshot.CashOutflow,
		"marketing_spend":     &snapshot.MarketingSpend,
		"leads_generated":     &snapshot.LeadsGenerated,
		"conversions":         &snapshot.Conversions,
	}

	for field, target := range fields {
		raw, ok := lookup(csvFieldAliases[field])
		if !ok {
			continue
		}
		if value, ok := parseMoney(raw); ok {
			*target = value
		}
	}

	if period, ok := lookup(csvPeriodAliases); ok {
		snapshot.Period = period
	}

	return snapshot, nil
}

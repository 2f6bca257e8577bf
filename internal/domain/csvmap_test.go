package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshotCSV(t *testing.T) {
	t.Run("Deve mapear cabeçalhos de exportação contábil", func(t *testing.T) {
		csvData := "Period,Total Revenue,COGS,Total Operating Expenses,Interest Expense,Taxes\n" +
			"Q1 2025,\"$500,000\",\"$200,000\",\"$150,000\",\"$5,000\",\"$25,000\"\n"

		snapshot, err := ParseSnapshotCSV(strings.NewReader(csvData))

		require.NoError(t, err)
		assert.Equal(t, "Q1 2025", snapshot.Period)
		assert.Equal(t, 500000.0, snapshot.Revenue)
		assert.Equal(t, 200000.0, snapshot.COGS)
		assert.Equal(t, 150000.0, snapshot.OperatingExpenses)
		assert.Equal(t, 5000.0, snapshot.InterestExpense)
		assert.Equal(t, 25000.0, snapshot.TaxExpense)
	})

	t.Run("Deve casar aliases ignorando caixa", func(t *testing.T) {
		csvData := "date,gross sales,a/r,stock\n2025-01,1000,200,50\n"

		snapshot, err := ParseSnapshotCSV(strings.NewReader(csvData))

		require.NoError(t, err)
		assert.Equal(t, "2025-01", snapshot.Period)
		assert.Equal(t, 1000.0, snapshot.Revenue)
		assert.Equal(t, 200.0, snapshot.AccountsReceivable)
		assert.Equal(t, 50.0, snapshot.Inventory)
	})

	t.Run("Deve ignorar colunas desconhecidas e valores não numéricos", func(t *testing.T) {
		csvData := "Total Revenue,Notes,Leads\nabc,hello,1200\n"

		snapshot, err := ParseSnapshotCSV(strings.NewReader(csvData))

		require.NoError(t, err)
		assert.Equal(t, 0.0, snapshot.Revenue)
		assert.Equal(t, 1200.0, snapshot.LeadsGenerated)
	})

	t.Run("Deve falhar com CSV sem linhas de dados", func(t *testing.T) {
		_, err := ParseSnapshotCSV(strings.NewReader("Total Revenue,COGS\n"))

		assert.Error(t, err)
	})

	t.Run("Deve falhar com entrada vazia", func(t *testing.T) {
		_, err := ParseSnapshotCSV(strings.NewReader(""))

		assert.Error(t, err)
	})
}

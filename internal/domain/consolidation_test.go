package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCurrency(t *testing.T) {
	t.Run("Deve converter entre moedas conhecidas", func(t *testing.T) {
		assert.InDelta(t, 108.0, ConvertCurrency(100, "EUR", "USD"), 0.0001)
		assert.InDelta(t, 100.0, ConvertCurrency(125, "USD", "GBP"), 0.0001)
	})

	t.Run("Deve tratar moeda desconhecida como paridade", func(t *testing.T) {
		assert.InDelta(t, 100.0, ConvertCurrency(100, "XYZ", "USD"), 0.0001)
	})
}

func TestConsolidate(t *testing.T) {
	t.Run("Deve agregar entidades em moedas mistas", func(t *testing.T) {
		usEntity := ConsolidationEntity{
			BusinessID: "BIZ001",
			Name:       "US Holdings",
			Currency:   "USD",
			Snapshot:   baseSnapshot(),
		}

		euSnapshot := baseSnapshot()
		euSnapshot.Revenue = 100000
		euEntity := ConsolidationEntity{
			BusinessID: "BIZ002",
			Name:       "EU Branch",
			Currency:   "EUR",
			Snapshot:   euSnapshot,
		}

		report := Consolidate([]ConsolidationEntity{euEntity, usEntity}, "USD")

		require.Len(t, report.Entities, 2)
		assert.True(t, report.HasMixedCurrencies)
		assert.InDelta(t, 500000.0+108000.0, report.TotalRevenue, 0.0001)

		// ordenado por receita convertida decrescente
		assert.Equal(t, "US Holdings", report.Entities[0].Name)
		assert.Equal(t, "EU Branch", report.Entities[1].Name)
	})

	t.Run("Deve ignorar entidade sem snapshot mas sinalizar moeda mista", func(t *testing.T) {
		entities := []ConsolidationEntity{
			{BusinessID: "BIZ001", Name: "Empty", Currency: "NGN"},
		}

		report := Consolidate(entities, "USD")

		assert.Empty(t, report.Entities)
		assert.True(t, report.HasMixedCurrencies)
		assert.Equal(t, 0.0, report.TotalRevenue)
	})

	t.Run("Deve assumir dólar quando a moeda da entidade está vazia", func(t *testing.T) {
		entities := []ConsolidationEntity{
			{BusinessID: "BIZ001", Name: "Default", Snapshot: baseSnapshot()},
		}

		report := Consolidate(entities, "USD")

		require.Len(t, report.Entities, 1)
		assert.False(t, report.HasMixedCurrencies)
		assert.Equal(t, "USD", report.Entities[0].Currency)
	})
}

package projecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository/mocks"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

func testSnapshot() *domain.FinancialSnapshot {
	return &domain.FinancialSnapshot{
		ID:                "snap01",
		BusinessID:        "biz01",
		Period:            "2026-07",
		Revenue:           500000,
		COGS:              200000,
		OperatingExpenses: 150000,
		InterestExpense:   5000,
		TaxExpense:        25000,
	}
}

func TestProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(mockSnapshotRepo)

	t.Run("Deve projetar 13 pontos a partir do snapshot mais recente", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().GetLatestByBusiness("biz01").Return(testSnapshot(), nil)

		series, err := service.Project("biz01", domain.ScenarioParameters{RevenueGrowthPct: 10})

		require.NoError(t, err)
		require.Len(t, series.Points, 13)
		assert.Equal(t, "Now", series.Points[0].Month)
	})

	t.Run("Deve falhar quando não há snapshot", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().GetLatestByBusiness("biz01").Return(nil, nil)

		series, err := service.Project("biz01", domain.ScenarioParameters{})

		assert.Nil(t, series)
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})
}

func TestProjectWithPreset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)
	service := NewService(mockSnapshotRepo)

	t.Run("Deve projetar usando os parâmetros do cenário de recessão", func(t *testing.T) {
		mockSnapshotRepo.EXPECT().GetLatestByBusiness("biz01").Return(testSnapshot(), nil)

		series, err := service.ProjectWithPreset("biz01", "recession")

		require.NoError(t, err)
		assert.Equal(t, -15.0, series.Parameters.RevenueGrowthPct)
	})

	t.Run("Deve falhar para cenário desconhecido sem consultar o repositório", func(t *testing.T) {
		series, err := service.ProjectWithPreset("biz01", "moonshot")

		assert.Nil(t, series)
		assert.ErrorIs(t, err, ErrUnknownPreset)
	})
}

func TestListPresets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockSnapshotRepository(ctrl))

	t.Run("Deve listar os cenários pré-definidos", func(t *testing.T) {
		presets := service.ListPresets()

		assert.ElementsMatch(t, []string{"recession", "hypergrowth", "efficiency"}, presets)
	})
}

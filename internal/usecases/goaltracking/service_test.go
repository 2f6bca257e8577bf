package goaltracking

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

func testGoal() *domain.FinancialGoal {
	return &domain.FinancialGoal{
		ID:          "goal01",
		BusinessID:  "biz01",
		Name:        "Dobrar a receita",
		Metric:      domain.GoalMetricRevenue,
		TargetValue: 1000000,
		Deadline:    "2026-12-31",
		Status:      domain.GoalStatusOnTrack,
	}
}

func TestCreateGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	service := NewService(mockGoalRepo, mockSnapshotRepo)

	t.Run("Deve criar meta com ID gerado e status inicial", func(t *testing.T) {
		goal := testGoal()
		goal.ID = ""
		goal.Status = ""

		mockGoalRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(g *domain.FinancialGoal) (*domain.FinancialGoal, error) {
			assert.NotEmpty(t, g.ID)
			assert.Equal(t, domain.GoalStatusOnTrack, g.Status)
			return g, nil
		})

		created, err := service.Create(goal)

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("Deve rejeitar indicador desconhecido", func(t *testing.T) {
		goal := testGoal()
		goal.Metric = "market_share"

		created, err := service.Create(goal)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrInvalidMetric)
	})

	t.Run("Deve rejeitar valor alvo não positivo", func(t *testing.T) {
		goal := testGoal()
		goal.TargetValue = 0

		created, err := service.Create(goal)

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrInvalidTarget)
	})
}

func TestGoalProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	service := NewService(mockGoalRepo, mockSnapshotRepo)

	t.Run("Deve medir o avanço de cada meta frente ao snapshot mais recente", func(t *testing.T) {
		mockGoalRepo.EXPECT().ListByBusiness("biz01").Return([]*domain.FinancialGoal{testGoal()}, nil)
		mockSnapshotRepo.EXPECT().GetLatestByBusiness("biz01").Return(testSnapshot(), nil)

		progresses, err := service.Progress("biz01")

		require.NoError(t, err)
		require.Len(t, progresses, 1)
		assert.Equal(t, 500000.0, progresses[0].ActualValue)
		assert.InDelta(t, 50.0, progresses[0].ProgressPct, 0.0001)
		assert.False(t, progresses[0].Achieved)
	})

	t.Run("Deve medir avanço zerado quando não há snapshot", func(t *testing.T) {
		mockGoalRepo.EXPECT().ListByBusiness("biz01").Return([]*domain.FinancialGoal{testGoal()}, nil)
		mockSnapshotRepo.EXPECT().GetLatestByBusiness("biz01").Return(nil, nil)

		progresses, err := service.Progress("biz01")

		require.NoError(t, err)
		require.Len(t, progresses, 1)
		assert.Equal(t, 0.0, progresses[0].ProgressPct)
	})
}

func TestRefreshStatuses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	service := NewService(mockGoalRepo, mockSnapshotRepo)

	t.Run("Deve concluir meta atingida e manter as demais", func(t *testing.T) {
		achieved := testGoal()
		achieved.TargetValue = 400000

		pending := testGoal()
		pending.ID = "goal02"

		mockGoalRepo.EXPECT().ListByStatus(domain.GoalStatusOnTrack).Return([]*domain.FinancialGoal{achieved, pending}, nil)
		mockGoalRepo.EXPECT().ListByStatus(domain.GoalStatusAtRisk).Return(nil, nil)

		mockSnapshotRepo.EXPECT().GetLatestByBusiness("biz01").Return(testSnapshot(), nil).Times(2)

		mockGoalRepo.EXPECT().UpdateStatus("goal01", domain.GoalStatusCompleted).Return(nil)

		updated, err := service.RefreshStatuses()

		require.NoError(t, err)
		assert.Equal(t, 1, updated)
	})

	t.Run("Deve marcar como em risco meta vencida e não atingida", func(t *testing.T) {
		overdue := testGoal()
		overdue.Deadline = "2020-01-01"

		mockGoalRepo.EXPECT().ListByStatus(domain.GoalStatusOnTrack).Return([]*domain.FinancialGoal{overdue}, nil)
		mockGoalRepo.EXPECT().ListByStatus(domain.GoalStatusAtRisk).Return(nil, nil)

		mockSnapshotRepo.EXPECT().GetLatestByBusiness("biz01").Return(testSnapshot(), nil)

		mockGoalRepo.EXPECT().UpdateStatus("goal01", domain.GoalStatusAtRisk).Return(nil)

		updated, err := service.RefreshStatuses()

		require.NoError(t, err)
		assert.Equal(t, 1, updated)
	})
}

func TestUpdateGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	service := NewService(mockGoalRepo, mockSnapshotRepo)

	t.Run("Deve atualizar apenas os campos informados", func(t *testing.T) {
		mockGoalRepo.EXPECT().GetByID("goal01").Return(testGoal(), nil)
		mockGoalRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(g *domain.FinancialGoal) error {
			assert.Equal(t, "Triplicar a receita", g.Name)
			assert.Equal(t, 1500000.0, g.TargetValue)
			assert.Equal(t, domain.GoalMetricRevenue, g.Metric)
			return nil
		})

		name := "Triplicar a receita"
		target := 1500000.0

		updated, err := service.Update(&domain.UpdateGoalRequest{
			ID:          "goal01",
			Name:        &name,
			TargetValue: &target,
		})

		require.NoError(t, err)
		assert.Equal(t, "Triplicar a receita", updated.Name)
	})

	t.Run("Deve falhar para meta inexistente", func(t *testing.T) {
		mockGoalRepo.EXPECT().GetByID("goal99").Return(nil, nil)

		_, err := service.Update(&domain.UpdateGoalRequest{ID: "goal99"})

		assert.ErrorIs(t, err, ErrGoalNotFound)
	})

	t.Run("Deve rejeitar valor alvo inválido", func(t *testing.T) {
		mockGoalRepo.EXPECT().GetByID("goal01").Return(testGoal(), nil)

		target := 0.0

		_, err := service.Update(&domain.UpdateGoalRequest{
			ID:          "goal01",
			TargetValue: &target,
		})

		assert.ErrorIs(t, err, ErrInvalidTarget)
	})
}

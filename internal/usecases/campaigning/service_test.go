package campaigning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository/mocks"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

func testMarketingInput() *domain.MarketingROIInput {
	return &domain.MarketingROIInput{
		Mode:             domain.ValueModeAOV,
		AdSpend:          5000,
		OtherCosts:       1000,
		SalesCosts:       2000,
		CPC:              2.50,
		VisitorToLeadPct: 5,
		LeadToCustPct:    20,
		AOV:              150,
		COGSPct:          40,
		ARPA:             99,
		GrossMarginPct:   85,
		ChurnRatePct:     4,
	}
}

func TestROIPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockCampaignScenarioRepository(ctrl))

	t.Run("Deve calcular o ROI de marketing", func(t *testing.T) {
		result := service.MarketingROI(*testMarketingInput())

		require.NotNil(t, result)
		assert.Equal(t, 2000.0, result.Clicks)
	})

	t.Run("Deve projetar a curva de investimento com 11 pontos", func(t *testing.T) {
		curve := service.SpendCurve(*testMarketingInput())

		assert.Len(t, curve, 11)
	})

	t.Run("Deve expor os benchmarks por canal", func(t *testing.T) {
		benchmarks := service.ChannelBenchmarks()

		require.Len(t, benchmarks, 4)
		assert.Equal(t, "E-commerce", benchmarks["ecommerce"].Label)
	})
}

func TestSaveScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScenarioRepo := mocks.NewMockCampaignScenarioRepository(ctrl)
	service := NewService(mockScenarioRepo)

	t.Run("Deve salvar cenário com ID gerado e tipo inferido das entradas", func(t *testing.T) {
		mockScenarioRepo.EXPECT().SaveOrUpdate(gomock.Any()).DoAndReturn(func(entry *repository.CampaignScenarioEntry) error {
			assert.NotEmpty(t, entry.ID)
			assert.Equal(t, repository.ScenarioKindMarketing, entry.Kind)
			return nil
		})

		entry, err := service.SaveScenario(&repository.CampaignScenarioEntry{
			BusinessID: "biz01",
			Name:       "Q3 paid search",
			Marketing:  testMarketingInput(),
		})

		require.NoError(t, err)
		assert.NotEmpty(t, entry.ID)
	})

	t.Run("Deve rejeitar cenário sem nome", func(t *testing.T) {
		entry, err := service.SaveScenario(&repository.CampaignScenarioEntry{
			BusinessID: "biz01",
			Marketing:  testMarketingInput(),
		})

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, ErrMissingName)
	})

	t.Run("Deve rejeitar cenário sem entradas", func(t *testing.T) {
		entry, err := service.SaveScenario(&repository.CampaignScenarioEntry{
			BusinessID: "biz01",
			Name:       "vazio",
		})

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, ErrMissingInputs)
	})
}

func TestLoadScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockScenarioRepo := mocks.NewMockCampaignScenarioRepository(ctrl)
	service := NewService(mockScenarioRepo)

	t.Run("Deve carregar cenário existente", func(t *testing.T) {
		mockScenarioRepo.EXPECT().GetByID("scn01").Return(&repository.CampaignScenarioEntry{
			ID:        "scn01",
			Name:      "Q3 paid search",
			Kind:      repository.ScenarioKindMarketing,
			Marketing: testMarketingInput(),
		}, nil)

		entry, err := service.LoadScenario("scn01")

		require.NoError(t, err)
		assert.Equal(t, "Q3 paid search", entry.Name)
		require.NotNil(t, entry.Marketing)
	})

	t.Run("Deve falhar quando o cenário não existe", func(t *testing.T) {
		mockScenarioRepo.EXPECT().GetByID("scn99").Return(nil, nil)

		entry, err := service.LoadScenario("scn99")

		assert.Nil(t, entry)
		assert.ErrorIs(t, err, ErrScenarioNotFound)
	})
}

package campaigning

import (
	"database/sql"
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/utils"
)

var (
	ErrScenarioNotFound = errors.New("cenário salvo não encontrado")
	ErrMissingName      = errors.New("o cenário precisa de um nome")
	ErrMissingInputs    = errors.New("o cenário precisa de ao menos um conjunto de entradas")
)

// Campaigner calcula o retorno de campanhas de marketing, email e redes
// sociais, e gerencia cenários de entradas salvos por negócio.
type Campaigner interface {
	MarketingROI(in domain.MarketingROIInput) *domain.MarketingROIResult
	SpendCurve(in domain.MarketingROIInput) []domain.SpendCurvePoint
	EmailROI(in domain.EmailROIInput) *domain.EmailROIResult
	SocialROI(in domain.SocialROIInput) *domain.SocialROIResult
	ChannelBenchmarks() map[string]domain.ChannelBenchmark

	SaveScenario(entry *repository.CampaignScenarioEntry) (*repository.CampaignScenarioEntry, error)
	ListScenarios(businessID, kind string) ([]*repository.CampaignScenarioEntry, error)
	LoadScenario(scenarioID string) (*repository.CampaignScenarioEntry, error)
	DeleteScenario(scenarioID string) error
}

type Service struct {
	scenarioRepo repository.CampaignScenarioRepository
}

func NewService(scenarioRepo repository.CampaignScenarioRepository) Campaigner {
	return &Service{
		scenarioRepo: scenarioRepo,
	}
}

func (s *Service) MarketingROI(in domain.MarketingROIInput) *domain.MarketingROIResult {
	return domain.CalculateMarketingROI(in)
}

func (s *Service) SpendCurve(in domain.MarketingROIInput) []domain.SpendCurvePoint {
	return domain.ProjectSpendCurve(in)
}

func (s *Service) EmailROI(in domain.EmailROIInput) *domain.EmailROIResult {
	return domain.CalculateEmailROI(in)
}

func (s *Service) SocialROI(in domain.SocialROIInput) *domain.SocialROIResult {
	return domain.CalculateSocialROI(in)
}

func (s *Service) ChannelBenchmarks() map[string]domain.ChannelBenchmark {
	return domain.ChannelBenchmarks()
}

func (s *Service) SaveScenario(entry *repository.CampaignScenarioEntry) (*repository.CampaignScenarioEntry, error) {
	if entry.Name == "" {
		return nil, ErrMissingName
	}

	if entry.Marketing == nil && entry.Email == nil && entry.Social == nil {
		return nil, ErrMissingInputs
	}

	if entry.Kind == "" {
		switch {
		case entry.Marketing != nil:
			entry.Kind = repository.ScenarioKindMarketing
		case entry.Email != nil:
			entry.Kind = repository.ScenarioKindEmail
		default:
			entry.Kind = repository.ScenarioKindSocial
		}
	}

	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao gerar ID do cenário")
		}
		entry.ID = id
	}

	if err := s.scenarioRepo.SaveOrUpdate(entry); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao salvar cenário")
	}

	return entry, nil
}

func (s *Service) ListScenarios(businessID, kind string) ([]*repository.CampaignScenarioEntry, error) {
	entries, err := s.scenarioRepo.ListByBusiness(businessID, kind)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar cenários")
	}

	return entries, nil
}

func (s *Service) LoadScenario(scenarioID string) (*repository.CampaignScenarioEntry, error) {
	entry, err := s.scenarioRepo.GetByID(scenarioID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar cenário")
	}
	if entry == nil {
		return nil, ErrScenarioNotFound
	}

	return entry, nil
}

func (s *Service) DeleteScenario(scenarioID string) error {
	err := s.scenarioRepo.Delete(scenarioID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrScenarioNotFound
		}
		return pkgerrors.Wrap(err, "erro ao remover cenário")
	}

	return nil
}

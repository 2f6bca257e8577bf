package projecting

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

var (
	ErrSnapshotNotFound = errors.New("nenhum snapshot encontrado para o negócio")
	ErrUnknownPreset    = errors.New("cenário pré-definido desconhecido")
)

// Projector projeta cenários financeiros sobre o snapshot mais recente de um
// negócio.
type Projector interface {
	Project(businessID string, params domain.ScenarioParameters) (*domain.ProjectionSeries, error)
	ProjectWithPreset(businessID, presetName string) (*domain.ProjectionSeries, error)
	ListPresets() []string
}

type Service struct {
	snapshotRepo repository.SnapshotRepository
}

func NewService(snapshotRepo repository.SnapshotRepository) Projector {
	return &Service{
		snapshotRepo: snapshotRepo,
	}
}

func (s *Service) Project(businessID string, params domain.ScenarioParameters) (*domain.ProjectionSeries, error) {
	snapshot, err := s.snapshotRepo.GetLatestByBusiness(businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar snapshot")
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	return domain.ProjectScenario(snapshot, params), nil
}

func (s *Service) ProjectWithPreset(businessID, presetName string) (*domain.ProjectionSeries, error) {
	params, ok := domain.LookupScenarioPreset(presetName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, presetName)
	}

	return s.Project(businessID, params)
}

func (s *Service) ListPresets() []string {
	return domain.ListScenarioPresets()
}

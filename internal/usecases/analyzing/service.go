package analyzing

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

var (
	ErrBusinessNotFound = errors.New("negócio não encontrado")
	ErrSnapshotNotFound = errors.New("nenhum snapshot encontrado para o negócio")
)

type Service struct {
	businessRepo repository.BusinessRepository
	snapshotRepo repository.SnapshotRepository
}

func NewService(
	businessRepo repository.BusinessRepository,
	snapshotRepo repository.SnapshotRepository,
) Analyzer {
	return &Service{
		businessRepo: businessRepo,
		snapshotRepo: snapshotRepo,
	}
}

func (s *Service) Overview(businessID, period string) (*domain.BusinessOverview, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar negócio")
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	snapshot, err := s.resolveSnapshot(businessID, period)
	if err != nil {
		return nil, err
	}

	kpis := domain.CalculateKPIs(snapshot)
	benchmark := domain.LookupBenchmark(resolveIndustry(business, snapshot))

	return &domain.BusinessOverview{
		Business:  business,
		Snapshot:  snapshot,
		KPIs:      kpis,
		Health:    domain.CalculateHealthScore(kpis, &benchmark),
		CashFlow:  domain.SummarizeCashFlow(snapshot),
		Benchmark: benchmark,
	}, nil
}

func (s *Service) KPIs(businessID, period string) (*domain.KPISet, error) {
	snapshot, err := s.resolveSnapshot(businessID, period)
	if err != nil {
		return nil, err
	}

	return domain.CalculateKPIs(snapshot), nil
}

func (s *Service) Health(businessID, period string) (*domain.HealthScore, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar negócio")
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	snapshot, err := s.resolveSnapshot(businessID, period)
	if err != nil {
		return nil, err
	}

	benchmark := domain.LookupBenchmark(resolveIndustry(business, snapshot))

	return domain.CalculateHealthScore(domain.CalculateKPIs(snapshot), &benchmark), nil
}

func (s *Service) CashFlow(businessID, period string) (*CashFlowReport, error) {
	snapshot, err := s.resolveSnapshot(businessID, period)
	if err != nil {
		return nil, err
	}

	summary := domain.SummarizeCashFlow(snapshot)

	return &CashFlowReport{
		Summary:   summary,
		Breakdown: domain.ExpenseBreakdown(snapshot),
		Forecast:  domain.ForecastBalance(summary.LiquidAssets, snapshot.CashInflow, snapshot.CashOutflow),
	}, nil
}

func (s *Service) BenchmarkComparison(businessID, period string) (*domain.BenchmarkComparison, error) {
	business, err := s.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar negócio")
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	snapshot, err := s.resolveSnapshot(businessID, period)
	if err != nil {
		return nil, err
	}

	return domain.CompareWithBenchmark(domain.CalculateKPIs(snapshot), resolveIndustry(business, snapshot)), nil
}

func (s *Service) ListBenchmarks() []domain.IndustryBenchmark {
	industries := domain.ListIndustries()

	benchmarks := make([]domain.IndustryBenchmark, 0, len(industries))
	for _, industry := range industries {
		benchmarks = append(benchmarks, domain.LookupBenchmark(industry))
	}

	return benchmarks
}

func (s *Service) Consolidate(ownerID int, baseCurrency string) (*domain.ConsolidatedReport, error) {
	businesses, err := s.businessRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar negócios do usuário")
	}

	entities := make([]domain.ConsolidationEntity, 0, len(businesses))
	for _, business := range businesses {
		snapshot, err := s.snapshotRepo.GetLatestByBusiness(business.ID)
		if err != nil {
			logrus.Warnf("Erro ao buscar snapshot do negócio %s para consolidação: %v", business.ID, err)
			continue
		}

		entities = append(entities, domain.ConsolidationEntity{
			BusinessID: business.ID,
			Name:       business.Name,
			Currency:   business.Currency,
			Snapshot:   snapshot,
		})
	}

	return domain.Consolidate(entities, baseCurrency), nil
}

// resolveIndustry prefere o setor registrado no snapshot, caindo no setor do
// cadastro do negócio.
func resolveIndustry(business *domain.BusinessProfile, snapshot *domain.FinancialSnapshot) string {
	if snapshot != nil && snapshot.Industry != "" {
		return snapshot.Industry
	}
	return business.Industry
}

// resolveSnapshot busca o snapshot do período informado, ou o mais recente
// quando o período é vazio.
func (s *Service) resolveSnapshot(businessID, period string) (*domain.FinancialSnapshot, error) {
	var snapshot *domain.FinancialSnapshot
	var err error

	if period == "" {
		snapshot, err = s.snapshotRepo.GetLatestByBusiness(businessID)
	} else {
		snapshot, err = s.snapshotRepo.GetByBusinessAndPeriod(businessID, period)
	}

	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar snapshot")
	}
	if snapshot == nil {
		return nil, ErrSnapshotNotFound
	}

	return snapshot, nil
}

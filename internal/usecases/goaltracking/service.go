package goaltracking

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/utils"
)

var (
	ErrGoalNotFound  = errors.New("meta não encontrada")
	ErrInvalidMetric = errors.New("indicador de meta desconhecido")
	ErrInvalidTarget = errors.New("o valor alvo da meta deve ser positivo")
)

// GoalTracker gerencia metas financeiras e seu avanço frente aos snapshots.
type GoalTracker interface {
	Create(goal *domain.FinancialGoal) (*domain.FinancialGoal, error)
	List(businessID string) ([]*domain.FinancialGoal, error)
	Progress(businessID string) ([]*domain.GoalProgress, error)
	Update(req *domain.UpdateGoalRequest) (*domain.FinancialGoal, error)
	Delete(goalID string) error

	// RefreshStatuses reavalia o status de todas as metas não concluídas.
	// Usado pelo sincronizador agendado. Retorna o número de metas
	// atualizadas.
	RefreshStatuses() (int, error)
}

type Service struct {
	goalRepo     repository.GoalRepository
	snapshotRepo repository.SnapshotRepository
}

func NewService(goalRepo repository.GoalRepository, snapshotRepo repository.SnapshotRepository) GoalTracker {
	return &Service{
		goalRepo:     goalRepo,
		snapshotRepo: snapshotRepo,
	}
}

func (s *Service) Create(goal *domain.FinancialGoal) (*domain.FinancialGoal, error) {
	if !goal.ValidMetric() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMetric, goal.Metric)
	}

	if goal.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	if goal.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao gerar ID da meta")
		}
		goal.ID = id
	}

	if goal.Status == "" {
		goal.Status = domain.GoalStatusOnTrack
	}

	goal, err := s.goalRepo.Create(goal)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao criar meta")
	}

	return goal, nil
}

func (s *Service) List(businessID string) ([]*domain.FinancialGoal, error) {
	goals, err := s.goalRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar metas")
	}

	return goals, nil
}

func (s *Service) Progress(businessID string) ([]*domain.GoalProgress, error) {
	goals, err := s.goalRepo.ListByBusiness(businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao listar metas")
	}

	snapshot, err := s.snapshotRepo.GetLatestByBusiness(businessID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar snapshot")
	}

	kpis := domain.CalculateKPIs(snapshot)

	progresses := make([]*domain.GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progresses = append(progresses, domain.CalculateGoalProgress(goal, snapshot, kpis))
	}

	return progresses, nil
}

func (s *Service) Update(req *domain.UpdateGoalRequest) (*domain.FinancialGoal, error) {
	goal, err := s.goalRepo.GetByID(req.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar meta")
	}
	if goal == nil {
		return nil, ErrGoalNotFound
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Metric != nil {
		goal.Metric = *req.Metric
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
	}
	if req.Deadline != nil {
		goal.Deadline = *req.Deadline
	}

	if !goal.ValidMetric() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMetric, goal.Metric)
	}
	if goal.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	if err := s.goalRepo.Update(goal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, pkgerrors.Wrap(err, "erro ao atualizar meta")
	}

	return goal, nil
}

func (s *Service) Delete(goalID string) error {
	err := s.goalRepo.Delete(goalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrGoalNotFound
		}
		return pkgerrors.Wrap(err, "erro ao remover meta")
	}

	return nil
}

func (s *Service) RefreshStatuses() (int, error) {
	updated := 0

	for _, status := range []string{domain.GoalStatusOnTrack, domain.GoalStatusAtRisk} {
		goals, err := s.goalRepo.ListByStatus(status)
		if err != nil {
			return updated, pkgerrors.Wrap(err, "erro ao listar metas por status")
		}

		for _, goal := range goals {
			snapshot, err := s.snapshotRepo.GetLatestByBusiness(goal.BusinessID)
			if err != nil {
				logrus.Warnf("Erro ao buscar snapshot do negócio %s para a meta %s: %v", goal.BusinessID, goal.ID, err)
				continue
			}

			kpis := domain.CalculateKPIs(snapshot)
			progress := domain.CalculateGoalProgress(goal, snapshot, kpis)
			newStatus := domain.ResolveGoalStatus(goal, progress, time.Now())

			if newStatus == goal.Status {
				continue
			}

			if err := s.goalRepo.UpdateStatus(goal.ID, newStatus); err != nil {
				logrus.Warnf("Erro ao atualizar status da meta %s: %v", goal.ID, err)
				continue
			}

			updated++
		}
	}

	return updated, nil
}

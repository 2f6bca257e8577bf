package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/goaltracking"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/apiErrors"
)

func CreateGoal(businessRepo repository.BusinessRepository, tracker goaltracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		var goal domain.FinancialGoal
		if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		goal.BusinessID = business.ID

		created, err := tracker.Create(&goal)
		if err != nil {
			handleGoalError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListGoals(businessRepo repository.BusinessRepository, tracker goaltracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		goals, err := tracker.List(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar metas", nil)
			return
		}

		writeJSON(w, http.StatusOK, goals)
	}
}

// GetGoalProgress calcula o avanço de todas as metas do negócio frente ao
// snapshot mais recente.
func GetGoalProgress(businessRepo repository.BusinessRepository, tracker goaltracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		progress, err := tracker.Progress(business.ID)
		if err != nil {
			handleGoalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, progress)
	}
}

func UpdateGoal(tracker goaltracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateGoalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = goalID

		goal, err := tracker.Update(&req)
		if err != nil {
			handleGoalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, goal)
	}
}

func DeleteGoal(tracker goaltracking.GoalTracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		goalID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := tracker.Delete(goalID); err != nil {
			handleGoalError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleGoalError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, goaltracking.ErrGoalNotFound):
		apiErrors.WriteError(w, apiErrors.ErrGoalNotFound, "Meta não encontrada", nil)
	case errors.Is(err, goaltracking.ErrInvalidMetric):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Indicador de meta desconhecido", nil)
	case errors.Is(err, goaltracking.ErrInvalidTarget):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "O valor alvo da meta deve ser positivo", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar metas", nil)
	}
}

package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/campaigning"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/apiErrors"
)

func MarketingROI(campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.MarketingROIInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, http.StatusOK, campaigner.MarketingROI(in))
	}
}

// MarketingSpendCurve varia o investimento em anúncios sobre as mesmas
// entradas e retorna o lucro em cada ponto da curva.
func MarketingSpendCurve(campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.MarketingROIInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, http.StatusOK, campaigner.SpendCurve(in))
	}
}

func EmailROI(campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.EmailROIInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, http.StatusOK, campaigner.EmailROI(in))
	}
}

func SocialROI(campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in domain.SocialROIInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		writeJSON(w, http.StatusOK, campaigner.SocialROI(in))
	}
}

func GetROIBenchmarks(campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, campaigner.ChannelBenchmarks())
	}
}

func SaveROIScenario(businessRepo repository.BusinessRepository, campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		var entry repository.CampaignScenarioEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		entry.BusinessID = business.ID

		saved, err := campaigner.SaveScenario(&entry)
		if err != nil {
			handleScenarioError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, saved)
	}
}

func ListROIScenarios(businessRepo repository.BusinessRepository, campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		scenarios, err := campaigner.ListScenarios(business.ID, r.URL.Query().Get("kind"))
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar cenários", nil)
			return
		}

		writeJSON(w, http.StatusOK, scenarios)
	}
}

func GetROIScenario(campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scenarioID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		scenario, err := campaigner.LoadScenario(scenarioID)
		if err != nil {
			handleScenarioError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, scenario)
	}
}

func DeleteROIScenario(campaigner campaigning.Campaigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		scenarioID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := campaigner.DeleteScenario(scenarioID); err != nil {
			handleScenarioError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func handleScenarioError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, campaigning.ErrScenarioNotFound):
		apiErrors.WriteError(w, apiErrors.ErrScenarioNotFound, "Cenário não encontrado", nil)
	case errors.Is(err, campaigning.ErrMissingName), errors.Is(err, campaigning.ErrMissingInputs):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar cenários", nil)
	}
}

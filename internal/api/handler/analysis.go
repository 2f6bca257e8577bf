package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/analyzing"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/apiErrors"
)

func GetOverview(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, period := analysisParams(r)

		overview, err := analyzer.Overview(businessID, period)
		if err != nil {
			handleAnalysisError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, overview)
	}
}

func GetKPIs(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, period := analysisParams(r)

		kpis, err := analyzer.KPIs(businessID, period)
		if err != nil {
			handleAnalysisError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, kpis)
	}
}

func GetHealth(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, period := analysisParams(r)

		health, err := analyzer.Health(businessID, period)
		if err != nil {
			handleAnalysisError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, health)
	}
}

func GetCashFlow(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, period := analysisParams(r)

		report, err := analyzer.CashFlow(businessID, period)
		if err != nil {
			handleAnalysisError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func GetBenchmarkComparison(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID, period := analysisParams(r)

		comparison, err := analyzer.BenchmarkComparison(businessID, period)
		if err != nil {
			handleAnalysisError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comparison)
	}
}

func GetBenchmarks(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, analyzer.ListBenchmarks())
	}
}

// GetConsolidated agrega os negócios do usuário autenticado em uma moeda
// base, informada via query string "currency" (padrão USD).
func GetConsolidated(analyzer analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		currency := strings.ToUpper(r.URL.Query().Get("currency"))
		if currency == "" {
			currency = "USD"
		}

		report, err := analyzer.Consolidate(claims.UserID, currency)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao consolidar negócios", nil)
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func analysisParams(r *http.Request) (businessID, period string) {
	businessID = httprouter.ParamsFromContext(r.Context()).ByName("id")
	period = r.URL.Query().Get("period")
	return businessID, period
}

func handleAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, analyzing.ErrBusinessNotFound):
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Empresa não encontrada", nil)
	case errors.Is(err, analyzing.ErrSnapshotNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhum snapshot disponível para o período", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar análise", nil)
	}
}

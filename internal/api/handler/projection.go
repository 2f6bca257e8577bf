package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/projecting"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/apiErrors"
)

// RunProjection projeta um cenário sobre o snapshot mais recente do negócio.
// Com a query "preset" usa um cenário pré-definido; caso contrário o corpo da
// requisição traz os parâmetros.
func RunProjection(projector projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if preset := r.URL.Query().Get("preset"); preset != "" {
			series, err := projector.ProjectWithPreset(businessID, preset)
			if err != nil {
				handleProjectionError(w, err)
				return
			}

			writeJSON(w, http.StatusOK, series)
			return
		}

		var params domain.ScenarioParameters
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		series, err := projector.Project(businessID, params)
		if err != nil {
			handleProjectionError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, series)
	}
}

func GetProjectionPresets(projector projecting.Projector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]string{
			"presets": projector.ListPresets(),
		})
	}
}

func handleProjectionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, projecting.ErrSnapshotNotFound):
		apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Nenhum snapshot disponível para projeção", nil)
	case errors.Is(err, projecting.ErrUnknownPreset):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Cenário pré-definido desconhecido", nil)
	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao projetar cenário", nil)
	}
}

package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/apiErrors"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/utils"
)

func ListSnapshots(businessRepo repository.BusinessRepository, snapshotRepo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		snapshots, err := snapshotRepo.ListByBusiness(business.ID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar snapshots", nil)
			return
		}

		writeJSON(w, http.StatusOK, snapshots)
	}
}

func SaveSnapshot(businessRepo repository.BusinessRepository, snapshotRepo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		var snapshot domain.FinancialSnapshot
		if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		snapshot.BusinessID = business.ID
		if snapshot.Industry == "" {
			snapshot.Industry = business.Industry
		}

		persistSnapshot(w, snapshotRepo, &snapshot)
	}
}

// ImportSnapshotCSV recebe um arquivo CSV (multipart "file" ou corpo bruto)
// com pares métrica/valor e persiste o snapshot resultante.
func ImportSnapshotCSV(businessRepo repository.BusinessRepository, snapshotRepo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		reader, err := csvBody(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo CSV não fornecido", nil)
			return
		}

		snapshot, err := domain.ParseSnapshotCSV(reader)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "CSV inválido", map[string]any{
				"error": err.Error(),
			})
			return
		}

		snapshot.BusinessID = business.ID
		if snapshot.Industry == "" {
			snapshot.Industry = business.Industry
		}
		if snapshot.Period == "" {
			snapshot.Period = r.URL.Query().Get("period")
		}

		persistSnapshot(w, snapshotRepo, snapshot)
	}
}

func UpdateSnapshot(snapshotRepo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshotID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		existing, err := snapshotRepo.GetByID(snapshotID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot", nil)
			return
		}
		if existing == nil {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Snapshot não encontrado", nil)
			return
		}

		var snapshot domain.FinancialSnapshot
		if err := json.NewDecoder(r.Body).Decode(&snapshot); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		snapshot.ID = existing.ID
		snapshot.BusinessID = existing.BusinessID

		if err := snapshot.Validate(); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		if err := snapshotRepo.SaveOrUpdate(&snapshot); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar snapshot", nil)
			return
		}

		writeJSON(w, http.StatusOK, &snapshot)
	}
}

func DeleteSnapshot(snapshotRepo repository.SnapshotRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshotID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := snapshotRepo.Delete(snapshotID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound, "Snapshot não encontrado", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func persistSnapshot(w http.ResponseWriter, snapshotRepo repository.SnapshotRepository, snapshot *domain.FinancialSnapshot) {
	if err := snapshot.Validate(); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return
	}

	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador", nil)
			return
		}
		snapshot.ID = id
	}

	if err := snapshotRepo.SaveOrUpdate(snapshot); err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar snapshot", nil)
		return
	}

	writeJSON(w, http.StatusCreated, snapshot)
}

func csvBody(r *http.Request) (io.Reader, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return file, nil
	}

	return r.Body, nil
}

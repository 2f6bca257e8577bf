package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/apiErrors"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/middleware"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/utils"
)

func CreateBusiness(businessRepo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		var req domain.CreateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Name == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome da empresa é obrigatório", nil)
			return
		}

		id, err := utils.GenerateID()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar identificador", nil)
			return
		}

		currency := req.Currency
		if currency == "" {
			currency = "USD"
		}

		business := &domain.BusinessProfile{
			ID:       id,
			OwnerID:  claims.UserID,
			Name:     req.Name,
			Industry: req.Industry,
			Currency: currency,
		}

		created, err := businessRepo.Create(business)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar empresa", nil)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ListBusinesses(businessRepo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}

		businesses, err := businessRepo.ListByOwner(claims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar empresas", nil)
			return
		}

		writeJSON(w, http.StatusOK, businesses)
	}
}

func GetBusiness(businessRepo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		writeJSON(w, http.StatusOK, business)
	}
}

func UpdateBusiness(businessRepo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		var req domain.UpdateBusinessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.Name != nil {
			business.Name = *req.Name
		}
		if req.Industry != nil {
			business.Industry = *req.Industry
		}
		if req.Currency != nil {
			business.Currency = *req.Currency
		}

		if err := businessRepo.Update(business); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar empresa", nil)
			return
		}

		writeJSON(w, http.StatusOK, business)
	}
}

func DeleteBusiness(businessRepo repository.BusinessRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		business, ok := loadOwnedBusiness(w, r, businessRepo)
		if !ok {
			return
		}

		if err := businessRepo.Delete(business.ID); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover empresa", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// loadOwnedBusiness busca a empresa do path e garante que o usuário autenticado
// é o proprietário ou administrador.
func loadOwnedBusiness(w http.ResponseWriter, r *http.Request, businessRepo repository.BusinessRepository) (*domain.BusinessProfile, bool) {
	claims, ok := claimsFromContext(w, r)
	if !ok {
		return nil, false
	}

	businessID := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if businessID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da empresa não fornecido", nil)
		return nil, false
	}

	business, err := businessRepo.GetByID(businessID)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar empresa", nil)
		return nil, false
	}
	if business == nil {
		apiErrors.WriteError(w, apiErrors.ErrBusinessNotFound, "Empresa não encontrada", map[string]any{
			"business_id": businessID,
		})
		return nil, false
	}

	if business.OwnerID != claims.UserID && claims.UserRoleID != middleware.RoleAdmin {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Usuário sem acesso à empresa", nil)
		return nil, false
	}

	return business, true
}

func claimsFromContext(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok || claims == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}

	return claims, true
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/scheduler"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/apiErrors"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeHealthDigest = "health-digest"
	CronJobTypeGoalStatus   = "goal-status"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	HealthDigestSyncService *scheduler.HealthDigestSyncService
	GoalStatusSyncService   *scheduler.GoalStatusSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		userClaims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}
		if userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeHealthDigest:
			if services.HealthDigestSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resumos de saúde não disponível", nil)
				return
			}
			services.HealthDigestSyncService.TriggerManualSync()

		case CronJobTypeGoalStatus:
			if services.GoalStatusSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de status de metas não disponível", nil)
				return
			}
			services.GoalStatusSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.HealthDigestSyncService != nil {
				services.HealthDigestSyncService.TriggerManualSync()
			}
			if services.GoalStatusSyncService != nil {
				services.GoalStatusSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: health-digest, goal-status, all", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		userClaims, ok := claimsFromContext(w, r)
		if !ok {
			return
		}
		if userClaims.UserRoleID != middleware.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"health-digest": services.HealthDigestSyncService.GetStatus(),
			"goal-status":   services.GoalStatusSyncService.GetStatus(),
		})
	}
}

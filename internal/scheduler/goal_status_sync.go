package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/config"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/goaltracking"
)

// GoalStatusSyncConfig representa a configuração do agendador de status de
// metas.
type GoalStatusSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// GoalStatusSyncService reavalia diariamente o status das metas financeiras:
// metas atingidas são concluídas e metas vencidas ficam em risco.
type GoalStatusSyncService struct {
	scheduler           *gocron.Scheduler
	config              GoalStatusSyncConfig
	goalService         goaltracking.GoalTracker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewGoalStatusSyncService cria uma nova instância do serviço de status de
// metas.
func NewGoalStatusSyncService(
	goalService goaltracking.GoalTracker,
	appConfig *config.Config,
) *GoalStatusSyncService {
	statusConfig := GoalStatusSyncConfig{
		CronSchedule: appConfig.GoalStatusSync.CronSchedule,
		SyncEnabled:  appConfig.GoalStatusSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": statusConfig.CronSchedule,
		"sync_enabled":  statusConfig.SyncEnabled,
	}).Info("Configuração do agendador de status de metas carregada")

	return &GoalStatusSyncService{
		scheduler:   scheduler,
		config:      statusConfig,
		goalService: goalService,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *GoalStatusSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de status de metas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de status de metas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncGoalStatuses()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de status de metas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de status de metas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncGoalStatuses reavalia o status de todas as metas não concluídas
func (s *GoalStatusSyncService) syncGoalStatuses() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status de metas já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando sincronização de status de metas")

	updated, err := s.goalService.RefreshStatuses()
	if err != nil {
		logrus.WithError(err).Error("Erro ao reavaliar status das metas")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"updated":  updated,
	}).Info("Sincronização de status de metas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma sincronização de status de metas
func (s *GoalStatusSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de status de metas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de status de metas")
	go s.syncGoalStatuses()
}

// GetStatus retorna o status atual do agendador
func (s *GoalStatusSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/config"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/domain"
)

// HealthDigestSyncConfig representa a configuração do agendador de resumos de
// saúde financeira.
type HealthDigestSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// HealthDigestSyncService calcula e persiste diariamente o score de saúde e os
// KPIs do snapshot mais recente de cada negócio.
type HealthDigestSyncService struct {
	scheduler           *gocron.Scheduler
	config              HealthDigestSyncConfig
	businessRepo        repository.BusinessRepository
	snapshotRepo        repository.SnapshotRepository
	digestRepo          repository.HealthDigestRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewHealthDigestSyncService cria uma nova instância do serviço de resumos de
// saúde financeira.
func NewHealthDigestSyncService(
	businessRepo repository.BusinessRepository,
	snapshotRepo repository.SnapshotRepository,
	digestRepo repository.HealthDigestRepository,
	appConfig *config.Config,
) *HealthDigestSyncService {
	digestConfig := HealthDigestSyncConfig{
		CronSchedule: appConfig.HealthDigestSync.CronSchedule,
		SyncEnabled:  appConfig.HealthDigestSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": digestConfig.CronSchedule,
		"sync_enabled":  digestConfig.SyncEnabled,
	}).Info("Configuração do agendador de resumos de saúde carregada")

	return &HealthDigestSyncService{
		scheduler:    scheduler,
		config:       digestConfig,
		businessRepo: businessRepo,
		snapshotRepo: snapshotRepo,
		digestRepo:   digestRepo,
		syncRunning:  false,
	}
}

// Start inicia o agendador
func (s *HealthDigestSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de resumos de saúde desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de resumos de saúde")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllDigests()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de resumos de saúde: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de resumos de saúde")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllDigests calcula o resumo de saúde de todos os negócios cadastrados
func (s *HealthDigestSyncService) syncAllDigests() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de resumos de saúde já em andamento, ignorando")
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

	logrus.Info("Iniciando sincronização de resumos de saúde para todos os negócios")

	businesses, err := s.businessRepo.List()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de negócios para resumos de saúde")
		return
	}

	if len(businesses) == 0 {
		logrus.Info("Nenhum negócio encontrado para resumos de saúde")
		return
	}

	processed := 0
	for _, business := range businesses {
		if s.processBusinessDigest(business, startTime) {
			processed++
		}
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":   duration.String(),
		"businesses": len(businesses),
		"processed":  processed,
	}).Info("Sincronização de resumos de saúde concluída")

	s.lastSyncCompletedAt = time.Now()
}

// processBusinessDigest calcula e persiste o resumo de um negócio
func (s *HealthDigestSyncService) processBusinessDigest(business *domain.BusinessProfile, digestDate time.Time) bool {
	snapshot, err := s.snapshotRepo.GetLatestByBusiness(business.ID)
	if err != nil {
		logrus.WithError(err).WithField("business_id", business.ID).Error("Erro ao buscar snapshot para resumo de saúde")
		return false
	}

	if snapshot == nil {
		logrus.WithField("business_id", business.ID).Info("Negócio sem snapshot. Pulando resumo de saúde.")
		return false
	}

	industry := business.Industry
	if snapshot.Industry != "" {
		industry = snapshot.Industry
	}

	kpis := domain.CalculateKPIs(snapshot)
	benchmark := domain.LookupBenchmark(industry)
	score := domain.CalculateHealthScore(kpis, &benchmark)

	entry := &repository.HealthDigestEntry{
		BusinessID: business.ID,
		Period:     snapshot.Period,
		DigestDate: digestDate,
		Score:      score,
		KPIs:       kpis,
	}

	if err := s.digestRepo.SaveOrUpdate(entry); err != nil {
		logrus.WithError(err).WithField("business_id", business.ID).Error("Erro ao salvar resumo de saúde")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"business_id": business.ID,
		"period":      snapshot.Period,
		"score":       score.Total,
		"label":       score.Label,
	}).Info("Resumo de saúde salvo com sucesso")

	return true
}

// TriggerManualSync inicia manualmente uma sincronização de resumos de saúde
func (s *HealthDigestSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de resumos de saúde já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de resumos de saúde")
	go s.syncAllDigests()
}

// GetStatus retorna o status atual do agendador
func (s *HealthDigestSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}

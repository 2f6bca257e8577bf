package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/api/handler"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/api/handler/router"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/config"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/scheduler"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/analyzing"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/authenticating"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/campaigning"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/goaltracking"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/projecting"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	businessRepo repository.BusinessRepository,
	snapshotRepo repository.SnapshotRepository,
	analyzer analyzing.Analyzer,
	projector projecting.Projector,
	campaigner campaigning.Campaigner,
	goalTracker goaltracking.GoalTracker,
	authenticator authenticating.Authenticator,
	healthDigestSyncService *scheduler.HealthDigestSyncService,
	goalStatusSyncService *scheduler.GoalStatusSyncService,
) (*Server, error) {
	cronServices := handler.CronJobServices{
		HealthDigestSyncService: healthDigestSyncService,
		GoalStatusSyncService:   goalStatusSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Users(authenticator)...),
		router.WithRoutes(handler.Businesses(businessRepo)...),
		router.WithRoutes(handler.Snapshots(businessRepo, snapshotRepo)...),
		router.WithRoutes(handler.Analysis(analyzer)...),
		router.WithRoutes(handler.Projection(projector)...),
		router.WithRoutes(handler.ROI(businessRepo, campaigner)...),
		router.WithRoutes(handler.Goals(businessRepo, goalTracker)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}

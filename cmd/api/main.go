package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/database/postgres"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/api"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/config"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/scheduler"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/analyzing"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/authenticating"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/campaigning"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/goaltracking"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/projecting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	businessRepo := repository.NewBusinessRepository(pgConn)
	snapshotRepo := repository.NewSnapshotRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	scenarioRepo := repository.NewCampaignScenarioRepository(pgConn)
	digestRepo := repository.NewHealthDigestRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	analyzer := analyzing.NewService(businessRepo, snapshotRepo)
	projector := projecting.NewService(snapshotRepo)
	campaigner := campaigning.NewService(scenarioRepo)
	goalTracker := goaltracking.NewService(goalRepo, snapshotRepo)

	// Inicializa os agendadores de sincronização
	healthDigestSyncService := scheduler.NewHealthDigestSyncService(
		businessRepo,
		snapshotRepo,
		digestRepo,
		cfg,
	)

	goalStatusSyncService := scheduler.NewGoalStatusSyncService(
		goalTracker,
		cfg,
	)

	// Inicia os agendadores em background
	if err := healthDigestSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de resumos de saúde financeira")
	} else {
		logrus.Info("Agendador de resumos de saúde financeira iniciado com sucesso")
	}

	if err := goalStatusSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de status de metas")
	} else {
		logrus.Info("Agendador de status de metas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		businessRepo,
		snapshotRepo,
		analyzer,
		projector,
		campaigner,
		goalTracker,
		authenticator,
		healthDigestSyncService,
		goalStatusSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

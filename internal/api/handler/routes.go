package handler

import (
	"net/http"

	"github.com/Gracehouse247/noble-clarity-engine-sub000/infrastructure/repository"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/api/handler/router"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/analyzing"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/authenticating"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/campaigning"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/goaltracking"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/internal/usecases/projecting"
	"github.com/Gracehouse247/noble-clarity-engine-sub000/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPut,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/businesses",
			Method:      http.MethodPut,
			Handler:     UpdateUserBusinesses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Businesses(businessRepo repository.BusinessRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/businesses",
			Method:      http.MethodGet,
			Handler:     ListBusinesses(businessRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses",
			Method:      http.MethodPost,
			Handler:     CreateBusiness(businessRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id",
			Method:      http.MethodGet,
			Handler:     GetBusiness(businessRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id",
			Method:      http.MethodPut,
			Handler:     UpdateBusiness(businessRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteBusiness(businessRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Snapshots(businessRepo repository.BusinessRepository, snapshotRepo repository.SnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/businesses/:id/snapshots",
			Method:      http.MethodGet,
			Handler:     ListSnapshots(businessRepo, snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/snapshots",
			Method:      http.MethodPost,
			Handler:     SaveSnapshot(businessRepo, snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/snapshots/import",
			Method:      http.MethodPost,
			Handler:     ImportSnapshotCSV(businessRepo, snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/snapshots/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSnapshot(snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/snapshots/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSnapshot(snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Analysis(analyzer analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/businesses/:id/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/kpis",
			Method:      http.MethodGet,
			Handler:     GetKPIs(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/health",
			Method:      http.MethodGet,
			Handler:     GetHealth(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/cashflow",
			Method:      http.MethodGet,
			Handler:     GetCashFlow(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/benchmark-comparison",
			Method:      http.MethodGet,
			Handler:     GetBenchmarkComparison(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/benchmarks",
			Method:      http.MethodGet,
			Handler:     GetBenchmarks(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consolidated",
			Method:      http.MethodGet,
			Handler:     GetConsolidated(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Projection(projector projecting.Projector) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/businesses/:id/projection",
			Method:      http.MethodPost,
			Handler:     RunProjection(projector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/projection/presets",
			Method:      http.MethodGet,
			Handler:     GetProjectionPresets(projector),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ROI(businessRepo repository.BusinessRepository, campaigner campaigning.Campaigner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/roi/marketing",
			Method:      http.MethodPost,
			Handler:     MarketingROI(campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/roi/marketing/spend-curve",
			Method:      http.MethodPost,
			Handler:     MarketingSpendCurve(campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/roi/email",
			Method:      http.MethodPost,
			Handler:     EmailROI(campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/roi/social",
			Method:      http.MethodPost,
			Handler:     SocialROI(campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/roi/benchmarks",
			Method:      http.MethodGet,
			Handler:     GetROIBenchmarks(campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/roi/scenarios",
			Method:      http.MethodGet,
			Handler:     ListROIScenarios(businessRepo, campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/roi/scenarios",
			Method:      http.MethodPost,
			Handler:     SaveROIScenario(businessRepo, campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/roi/scenarios/:id",
			Method:      http.MethodGet,
			Handler:     GetROIScenario(campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/roi/scenarios/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteROIScenario(campaigner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Goals(businessRepo repository.BusinessRepository, tracker goaltracking.GoalTracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/businesses/:id/goals",
			Method:      http.MethodGet,
			Handler:     ListGoals(businessRepo, tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/goals",
			Method:      http.MethodPost,
			Handler:     CreateGoal(businessRepo, tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/businesses/:id/goals/progress",
			Method:      http.MethodGet,
			Handler:     GetGoalProgress(businessRepo, tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/:id",
			Method:      http.MethodPut,
			Handler:     UpdateGoal(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/goals/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteGoal(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

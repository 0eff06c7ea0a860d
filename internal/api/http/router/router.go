package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/fertitrack/fertitrack_backend/config"
	"github.com/fertitrack/fertitrack_backend/internal/api/http/handler"
	"github.com/fertitrack/fertitrack_backend/internal/api/http/middleware"
	"github.com/fertitrack/fertitrack_backend/internal/service/auth"
	"github.com/fertitrack/fertitrack_backend/internal/service/laboratory"
	"github.com/fertitrack/fertitrack_backend/internal/service/patient"
	"github.com/fertitrack/fertitrack_backend/internal/service/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/service/user"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	pasetotoken "github.com/fertitrack/fertitrack_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg          *config.Config
	Redis        *redis.Client
	Auth         authorize.IAuthorization
	AuthSvc      auth.Service
	UserSvc      user.Service
	PatientSvc   patient.Service
	TreatmentSvc treatment.Service
	LabSvc       laboratory.Service
	PasetoMgr    *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}
	requireSelf := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequireSelfPermission(r.p.Auth, res, act)
	}

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	userH := handler.NewUserHandler(r.p.UserSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	treatmentH := handler.NewTreatmentHandler(r.p.TreatmentSvc)
	labH := handler.NewLaboratoryHandler(r.p.LabSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired)
	r.registerUserRoutes(api, userH, authRequired, requirePerm, requireSelf)
	r.registerPatientRoutes(api, patientH, authRequired, requirePerm, requireSelf)
	r.registerTreatmentRoutes(api, treatmentH, authRequired, requirePerm, requireSelf)
	r.registerLaboratoryRoutes(api, labH, authRequired, requirePerm, requireSelf)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}

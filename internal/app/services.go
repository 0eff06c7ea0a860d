package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/fertitrack/fertitrack_backend/config"
	"github.com/fertitrack/fertitrack_backend/internal/repo"
	"github.com/fertitrack/fertitrack_backend/internal/service/auth"
	"github.com/fertitrack/fertitrack_backend/internal/service/laboratory"
	"github.com/fertitrack/fertitrack_backend/internal/service/patient"
	"github.com/fertitrack/fertitrack_backend/internal/service/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/service/user"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	"github.com/fertitrack/fertitrack_backend/pkg/email"
	pasetotoken "github.com/fertitrack/fertitrack_backend/pkg/paseto"
	s3pkg "github.com/fertitrack/fertitrack_backend/pkg/s3"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAuthService,
		ProvideUserService,
		ProvidePatientService,
		ProvideTreatmentService,
		ProvideLaboratoryService,
		ProvidePasetoManager,
	),
)

func ProvideAuthService(
	db *repo.Client,
	paseto *pasetotoken.Manager,
	rdb *redis.Client,
	authz authorize.IAuthorization,
	mailer *email.Client,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, paseto, rdb, authz, mailer, slog.Default(), cfg)
}

func ProvideUserService(db *repo.Client, authz authorize.IAuthorization, mailer *email.Client, cfg *config.Config) user.Service {
	return user.New(db, authz, mailer, slog.Default(), cfg.Server.Domain)
}

func ProvidePatientService(db *repo.Client) patient.Service {
	return patient.New(db)
}

func ProvideTreatmentService(db *repo.Client, files *s3pkg.Client) treatment.Service {
	return treatment.New(db, files)
}

func ProvideLaboratoryService(db *repo.Client) laboratory.Service {
	return laboratory.New(db)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}

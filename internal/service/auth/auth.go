package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fertitrack/fertitrack_backend/config"
	"github.com/fertitrack/fertitrack_backend/internal/repo"
	entuser "github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	"github.com/fertitrack/fertitrack_backend/pkg/email"
	pasetotoken "github.com/fertitrack/fertitrack_backend/pkg/paseto"
	"github.com/fertitrack/fertitrack_backend/pkg/reqctx"
	"github.com/fertitrack/fertitrack_backend/pkg/util/password"
)

const sessionKeyPrefix = "session:"

const defaultMaxFailedLogins = 5

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

// RegisterRequest is patient self-registration. Staff accounts are
// provisioned by an admin, never through this path.
type RegisterRequest struct {
	Username      string
	Email         string
	Password      string
	FirstName     string
	LastName      string
	DNI           *string
	Phone         *string
	BiologicalSex *string // M | F
	DateOfBirth   *time.Time
}

type LoginRequest struct {
	Username string // username or email
	Password string
}

type TokenPair struct {
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	AccessExpiresIn  int64  `json:"access_expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in"`
}

type LoginResult struct {
	Tokens TokenPair  `json:"tokens"`
	User   *repo.User `json:"user"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*repo.User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, actor reqctx.Actor, sessionID *uuid.UUID) error
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authService struct {
	db     *repo.Client
	tokens *pasetotoken.Manager
	rdb    *redis.Client
	auth   authorize.IAuthorization
	mailer *email.Client
	logger *slog.Logger

	maxFailedLogins int
	refreshTTL      time.Duration
	accessTTL       time.Duration
	appBaseURL      string
}

func New(
	db *repo.Client,
	tokens *pasetotoken.Manager,
	rdb *redis.Client,
	auth authorize.IAuthorization,
	mailer *email.Client,
	logger *slog.Logger,
	cfg *config.Config,
) Service {
	maxFailed := cfg.Authentication.MaxFailedLogins
	if maxFailed <= 0 {
		maxFailed = defaultMaxFailedLogins
	}
	accessTTL := time.Duration(cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	refreshTTL := time.Duration(cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	return &authService{
		db:              db,
		tokens:          tokens,
		rdb:             rdb,
		auth:            auth,
		mailer:          mailer,
		logger:          logger,
		maxFailedLogins: maxFailed,
		refreshTTL:      refreshTTL,
		accessTTL:       accessTTL,
		appBaseURL:      cfg.Server.Domain,
	}
}

// ---------------------------------------------------------------------------
// Registration
// ---------------------------------------------------------------------------

func (s *authService) Register(ctx context.Context, req RegisterRequest) (u *repo.User, err error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	c := tx.User.Create().
		SetUsername(req.Username).
		SetEmail(req.Email).
		SetPasswordHash(hash).
		SetRole(entuser.RolePATIENT).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)

	if req.DNI != nil {
		c = c.SetNillableDni(req.DNI)
	}
	if req.Phone != nil {
		c = c.SetNillablePhone(req.Phone)
	}
	if req.BiologicalSex != nil {
		sex := entuser.BiologicalSex(*req.BiologicalSex)
		c = c.SetNillableBiologicalSex(&sex)
	}
	if req.DateOfBirth != nil {
		c = c.SetNillableDateOfBirth(req.DateOfBirth)
	}

	u, err = c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, constraintToSentinel(err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Every patient gets a patient profile row alongside the account
	if _, err = tx.Patient.Create().SetUserID(u.ID).Save(ctx); err != nil {
		return nil, fmt.Errorf("create patient profile: %w", err)
	}

	if err = authorize.AssignRolesForUser(ctx, s.auth, u.ID.String(), string(entuser.RolePATIENT)); err != nil {
		return nil, fmt.Errorf("assign roles: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	msg := email.BuildPatientWelcomeEmail(email.PatientWelcomeData{
		FirstName: req.FirstName,
		Email:     req.Email,
		BaseURL:   s.appBaseURL,
	})
	if mailErr := s.mailer.Send(ctx, msg); mailErr != nil {
		s.logger.Warn("welcome email failed",
			slog.String("user_id", u.ID.String()),
			slog.Any("error", mailErr),
		)
	}

	s.logger.Info("patient registered", slog.String("user_id", u.ID.String()))
	return u, nil
}

func constraintToSentinel(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "username"):
		return ErrUsernameTaken
	case strings.Contains(msg, "email"):
		return ErrEmailTaken
	case strings.Contains(msg, "dni"):
		return ErrDniTaken
	default:
		return fmt.Errorf("create user: %w", err)
	}
}

// ---------------------------------------------------------------------------
// Login / logout / refresh
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	u, err := s.db.User.Query().
		Where(
			entuser.DeletedAtIsNil(),
			entuser.Or(
				entuser.Username(req.Username),
				entuser.Email(req.Username),
			),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			// Burn a hash anyway so the timing does not reveal
			// whether the account exists.
			_ = password.Match("", req.Password)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if !u.IsActive {
		return nil, ErrAccountDisabled
	}
	if u.FailedLoginAttempts >= s.maxFailedLogins {
		return nil, ErrAccountLocked
	}
	if u.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	if verifyErr := password.Verify(*u.PasswordHash, req.Password); verifyErr != nil {
		if _, incErr := s.db.User.UpdateOneID(u.ID).
			AddFailedLoginAttempts(1).
			Save(ctx); incErr != nil {
			s.logger.Error("failed login counter update failed",
				slog.String("user_id", u.ID.String()),
				slog.Any("error", incErr),
			)
		}
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	u, err = s.db.User.UpdateOneID(u.ID).
		SetFailedLoginAttempts(0).
		SetLastLoginAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update login audit fields: %w", err)
	}

	sessionID := uuid.New()
	if err := s.rdb.Set(ctx, sessionKey(sessionID), u.ID.String(), s.refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	pair, err := s.issuePair(u, sessionID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in",
		slog.String("user_id", u.ID.String()),
		slog.String("role", string(u.Role)),
	)
	return &LoginResult{Tokens: *pair, User: u}, nil
}

func (s *authService) Logout(ctx context.Context, actor reqctx.Actor, sessionID *uuid.UUID) error {
	if sessionID == nil {
		return nil
	}
	if err := s.rdb.Del(ctx, sessionKey(*sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.logger.Info("user logged out", slog.String("user_id", actor.UserID.String()))
	return nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrNotRefreshToken
	}
	if claims.SessionID == nil {
		return nil, ErrSessionNotFound
	}

	stored, err := s.rdb.Get(ctx, sessionKey(*claims.SessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if stored != claims.UserID.String() {
		return nil, ErrSessionNotFound
	}

	u, err := s.db.User.Query().
		Where(entuser.ID(claims.UserID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if !u.IsActive {
		return nil, ErrAccountDisabled
	}

	// Sliding session: extend the redis TTL on every refresh
	if err := s.rdb.Expire(ctx, sessionKey(*claims.SessionID), s.refreshTTL).Err(); err != nil {
		return nil, fmt.Errorf("extend session: %w", err)
	}

	return s.issuePair(u, *claims.SessionID)
}

func (s *authService) issuePair(u *repo.User, sessionID uuid.UUID) (*TokenPair, error) {
	access, err := s.tokens.IssueAccess(u.ID, string(u.Role), &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.tokens.IssueRefresh(u.ID, string(u.Role), &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresIn:  int64(s.accessTTL.Seconds()),
		RefreshExpiresIn: int64(s.refreshTTL.Seconds()),
	}, nil
}

func sessionKey(id uuid.UUID) string {
	return sessionKeyPrefix + id.String()
}

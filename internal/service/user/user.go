package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/fertitrack/fertitrack_backend/internal/repo"
	entuser "github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	"github.com/fertitrack/fertitrack_backend/pkg/email"
	"github.com/fertitrack/fertitrack_backend/pkg/reqctx"
	"github.com/fertitrack/fertitrack_backend/pkg/util/password"
)

// defaultPhoneRegion is used when a phone number comes in without a
// country prefix.
const defaultPhoneRegion = "AR"

const tempPasswordLength = 12

// PaginatedResult wraps list responses with pagination metadata.
type PaginatedResult[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"total_count"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateStaffRequest struct {
	Username  string
	Email     string
	Role      string // MEDICAL_DIRECTOR | DOCTOR | LAB_OPERATOR | ADMIN
	FirstName string
	LastName  string
	Phone     *string
	DNI       *string
}

type ListUsersRequest struct {
	Page     int
	PageSize int
	Role     *string
	Active   *bool
}

type UpdateProfileRequest struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	DateOfBirth *time.Time
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	// CreateStaff provisions a staff account with a generated temporary
	// password and mails the credentials to the new member.
	CreateStaff(ctx context.Context, actor reqctx.Actor, req CreateStaffRequest) (*repo.User, error)
	ListUsers(ctx context.Context, actor reqctx.Actor, req ListUsersRequest) (*PaginatedResult[*repo.User], error)
	GetUser(ctx context.Context, actor reqctx.Actor, userID uuid.UUID) (*repo.User, error)
	SetActive(ctx context.Context, actor reqctx.Actor, userID uuid.UUID, active bool) (*repo.User, error)

	GetProfile(ctx context.Context, actor reqctx.Actor) (*repo.User, error)
	UpdateProfile(ctx context.Context, actor reqctx.Actor, req UpdateProfileRequest) (*repo.User, error)
}

type userService struct {
	db     *repo.Client
	auth   authorize.IAuthorization
	mailer *email.Client
	logger *slog.Logger

	appBaseURL string
}

func New(db *repo.Client, auth authorize.IAuthorization, mailer *email.Client, logger *slog.Logger, appBaseURL string) Service {
	return &userService{
		db:         db,
		auth:       auth,
		mailer:     mailer,
		logger:     logger,
		appBaseURL: appBaseURL,
	}
}

var staffRoles = map[string]entuser.Role{
	"ADMIN":            entuser.RoleADMIN,
	"MEDICAL_DIRECTOR": entuser.RoleMEDICAL_DIRECTOR,
	"DOCTOR":           entuser.RoleDOCTOR,
	"LAB_OPERATOR":     entuser.RoleLAB_OPERATOR,
}

// NormalizePhone validates a raw phone number and returns it in E.164.
func NormalizePhone(raw string) (string, error) {
	num, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func (s *userService) CreateStaff(ctx context.Context, actor reqctx.Actor, req CreateStaffRequest) (u *repo.User, err error) {
	role, ok := staffRoles[req.Role]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}

	var phone *string
	if req.Phone != nil && *req.Phone != "" {
		normalized, err := NormalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		phone = &normalized
	}

	tempPassword := password.Generate(tempPasswordLength)
	hash, err := password.Hash(tempPassword)
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
		SetRole(role).
		SetFirstName(req.FirstName).
		SetLastName(req.LastName)

	if phone != nil {
		c = c.SetNillablePhone(phone)
	}
	if req.DNI != nil {
		c = c.SetNillableDni(req.DNI)
	}

	u, err = c.Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, constraintToSentinel(err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if err = authorize.AssignRolesForUser(ctx, s.auth, u.ID.String(), string(role)); err != nil {
		return nil, fmt.Errorf("assign roles: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	// Credentials mail failure does not roll back the account; the
	// admin can reset the password instead.
	msg := email.BuildStaffCredentialsEmail(email.StaffCredentialsData{
		FirstName:    req.FirstName,
		Email:        req.Email,
		Username:     req.Username,
		TempPassword: tempPassword,
		Role:         req.Role,
		BaseURL:      s.appBaseURL,
	})
	if mailErr := s.mailer.Send(ctx, msg); mailErr != nil {
		s.logger.Warn("staff credentials email failed",
			slog.String("user_id", u.ID.String()),
			slog.Any("error", mailErr),
		)
	}

	s.logger.Info("staff account created",
		slog.String("user_id", u.ID.String()),
		slog.String("role", req.Role),
		slog.String("created_by", actor.UserID.String()),
	)
	return u, nil
}

// constraintToSentinel maps unique violations to the field they hit.
// The driver does not tell us which constraint fired in a portable way,
// so the message text is inspected.
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

func (s *userService) ListUsers(ctx context.Context, actor reqctx.Actor, req ListUsersRequest) (*PaginatedResult[*repo.User], error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	q := s.db.User.Query().Where(entuser.DeletedAtIsNil())

	if req.Role != nil {
		q = q.Where(entuser.RoleEQ(entuser.Role(*req.Role)))
	}
	if req.Active != nil {
		q = q.Where(entuser.IsActive(*req.Active))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}

	items, err := q.
		Order(entuser.ByCreatedAt(sql.OrderDesc())).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return &PaginatedResult[*repo.User]{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, actor reqctx.Actor, userID uuid.UUID) (*repo.User, error) {
	u, err := s.db.User.Query().
		Where(entuser.ID(userID), entuser.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *userService) SetActive(ctx context.Context, actor reqctx.Actor, userID uuid.UUID, active bool) (*repo.User, error) {
	if !active && userID == actor.UserID {
		return nil, ErrSelfDisable
	}

	u, err := s.db.User.UpdateOneID(userID).
		SetIsActive(active).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("set user active: %w", err)
	}

	s.logger.Info("user active flag changed",
		slog.String("user_id", userID.String()),
		slog.Bool("active", active),
		slog.String("changed_by", actor.UserID.String()),
	)
	return u, nil
}

func (s *userService) GetProfile(ctx context.Context, actor reqctx.Actor) (*repo.User, error) {
	return s.GetUser(ctx, actor, actor.UserID)
}

func (s *userService) UpdateProfile(ctx context.Context, actor reqctx.Actor, req UpdateProfileRequest) (*repo.User, error) {
	var phone *string
	if req.Phone != nil && *req.Phone != "" {
		normalized, err := NormalizePhone(*req.Phone)
		if err != nil {
			return nil, err
		}
		phone = &normalized
	}

	u, err := s.db.User.UpdateOneID(actor.UserID).
		SetNillableFirstName(req.FirstName).
		SetNillableLastName(req.LastName).
		SetNillablePhone(phone).
		SetNillableDateOfBirth(req.DateOfBirth).
		Save(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return u, nil
}

package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/fertitrack/fertitrack_backend/pkg/authorize"
	pasetotoken "github.com/fertitrack/fertitrack_backend/pkg/paseto"
)

// RequirePermission checks the caller's permission in the clinic-wide
// sys domain. Staff roles are granted there; patients are not, so any
// patient hitting a staff route gets a 403 from the enforcer.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

// RequireSelfPermission checks the caller's permission in their own
// private domain. This backs the /me routes where patients act on
// their own records through the role:user:self grants.
func RequireSelfPermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		domain := authorize.UserDomain(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

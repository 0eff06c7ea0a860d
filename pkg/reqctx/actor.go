package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// Actor identifies who is performing an operation. Services receive it
// explicitly instead of digging identity out of ambient request state,
// so the same service code works from HTTP handlers, CLI commands and
// tests alike.
type Actor struct {
	UserID uuid.UUID
	Role   string
}

// System returns an actor for internal operations (seeding, migrations,
// scheduled jobs) that are not tied to a logged-in user.
func System() Actor {
	return Actor{UserID: uuid.Nil, Role: "system"}
}

// IsSystem reports whether the actor is the internal system actor.
func (a Actor) IsSystem() bool {
	return a.Role == "system"
}

// ActorFromClaims builds an Actor from verified token claims.
func ActorFromClaims(claims AuthClaims) Actor {
	return Actor{
		UserID: claims.GetUserID(),
		Role:   claims.GetRole(),
	}
}

// ActorFromContext builds an Actor from claims stored in the context.
// Returns a zero Actor and false if the request is not authenticated.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return Actor{}, false
	}
	return ActorFromClaims(claims), true
}

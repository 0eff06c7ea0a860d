package authorize

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/fertitrack/fertitrack_backend/pkg/reqctx"
)

// mockClaims implements reqctx.AuthClaims for testing
type mockClaims struct {
	userID uuid.UUID
	role   string
}

func (m *mockClaims) GetUserID() uuid.UUID     { return m.userID }
func (m *mockClaims) GetRole() string          { return m.role }
func (m *mockClaims) GetSessionID() *uuid.UUID { return nil }
func (m *mockClaims) GetTokenType() string     { return "access" }
func (m *mockClaims) IsExpired() bool          { return false }

func TestSubjectFromContext(t *testing.T) {
	validUUID := uuid.New()

	tests := []struct {
		name        string
		setupCtx    func() context.Context
		wantSubject GroupSubject
		wantErr     bool
	}{
		{
			name: "valid claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: validUUID})
			},
			wantSubject: GroupSubject(validUUID.String()),
			wantErr:     false,
		},
		{
			name: "no claims in context",
			setupCtx: func() context.Context {
				return context.Background()
			},
			wantSubject: "",
			wantErr:     true,
		},
		{
			name: "nil uuid in claims",
			setupCtx: func() context.Context {
				return reqctx.WithClaims(context.Background(), &mockClaims{userID: uuid.Nil})
			},
			wantSubject: "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := tt.setupCtx()
			subject, err := SubjectFromContext(ctx)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if subject != tt.wantSubject {
					t.Errorf("SubjectFromContext() = %q, want %q", subject, tt.wantSubject)
				}
			}
		})
	}
}

func TestMustSubjectFromContext(t *testing.T) {
	t.Run("panics when no claims", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Expected panic but didn't get one")
			}
		}()
		MustSubjectFromContext(context.Background())
	})

	t.Run("returns subject when claims exist", func(t *testing.T) {
		validUUID := uuid.New()
		ctx := reqctx.WithClaims(context.Background(), &mockClaims{userID: validUUID})

		subject := MustSubjectFromContext(ctx)
		expected := GroupSubject(validUUID.String())
		if subject != expected {
			t.Errorf("MustSubjectFromContext() = %q, want %q", subject, expected)
		}
	})
}

func TestSubjectFromActor(t *testing.T) {
	validUUID := uuid.New()
	actor := reqctx.Actor{UserID: validUUID, Role: UserRoleDoctor}

	subject := SubjectFromActor(actor)
	expected := GroupSubject(validUUID.String())
	if subject != expected {
		t.Errorf("SubjectFromActor() = %q, want %q", subject, expected)
	}
}

func TestDomainForOwner(t *testing.T) {
	ownerID := "550e8400-e29b-41d4-a716-446655440000"

	tests := []struct {
		name       string
		ownerID    *string
		wantDomain Domain
	}{
		{
			name:       "user domain when owner provided",
			ownerID:    &ownerID,
			wantDomain: Domain("user:550e8400-e29b-41d4-a716-446655440000"),
		},
		{
			name:       "sys domain when nil",
			ownerID:    nil,
			wantDomain: DomainSys,
		},
		{
			name:       "sys domain when empty string",
			ownerID:    strPtr(""),
			wantDomain: DomainSys,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DomainForOwner(tt.ownerID)
			if result != tt.wantDomain {
				t.Errorf("DomainForOwner() = %q, want %q", result, tt.wantDomain)
			}
		})
	}
}

func TestUserSelfDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserSelfDomain(userID)
	if result != expected {
		t.Errorf("UserSelfDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func strPtr(s string) *string {
	return &s
}

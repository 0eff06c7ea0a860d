package pasetotoken

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()

	keys := NewLocalKeys()
	m, err := New(Config{
		Mode:       ModeLocal,
		Issuer:     "fertitrack-test",
		Audience:   "fertitrack-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}, keys)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}
	return m
}

func TestNewManagerValidation(t *testing.T) {
	keys := NewLocalKeys()

	t.Run("rejects mode mismatch", func(t *testing.T) {
		_, err := New(Config{Mode: ModePublic, Issuer: "i", Audience: "a"}, keys)
		if err == nil {
			t.Error("expected error for mode mismatch")
		}
	})

	t.Run("rejects empty issuer", func(t *testing.T) {
		_, err := New(Config{Mode: ModeLocal, Audience: "a"}, keys)
		if err == nil {
			t.Error("expected error for empty issuer")
		}
	})

	t.Run("rejects empty audience", func(t *testing.T) {
		_, err := New(Config{Mode: ModeLocal, Issuer: "i"}, keys)
		if err == nil {
			t.Error("expected error for empty audience")
		}
	})
}

func TestIssueAndVerifyAccess(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.New()
	sessionID := uuid.New()

	token, err := m.IssueAccess(userID, "DOCTOR", &sessionID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if !strings.HasPrefix(token, "v4.local.") {
		t.Errorf("expected v4.local token, got %q", token[:10])
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}

	if claims.Type != TokenTypeAccess {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Role != "DOCTOR" {
		t.Errorf("Role = %q, want DOCTOR", claims.Role)
	}
	if claims.SessionID == nil || *claims.SessionID != sessionID {
		t.Errorf("SessionID = %v, want %s", claims.SessionID, sessionID)
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID.String())
	}
}

func TestIssueRefreshType(t *testing.T) {
	m := newTestManager(t)

	userID := uuid.New()
	sessionID := uuid.New()

	token, err := m.IssueRefresh(userID, "PATIENT", &sessionID)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	issuer := newTestManager(t)
	verifier := newTestManager(t) // different symmetric key

	token, err := issuer.IssueAccess(uuid.New(), "ADMIN", nil)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("expected error verifying token issued under another key")
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	m := newTestManager(t)

	token, err := m.IssueAccess(uuid.New(), "ADMIN", nil)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if _, err := m.Verify(tampered); err == nil {
		t.Error("expected error for tampered token")
	}
}

func TestTTLFallback(t *testing.T) {
	keys := NewLocalKeys()
	m, err := New(Config{
		Mode:     ModeLocal,
		Issuer:   "fertitrack-test",
		Audience: "fertitrack-api",
		// zero TTLs fall back to defaults
	}, keys)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	token, err := m.IssueAccess(uuid.New(), "ADMIN", nil)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if !claims.ExpiresAt.After(time.Now().Add(10 * time.Minute)) {
		t.Error("expected fallback TTL to produce a future expiry")
	}
}

func TestLoadKeys(t *testing.T) {
	t.Run("local requires symmetric hex", func(t *testing.T) {
		if _, err := LoadKeys(KeyStrings{Mode: ModeLocal}); err == nil {
			t.Error("expected error for missing symmetric key")
		}
	})

	t.Run("local round-trips exported key", func(t *testing.T) {
		k := NewLocalKeys()
		hex := k.Symmetric.ExportHex()
		loaded, err := LoadKeys(KeyStrings{Mode: ModeLocal, SymmetricHex: hex})
		if err != nil {
			t.Fatalf("failed to load keys: %v", err)
		}
		if loaded.Symmetric == nil {
			t.Fatal("expected symmetric key")
		}
	})

	t.Run("public derives public from secret", func(t *testing.T) {
		k := NewPublicKeys()
		hex := k.Secret.ExportHex()
		loaded, err := LoadKeys(KeyStrings{Mode: ModePublic, SecretHex: hex})
		if err != nil {
			t.Fatalf("failed to load keys: %v", err)
		}
		if loaded.Public == nil {
			t.Error("expected derived public key")
		}
	})

	t.Run("public requires at least one key", func(t *testing.T) {
		if _, err := LoadKeys(KeyStrings{Mode: ModePublic}); err == nil {
			t.Error("expected error for missing keys")
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		if _, err := LoadKeys(KeyStrings{Mode: Mode("weird")}); err == nil {
			t.Error("expected error for unknown mode")
		}
	})
}

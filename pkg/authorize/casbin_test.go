package authorize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	casbin "github.com/casbin/casbin/v2"
	fileadapter "github.com/casbin/casbin/v2/persist/file-adapter"
)

// createTestEnforcer creates an in-memory Casbin enforcer for testing
func createTestEnforcer(t *testing.T) *casbin.DistributedEnforcer {
	t.Helper()

	// Create temp directory for test files
	tmpDir := t.TempDir()

	// Write model config
	modelPath := filepath.Join(tmpDir, "model.conf")
	modelContent := `[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, dom, obj, act, eft

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow)) && !some(where (p.eft == deny))

[matchers]
m = g(r.sub, p.sub, r.dom) && (r.dom == p.dom || p.dom == "*") && (r.obj == p.obj || p.obj == "*") && (r.act == p.act || p.act == "*" || (p.act == "manage" && r.act != "transition" && r.act != "grant" && r.act != "revoke"))
`
	if err := os.WriteFile(modelPath, []byte(modelContent), 0644); err != nil {
		t.Fatalf("failed to write model file: %v", err)
	}

	// Write empty policy file
	policyPath := filepath.Join(tmpDir, "policy.csv")
	if err := os.WriteFile(policyPath, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write policy file: %v", err)
	}

	// Create adapter with file
	a := fileadapter.NewAdapter(policyPath)

	e, err := casbin.NewDistributedEnforcer(modelPath, a)
	if err != nil {
		t.Fatalf("failed to create enforcer: %v", err)
	}

	e.EnableAutoSave(false)
	e.EnableEnforce(true)

	return e
}

func TestNewAuthorization(t *testing.T) {
	t.Run("returns error for nil enforcer", func(t *testing.T) {
		_, err := NewAuthorization(nil)
		if err == nil {
			t.Error("Expected error for nil enforcer")
		}
	})

	t.Run("succeeds with valid enforcer", func(t *testing.T) {
		e := createTestEnforcer(t)
		auth, err := NewAuthorization(e)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
		if auth == nil {
			t.Error("Expected non-nil authorization")
		}
	})
}

func TestEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	// Add test policies
	userID := "lab-operator-123"

	// Add role to user
	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleSysLabOperator, DomainSys)
	if err != nil {
		t.Fatalf("Failed to add role: %v", err)
	}

	// Add permission to role
	_, err = auth.AddPermission(ctx, RoleSysLabOperator, DomainSys, ResourceOocyte, ActionManage, EffectAllow)
	if err != nil {
		t.Fatalf("Failed to add permission: %v", err)
	}

	tests := []struct {
		name     string
		subject  GroupSubject
		domain   Domain
		resource Resource
		action   Action
		want     bool
		wantErr  bool
	}{
		{
			name:     "allowed when permission exists",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceOocyte,
			action:   ActionRead,
			want:     true,
			wantErr:  false,
		},
		{
			name:     "manage does not imply transition",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceOocyte,
			action:   ActionTransition,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "denied when no permission",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceUser,
			action:   ActionRead,
			want:     false,
			wantErr:  false,
		},
		{
			name:     "error for empty subject",
			subject:  "",
			domain:   DomainSys,
			resource: ResourceOocyte,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for invalid domain",
			subject:  GroupSubject(userID),
			domain:   Domain("invalid"),
			resource: ResourceOocyte,
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown resource",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: Resource("unknown"),
			action:   ActionRead,
			want:     false,
			wantErr:  true,
		},
		{
			name:     "error for unknown action",
			subject:  GroupSubject(userID),
			domain:   DomainSys,
			resource: ResourceOocyte,
			action:   Action("unknown"),
			want:     false,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, tt.subject, tt.domain, tt.resource, tt.action)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error but got nil")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if got != tt.want {
					t.Errorf("Enforce() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMustEnforce(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	// Add test policies
	userID := "doctor-456"

	// Add role and permission
	auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleSysDoctor, DomainSys)
	auth.AddPermission(ctx, RoleSysDoctor, DomainSys, ResourceTreatment, ActionManage, EffectAllow)

	t.Run("returns nil when allowed", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainSys, ResourceTreatment, ActionCreate)
		if err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("returns ErrForbidden when denied", func(t *testing.T) {
		err := auth.MustEnforce(ctx, GroupSubject(userID), DomainSys, ResourceAudit, ActionDelete)
		if err != ErrForbidden {
			t.Errorf("Expected ErrForbidden, got %v", err)
		}
	})
}

func TestAdminBypass(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	adminID := "admin-id"

	_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(adminID), RoleSysAdmin, DomainSys)
	if err != nil {
		t.Fatalf("Failed to add admin role: %v", err)
	}

	// Admins are allowed everything without explicit policies
	allowed, err := auth.Enforce(ctx, GroupSubject(adminID), DomainSys, ResourceUser, ActionDelete)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if !allowed {
		t.Error("Expected admin to be allowed")
	}
}

func TestRoleManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	userID := "550e8400-e29b-41d4-a716-446655440000"
	domain := UserDomain(userID)

	t.Run("add and get roles", func(t *testing.T) {
		// Add role
		added, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), RoleUserSelf, domain)
		if err != nil {
			t.Errorf("Failed to add role: %v", err)
		}
		if !added {
			t.Error("Expected role to be added")
		}

		// Get roles
		roles, err := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), domain)
		if err != nil {
			t.Errorf("Failed to get roles: %v", err)
		}
		if len(roles) != 1 {
			t.Errorf("Expected 1 role, got %d", len(roles))
		}
		if roles[0] != RoleUserSelf {
			t.Errorf("Expected role %q, got %q", RoleUserSelf, roles[0])
		}
	})

	t.Run("remove role", func(t *testing.T) {
		// Remove role
		removed, err := auth.RemoveRoleForUserInDomain(ctx, GroupSubject(userID), RoleUserSelf, domain)
		if err != nil {
			t.Errorf("Failed to remove role: %v", err)
		}
		if !removed {
			t.Error("Expected role to be removed")
		}

		// Verify removal
		roles, _ := auth.GetRolesForUserInDomain(ctx, GroupSubject(userID), domain)
		if len(roles) != 0 {
			t.Errorf("Expected 0 roles after removal, got %d", len(roles))
		}
	})

	t.Run("error for invalid role", func(t *testing.T) {
		_, err := auth.AddRoleForUserInDomain(ctx, GroupSubject(userID), Role("invalid-role"), domain)
		if err == nil {
			t.Error("Expected error for invalid role")
		}
	})
}

func TestPermissionManagement(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	t.Run("add and remove permission", func(t *testing.T) {
		// Add permission
		added, err := auth.AddPermission(ctx, RoleSysDoctor, DomainSys, ResourceStudyResult, ActionRead, EffectAllow)
		if err != nil {
			t.Errorf("Failed to add permission: %v", err)
		}
		if !added {
			t.Error("Expected permission to be added")
		}

		// Remove permission
		removed, err := auth.RemovePermission(ctx, RoleSysDoctor, DomainSys, ResourceStudyResult, ActionRead, EffectAllow)
		if err != nil {
			t.Errorf("Failed to remove permission: %v", err)
		}
		if !removed {
			t.Error("Expected permission to be removed")
		}
	})

	t.Run("error for invalid effect", func(t *testing.T) {
		_, err := auth.AddPermission(ctx, RoleSysAdmin, DomainSys, ResourceUser, ActionRead, PolicyEffect("invalid"))
		if err == nil {
			t.Error("Expected error for invalid effect")
		}
	})
}

func TestSeedDefaultPolicies(t *testing.T) {
	e := createTestEnforcer(t)
	auth, _ := NewAuthorization(e)
	ctx := context.Background()

	if err := SeedDefaultPolicies(ctx, auth); err != nil {
		t.Fatalf("Failed to seed policies: %v", err)
	}

	doctorID := "11111111-1111-1111-1111-111111111111"
	labOpID := "22222222-2222-2222-2222-222222222222"
	directorID := "33333333-3333-3333-3333-333333333333"
	patientID := "44444444-4444-4444-4444-444444444444"

	if err := AssignRolesForUser(ctx, auth, doctorID, UserRoleDoctor); err != nil {
		t.Fatalf("Failed to assign doctor roles: %v", err)
	}
	if err := AssignRolesForUser(ctx, auth, labOpID, UserRoleLabOperator); err != nil {
		t.Fatalf("Failed to assign lab operator roles: %v", err)
	}
	if err := AssignRolesForUser(ctx, auth, directorID, UserRoleMedicalDirector); err != nil {
		t.Fatalf("Failed to assign director roles: %v", err)
	}
	if err := AssignRolesForUser(ctx, auth, patientID, UserRolePatient); err != nil {
		t.Fatalf("Failed to assign patient roles: %v", err)
	}

	tests := []struct {
		name     string
		subject  string
		domain   Domain
		resource Resource
		action   Action
		want     bool
	}{
		{"doctor creates treatments", doctorID, DomainSys, ResourceTreatment, ActionCreate, true},
		{"doctor reads oocytes", doctorID, DomainSys, ResourceOocyte, ActionRead, true},
		{"doctor cannot transition oocytes", doctorID, DomainSys, ResourceOocyte, ActionTransition, false},
		{"doctor cannot manage users", doctorID, DomainSys, ResourceUser, ActionCreate, false},
		{"lab operator transitions oocytes", labOpID, DomainSys, ResourceOocyte, ActionTransition, true},
		{"lab operator transitions embryos", labOpID, DomainSys, ResourceEmbryo, ActionTransition, true},
		{"lab operator reads treatments", labOpID, DomainSys, ResourceTreatment, ActionRead, true},
		{"lab operator cannot create treatments", labOpID, DomainSys, ResourceTreatment, ActionCreate, false},
		{"director transitions embryos", directorID, DomainSys, ResourceEmbryo, ActionTransition, true},
		{"director creates treatments", directorID, DomainSys, ResourceTreatment, ActionCreate, true},
		{"director lists users", directorID, DomainSys, ResourceUser, ActionList, true},
		{"patient reads own treatments", patientID, UserDomain(patientID), ResourceTreatment, ActionRead, true},
		{"patient reads own medical history", patientID, UserDomain(patientID), ResourceMedicalHistory, ActionRead, true},
		{"patient cannot update own medical history", patientID, UserDomain(patientID), ResourceMedicalHistory, ActionUpdate, false},
		{"patient has no sys-domain roles", patientID, DomainSys, ResourceTreatment, ActionRead, false},
		{"patient cannot act in another user's domain", patientID, UserDomain(doctorID), ResourceTreatment, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := auth.Enforce(ctx, GroupSubject(tt.subject), tt.domain, tt.resource, tt.action)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Enforce() = %v, want %v", got, tt.want)
			}
		})
	}
}

package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the clinic.
// Medical directors hold both the clinical and the laboratory capability
// sets, which is why their block is the union of the doctor and lab
// operator blocks.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// Admin: full control (also covered by the enforcement bypass)
	adminPolicies := []PermissionPolicy{
		{RoleSysAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Clinical capability set
	doctorPolicies := []PermissionPolicy{
		{RoleSysDoctor, DomainSys, ResourcePatient, ActionCreate, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourcePatient, ActionRead, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourcePatient, ActionUpdate, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourcePatient, ActionList, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceMedicalHistory, ActionManage, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourcePartner, ActionManage, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceTreatment, ActionManage, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceMonitoringDay, ActionManage, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceStudyResult, ActionManage, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceMedicalOrder, ActionManage, EffectAllow},

		// Doctors can see lab progress but not drive it
		{RoleSysDoctor, DomainSys, ResourcePuncture, ActionRead, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourcePuncture, ActionList, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceOocyte, ActionRead, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceOocyte, ActionList, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceEmbryo, ActionRead, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceEmbryo, ActionList, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceEmbryoTransfer, ActionRead, EffectAllow},
		{RoleSysDoctor, DomainSys, ResourceEmbryoTransfer, ActionList, EffectAllow},
	}

	// Laboratory capability set
	labPolicies := []PermissionPolicy{
		{RoleSysLabOperator, DomainSys, ResourcePuncture, ActionManage, EffectAllow},
		{RoleSysLabOperator, DomainSys, ResourceOocyte, ActionManage, EffectAllow},
		{RoleSysLabOperator, DomainSys, ResourceOocyte, ActionTransition, EffectAllow},
		{RoleSysLabOperator, DomainSys, ResourceEmbryo, ActionManage, EffectAllow},
		{RoleSysLabOperator, DomainSys, ResourceEmbryo, ActionTransition, EffectAllow},
		{RoleSysLabOperator, DomainSys, ResourceEmbryoTransfer, ActionManage, EffectAllow},

		// Lab operators need record context for their work
		{RoleSysLabOperator, DomainSys, ResourcePatient, ActionRead, EffectAllow},
		{RoleSysLabOperator, DomainSys, ResourcePatient, ActionList, EffectAllow},
		{RoleSysLabOperator, DomainSys, ResourceTreatment, ActionRead, EffectAllow},
		{RoleSysLabOperator, DomainSys, ResourceTreatment, ActionList, EffectAllow},
	}

	// Medical director: clinical + laboratory + user oversight
	directorPolicies := make([]PermissionPolicy, 0, len(doctorPolicies)+len(labPolicies)+2)
	for _, p := range doctorPolicies {
		p.Subject = RoleSysMedicalDirector
		directorPolicies = append(directorPolicies, p)
	}
	for _, p := range labPolicies {
		p.Subject = RoleSysMedicalDirector
		directorPolicies = append(directorPolicies, p)
	}
	directorPolicies = append(directorPolicies,
		PermissionPolicy{RoleSysMedicalDirector, DomainSys, ResourceUser, ActionRead, EffectAllow},
		PermissionPolicy{RoleSysMedicalDirector, DomainSys, ResourceUser, ActionList, EffectAllow},
	)

	// User-level policies (domain: user:*). Patients act only through
	// their private domain and see only their own record.
	userPolicies := []PermissionPolicy{
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionUpdate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourcePatient, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceMedicalHistory, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourcePartner, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceTreatment, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceTreatment, ActionList, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceStudyResult, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceStudyResult, ActionList, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceMedicalOrder, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceMedicalOrder, ActionList, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceOocyte, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceOocyte, ActionList, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceEmbryo, ActionRead, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceEmbryo, ActionList, EffectAllow},
	}

	allPolicies := adminPolicies
	allPolicies = append(allPolicies, doctorPolicies...)
	allPolicies = append(allPolicies, labPolicies...)
	allPolicies = append(allPolicies, directorPolicies...)
	allPolicies = append(allPolicies, userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignSystemRole assigns a system-level role to a user.
// Valid roles: RoleSysAdmin, RoleSysMedicalDirector, RoleSysDoctor, RoleSysLabOperator
func AssignSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	switch role {
	case RoleSysAdmin, RoleSysMedicalDirector, RoleSysDoctor, RoleSysLabOperator:
	default:
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// RemoveSystemRole removes a system-level role from a user.
func RemoveSystemRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainSys)
	return err
}

// AssignRolesForUser wires up the casbin roles matching a user's DB role.
// Staff get a system role in the sys domain; everyone, patients included,
// gets user:self in their private domain.
func AssignRolesForUser(ctx context.Context, auth IAuthorization, userID string, dbRole string) error {
	if err := AssignUserSelfRole(ctx, auth, userID); err != nil {
		return err
	}
	if role, ok := UserRoleToRBACRole[dbRole]; ok {
		return AssignSystemRole(ctx, auth, userID, role)
	}
	return nil
}

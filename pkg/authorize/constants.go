package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage Action = "manage" // CRUD + list

	// Lifecycle actions
	ActionTransition Action = "transition" // state machine moves

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionTransition: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser        Resource = "user"
	ResourceAuthSession Resource = "auth_session"

	// Patient records
	ResourcePatient        Resource = "patient"
	ResourceMedicalHistory Resource = "medical_history"
	ResourcePartner        Resource = "partner"

	// Treatments
	ResourceTreatment     Resource = "treatment"
	ResourceMonitoringDay Resource = "monitoring_day"
	ResourceStudyResult   Resource = "study_result"
	ResourceMedicalOrder  Resource = "medical_order"

	// Laboratory
	ResourcePuncture       Resource = "puncture"
	ResourceOocyte         Resource = "oocyte"
	ResourceEmbryo         Resource = "embryo"
	ResourceEmbryoTransfer Resource = "embryo_transfer"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {},
	ResourcePatient: {}, ResourceMedicalHistory: {}, ResourcePartner: {},
	ResourceTreatment: {}, ResourceMonitoringDay: {}, ResourceStudyResult: {}, ResourceMedicalOrder: {},
	ResourcePuncture: {}, ResourceOocyte: {}, ResourceEmbryo: {}, ResourceEmbryoTransfer: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// System roles (domain = sys)
	RoleSysAdmin           Role = "role:sys:admin"
	RoleSysMedicalDirector Role = "role:sys:medical_director"
	RoleSysDoctor          Role = "role:sys:doctor"
	RoleSysLabOperator     Role = "role:sys:lab_operator"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RoleSysAdmin:           {},
	RoleSysMedicalDirector: {},
	RoleSysDoctor:          {},
	RoleSysLabOperator:     {},
	RoleUserSelf:           {},
}

// User role strings (stored in DB users.role column)
const (
	UserRoleAdmin           = "ADMIN"
	UserRoleMedicalDirector = "MEDICAL_DIRECTOR"
	UserRoleDoctor          = "DOCTOR"
	UserRoleLabOperator     = "LAB_OPERATOR"
	UserRolePatient         = "PATIENT"
)

// UserRoleToRBACRole maps DB role values to Casbin roles.
// Patients carry no system role: they only get role:user:self
// inside their own user domain.
var UserRoleToRBACRole = map[string]Role{
	UserRoleAdmin:           RoleSysAdmin,
	UserRoleMedicalDirector: RoleSysMedicalDirector,
	UserRoleDoctor:          RoleSysDoctor,
	UserRoleLabOperator:     RoleSysLabOperator,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixUser Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// UserDomain builds the private per-user domain string.
func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	if len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser) {
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	}
	return false
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}

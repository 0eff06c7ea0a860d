// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldFirstName holds the string denoting the first_name field in the database.
	FieldFirstName = "first_name"
	// FieldLastName holds the string denoting the last_name field in the database.
	FieldLastName = "last_name"
	// FieldPhone holds the string denoting the phone field in the database.
	FieldPhone = "phone"
	// FieldDni holds the string denoting the dni field in the database.
	FieldDni = "dni"
	// FieldBiologicalSex holds the string denoting the biological_sex field in the database.
	FieldBiologicalSex = "biological_sex"
	// FieldDateOfBirth holds the string denoting the date_of_birth field in the database.
	FieldDateOfBirth = "date_of_birth"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldLastLoginAt holds the string denoting the last_login_at field in the database.
	FieldLastLoginAt = "last_login_at"
	// FieldFailedLoginAttempts holds the string denoting the failed_login_attempts field in the database.
	FieldFailedLoginAttempts = "failed_login_attempts"
	// EdgePatientProfile holds the string denoting the patient_profile edge name in mutations.
	EdgePatientProfile = "patient_profile"
	// EdgeTreatmentsAsDoctor holds the string denoting the treatments_as_doctor edge name in mutations.
	EdgeTreatmentsAsDoctor = "treatments_as_doctor"
	// EdgePuncturesPerformed holds the string denoting the punctures_performed edge name in mutations.
	EdgePuncturesPerformed = "punctures_performed"
	// Table holds the table name of the user in the database.
	Table = "users"
	// PatientProfileTable is the table that holds the patient_profile relation/edge.
	PatientProfileTable = "patients"
	// PatientProfileInverseTable is the table name for the Patient entity.
	// It exists in this package in order to avoid circular dependency with the "patient" package.
	PatientProfileInverseTable = "patients"
	// PatientProfileColumn is the table column denoting the patient_profile relation/edge.
	PatientProfileColumn = "user_id"
	// TreatmentsAsDoctorTable is the table that holds the treatments_as_doctor relation/edge.
	TreatmentsAsDoctorTable = "treatments"
	// TreatmentsAsDoctorInverseTable is the table name for the Treatment entity.
	// It exists in this package in order to avoid circular dependency with the "treatment" package.
	TreatmentsAsDoctorInverseTable = "treatments"
	// TreatmentsAsDoctorColumn is the table column denoting the treatments_as_doctor relation/edge.
	TreatmentsAsDoctorColumn = "doctor_id"
	// PuncturesPerformedTable is the table that holds the punctures_performed relation/edge.
	PuncturesPerformedTable = "punctures"
	// PuncturesPerformedInverseTable is the table name for the Puncture entity.
	// It exists in this package in order to avoid circular dependency with the "puncture" package.
	PuncturesPerformedInverseTable = "punctures"
	// PuncturesPerformedColumn is the table column denoting the punctures_performed relation/edge.
	PuncturesPerformedColumn = "operator_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldDeletedAt,
	FieldUsername,
	FieldEmail,
	FieldPasswordHash,
	FieldRole,
	FieldFirstName,
	FieldLastName,
	FieldPhone,
	FieldDni,
	FieldBiologicalSex,
	FieldDateOfBirth,
	FieldIsActive,
	FieldLastLoginAt,
	FieldFailedLoginAttempts,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	FirstNameValidator func(string) error
	// LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	LastNameValidator func(string) error
	// PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	PhoneValidator func(string) error
	// DniValidator is a validator for the "dni" field. It is called by the builders before save.
	DniValidator func(string) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultFailedLoginAttempts holds the default value on creation for the "failed_login_attempts" field.
	DefaultFailedLoginAttempts int
	// FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	FailedLoginAttemptsValidator func(int) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Role defines the type for the "role" enum field.
type Role string

// RolePATIENT is the default value of the Role enum.
const DefaultRole = RolePATIENT

// Role values.
const (
	RoleADMIN            Role = "ADMIN"
	RoleMEDICAL_DIRECTOR Role = "MEDICAL_DIRECTOR"
	RoleDOCTOR           Role = "DOCTOR"
	RoleLAB_OPERATOR     Role = "LAB_OPERATOR"
	RolePATIENT          Role = "PATIENT"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleADMIN, RoleMEDICAL_DIRECTOR, RoleDOCTOR, RoleLAB_OPERATOR, RolePATIENT:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// BiologicalSex defines the type for the "biological_sex" enum field.
type BiologicalSex string

// BiologicalSex values.
const (
	BiologicalSexM BiologicalSex = "M"
	BiologicalSexF BiologicalSex = "F"
)

func (bs BiologicalSex) String() string {
	return string(bs)
}

// BiologicalSexValidator is a validator for the "biological_sex" field enum values. It is called by the builders before save.
func BiologicalSexValidator(bs BiologicalSex) error {
	switch bs {
	case BiologicalSexM, BiologicalSexF:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for biological_sex field: %q", bs)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByFirstName orders the results by the first_name field.
func ByFirstName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstName, opts...).ToFunc()
}

// ByLastName orders the results by the last_name field.
func ByLastName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastName, opts...).ToFunc()
}

// ByPhone orders the results by the phone field.
func ByPhone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhone, opts...).ToFunc()
}

// ByDni orders the results by the dni field.
func ByDni(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDni, opts...).ToFunc()
}

// ByBiologicalSex orders the results by the biological_sex field.
func ByBiologicalSex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBiologicalSex, opts...).ToFunc()
}

// ByDateOfBirth orders the results by the date_of_birth field.
func ByDateOfBirth(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDateOfBirth, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByLastLoginAt orders the results by the last_login_at field.
func ByLastLoginAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoginAt, opts...).ToFunc()
}

// ByFailedLoginAttempts orders the results by the failed_login_attempts field.
func ByFailedLoginAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedLoginAttempts, opts...).ToFunc()
}

// ByPatientProfileField orders the results by patient_profile field.
func ByPatientProfileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPatientProfileStep(), sql.OrderByField(field, opts...))
	}
}

// ByTreatmentsAsDoctorCount orders the results by treatments_as_doctor count.
func ByTreatmentsAsDoctorCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTreatmentsAsDoctorStep(), opts...)
	}
}

// ByTreatmentsAsDoctor orders the results by treatments_as_doctor terms.
func ByTreatmentsAsDoctor(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTreatmentsAsDoctorStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByPuncturesPerformedCount orders the results by punctures_performed count.
func ByPuncturesPerformedCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPuncturesPerformedStep(), opts...)
	}
}

// ByPuncturesPerformed orders the results by punctures_performed terms.
func ByPuncturesPerformed(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPuncturesPerformedStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPatientProfileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PatientProfileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, PatientProfileTable, PatientProfileColumn),
	)
}
func newTreatmentsAsDoctorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TreatmentsAsDoctorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, TreatmentsAsDoctorTable, TreatmentsAsDoctorColumn),
	)
}
func newPuncturesPerformedStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PuncturesPerformedInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, true, PuncturesPerformedTable, PuncturesPerformedColumn),
	)
}

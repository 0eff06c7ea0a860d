// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Embryo is the predicate function for embryo builders.
type Embryo func(*sql.Selector)

// EmbryoTransfer is the predicate function for embryotransfer builders.
type EmbryoTransfer func(*sql.Selector)

// MedicalHistory is the predicate function for medicalhistory builders.
type MedicalHistory func(*sql.Selector)

// MedicalOrder is the predicate function for medicalorder builders.
type MedicalOrder func(*sql.Selector)

// MonitoringDay is the predicate function for monitoringday builders.
type MonitoringDay func(*sql.Selector)

// Oocyte is the predicate function for oocyte builders.
type Oocyte func(*sql.Selector)

// OocyteStateHistory is the predicate function for oocytestatehistory builders.
type OocyteStateHistory func(*sql.Selector)

// Partner is the predicate function for partner builders.
type Partner func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// Puncture is the predicate function for puncture builders.
type Puncture func(*sql.Selector)

// StudyResult is the predicate function for studyresult builders.
type StudyResult func(*sql.Selector)

// Treatment is the predicate function for treatment builders.
type Treatment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

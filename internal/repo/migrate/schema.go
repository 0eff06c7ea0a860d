// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EmbryosColumns holds the columns for the "embryos" table.
	EmbryosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "embryo_code", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "fertilization_technique", Type: field.TypeEnum, Enums: []string{"IVF", "ICSI"}},
		{Name: "sperm_source", Type: field.TypeEnum, Enums: []string{"PARTNER", "DONOR"}},
		{Name: "quality", Type: field.TypeInt},
		{Name: "current_state", Type: field.TypeEnum, Enums: []string{"DEVELOPING", "TRANSFERRED", "CRYOPRESERVED", "DISCARDED"}, Default: "DEVELOPING"},
		{Name: "pgt_performed", Type: field.TypeBool, Default: false},
		{Name: "pgt_result", Type: field.TypeBool, Nullable: true},
		{Name: "nitrogen_tube", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "rack_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "discard_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "oocyte_id", Type: field.TypeUUID, Unique: true},
	}
	// EmbryosTable holds the schema information for the "embryos" table.
	EmbryosTable = &schema.Table{
		Name:       "embryos",
		Columns:    EmbryosColumns,
		PrimaryKey: []*schema.Column{EmbryosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "embryos_oocytes_embryo",
				Columns:    []*schema.Column{EmbryosColumns[13]},
				RefColumns: []*schema.Column{OocytesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "embryo_oocyte_id",
				Unique:  true,
				Columns: []*schema.Column{EmbryosColumns[13]},
			},
			{
				Name:    "embryo_current_state",
				Unique:  false,
				Columns: []*schema.Column{EmbryosColumns[7]},
			},
		},
	}
	// EmbryoTransfersColumns holds the columns for the "embryo_transfers" table.
	EmbryoTransfersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "scheduled_date", Type: field.TypeTime},
		{Name: "performed_date", Type: field.TypeTime, Nullable: true},
		{Name: "beta_positive", Type: field.TypeBool, Nullable: true},
		{Name: "gestational_sac", Type: field.TypeBool, Nullable: true},
		{Name: "clinical_pregnancy", Type: field.TypeBool, Nullable: true},
		{Name: "live_birth", Type: field.TypeBool, Nullable: true},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "embryo_id", Type: field.TypeUUID, Unique: true},
	}
	// EmbryoTransfersTable holds the schema information for the "embryo_transfers" table.
	EmbryoTransfersTable = &schema.Table{
		Name:       "embryo_transfers",
		Columns:    EmbryoTransfersColumns,
		PrimaryKey: []*schema.Column{EmbryoTransfersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "embryo_transfers_embryos_transfer",
				Columns:    []*schema.Column{EmbryoTransfersColumns[10]},
				RefColumns: []*schema.Column{EmbryosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "embryotransfer_embryo_id",
				Unique:  true,
				Columns: []*schema.Column{EmbryoTransfersColumns[10]},
			},
		},
	}
	// MedicalHistoriesColumns holds the columns for the "medical_histories" table.
	MedicalHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "clinical_background", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "surgical_background", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "personal_background", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "family_background", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "gynecological_background", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "physical_exam", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "phenotype", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
	}
	// MedicalHistoriesTable holds the schema information for the "medical_histories" table.
	MedicalHistoriesTable = &schema.Table{
		Name:       "medical_histories",
		Columns:    MedicalHistoriesColumns,
		PrimaryKey: []*schema.Column{MedicalHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "medical_histories_patients_medical_history",
				Columns:    []*schema.Column{MedicalHistoriesColumns[10]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// MedicalOrdersColumns holds the columns for the "medical_orders" table.
	MedicalOrdersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "order_type", Type: field.TypeString, Size: 100},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "treatment_id", Type: field.TypeUUID},
	}
	// MedicalOrdersTable holds the schema information for the "medical_orders" table.
	MedicalOrdersTable = &schema.Table{
		Name:       "medical_orders",
		Columns:    MedicalOrdersColumns,
		PrimaryKey: []*schema.Column{MedicalOrdersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "medical_orders_treatments_medical_orders",
				Columns:    []*schema.Column{MedicalOrdersColumns[4]},
				RefColumns: []*schema.Column{TreatmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "medicalorder_treatment_id",
				Unique:  false,
				Columns: []*schema.Column{MedicalOrdersColumns[4]},
			},
		},
	}
	// MonitoringDaysColumns holds the columns for the "monitoring_days" table.
	MonitoringDaysColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "date", Type: field.TypeTime},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "completed", Type: field.TypeBool, Default: false},
		{Name: "treatment_id", Type: field.TypeUUID},
	}
	// MonitoringDaysTable holds the schema information for the "monitoring_days" table.
	MonitoringDaysTable = &schema.Table{
		Name:       "monitoring_days",
		Columns:    MonitoringDaysColumns,
		PrimaryKey: []*schema.Column{MonitoringDaysColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "monitoring_days_treatments_monitoring_days",
				Columns:    []*schema.Column{MonitoringDaysColumns[6]},
				RefColumns: []*schema.Column{TreatmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "monitoringday_treatment_id_date",
				Unique:  false,
				Columns: []*schema.Column{MonitoringDaysColumns[6], MonitoringDaysColumns[3]},
			},
		},
	}
	// OocytesColumns holds the columns for the "oocytes" table.
	OocytesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "oocyte_code", Type: field.TypeString, Unique: true, Size: 100},
		{Name: "initial_state", Type: field.TypeEnum, Enums: []string{"VERY_IMMATURE", "IMMATURE", "MATURE", "FERTILIZED", "DISCARDED", "CRYOPRESERVED"}},
		{Name: "current_state", Type: field.TypeEnum, Enums: []string{"VERY_IMMATURE", "IMMATURE", "MATURE", "FERTILIZED", "DISCARDED", "CRYOPRESERVED"}},
		{Name: "maturation_time_hours", Type: field.TypeInt, Nullable: true},
		{Name: "discard_reason", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "nitrogen_tube", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "rack_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "puncture_id", Type: field.TypeUUID},
	}
	// OocytesTable holds the schema information for the "oocytes" table.
	OocytesTable = &schema.Table{
		Name:       "oocytes",
		Columns:    OocytesColumns,
		PrimaryKey: []*schema.Column{OocytesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "oocytes_punctures_oocytes",
				Columns:    []*schema.Column{OocytesColumns[10]},
				RefColumns: []*schema.Column{PuncturesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "oocyte_puncture_id",
				Unique:  false,
				Columns: []*schema.Column{OocytesColumns[10]},
			},
			{
				Name:    "oocyte_current_state",
				Unique:  false,
				Columns: []*schema.Column{OocytesColumns[5]},
			},
		},
	}
	// OocyteStateHistoriesColumns holds the columns for the "oocyte_state_histories" table.
	OocyteStateHistoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "from_state", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "to_state", Type: field.TypeString, Size: 20},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "oocyte_id", Type: field.TypeUUID},
		{Name: "changed_by_id", Type: field.TypeUUID, Nullable: true},
	}
	// OocyteStateHistoriesTable holds the schema information for the "oocyte_state_histories" table.
	OocyteStateHistoriesTable = &schema.Table{
		Name:       "oocyte_state_histories",
		Columns:    OocyteStateHistoriesColumns,
		PrimaryKey: []*schema.Column{OocyteStateHistoriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "oocyte_state_histories_oocytes_state_history",
				Columns:    []*schema.Column{OocyteStateHistoriesColumns[5]},
				RefColumns: []*schema.Column{OocytesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "oocyte_state_histories_users_changed_by",
				Columns:    []*schema.Column{OocyteStateHistoriesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "oocytestatehistory_oocyte_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{OocyteStateHistoriesColumns[5], OocyteStateHistoriesColumns[1]},
			},
		},
	}
	// PartnersColumns holds the columns for the "partners" table.
	PartnersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "first_name", Type: field.TypeString, Size: 100},
		{Name: "last_name", Type: field.TypeString, Size: 100},
		{Name: "date_of_birth", Type: field.TypeTime},
		{Name: "biological_sex", Type: field.TypeEnum, Enums: []string{"M", "F"}},
		{Name: "dni", Type: field.TypeString, Size: 20},
		{Name: "genital_background", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "patient_id", Type: field.TypeUUID, Unique: true},
	}
	// PartnersTable holds the schema information for the "partners" table.
	PartnersTable = &schema.Table{
		Name:       "partners",
		Columns:    PartnersColumns,
		PrimaryKey: []*schema.Column{PartnersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "partners_patients_partner",
				Columns:    []*schema.Column{PartnersColumns[9]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// PatientsColumns holds the columns for the "patients" table.
	PatientsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "occupation", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "medical_coverage_id", Type: field.TypeInt, Nullable: true},
		{Name: "medical_coverage_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "member_number", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// PatientsTable holds the schema information for the "patients" table.
	PatientsTable = &schema.Table{
		Name:       "patients",
		Columns:    PatientsColumns,
		PrimaryKey: []*schema.Column{PatientsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "patients_users_patient_profile",
				Columns:    []*schema.Column{PatientsColumns[7]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "patient_user_id",
				Unique:  true,
				Columns: []*schema.Column{PatientsColumns[7]},
			},
		},
	}
	// PuncturesColumns holds the columns for the "punctures" table.
	PuncturesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "date", Type: field.TypeTime},
		{Name: "operating_room", Type: field.TypeString, Size: 50},
		{Name: "complications", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "operator_id", Type: field.TypeUUID, Nullable: true},
		{Name: "treatment_id", Type: field.TypeUUID, Unique: true},
	}
	// PuncturesTable holds the schema information for the "punctures" table.
	PuncturesTable = &schema.Table{
		Name:       "punctures",
		Columns:    PuncturesColumns,
		PrimaryKey: []*schema.Column{PuncturesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "punctures_users_operator",
				Columns:    []*schema.Column{PuncturesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "punctures_treatments_puncture",
				Columns:    []*schema.Column{PuncturesColumns[6]},
				RefColumns: []*schema.Column{TreatmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "puncture_treatment_id",
				Unique:  true,
				Columns: []*schema.Column{PuncturesColumns[6]},
			},
		},
	}
	// StudyResultsColumns holds the columns for the "study_results" table.
	StudyResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "study_type", Type: field.TypeString, Size: 100},
		{Name: "study_name", Type: field.TypeString, Size: 255},
		{Name: "result_file_key", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "result_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "treatment_id", Type: field.TypeUUID},
	}
	// StudyResultsTable holds the schema information for the "study_results" table.
	StudyResultsTable = &schema.Table{
		Name:       "study_results",
		Columns:    StudyResultsColumns,
		PrimaryKey: []*schema.Column{StudyResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "study_results_treatments_study_results",
				Columns:    []*schema.Column{StudyResultsColumns[6]},
				RefColumns: []*schema.Column{TreatmentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "studyresult_treatment_id",
				Unique:  false,
				Columns: []*schema.Column{StudyResultsColumns[6]},
			},
		},
	}
	// TreatmentsColumns holds the columns for the "treatments" table.
	TreatmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "objective", Type: field.TypeEnum, Enums: []string{"PREGNANCY", "OOCYTE_PRESERVATION"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "COMPLETED", "CANCELLED"}, Default: "ACTIVE"},
		{Name: "stimulation_protocol", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "medication_type", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "medication_dose", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "medication_duration", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "oocytes_viable", Type: field.TypeBool, Nullable: true},
		{Name: "sperm_viable", Type: field.TypeBool, Nullable: true},
		{Name: "consent_document_key", Type: field.TypeString, Nullable: true, Size: 512},
		{Name: "patient_id", Type: field.TypeUUID},
		{Name: "doctor_id", Type: field.TypeUUID},
	}
	// TreatmentsTable holds the schema information for the "treatments" table.
	TreatmentsTable = &schema.Table{
		Name:       "treatments",
		Columns:    TreatmentsColumns,
		PrimaryKey: []*schema.Column{TreatmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "treatments_patients_treatments",
				Columns:    []*schema.Column{TreatmentsColumns[12]},
				RefColumns: []*schema.Column{PatientsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "treatments_users_doctor",
				Columns:    []*schema.Column{TreatmentsColumns[13]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "treatment_patient_id",
				Unique:  false,
				Columns: []*schema.Column{TreatmentsColumns[12]},
			},
			{
				Name:    "treatment_doctor_id",
				Unique:  false,
				Columns: []*schema.Column{TreatmentsColumns[13]},
			},
			{
				Name:    "treatment_status",
				Unique:  false,
				Columns: []*schema.Column{TreatmentsColumns[4]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "username", Type: field.TypeString, Unique: true, Size: 150},
		{Name: "email", Type: field.TypeString, Unique: true, Nullable: true, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"ADMIN", "MEDICAL_DIRECTOR", "DOCTOR", "LAB_OPERATOR", "PATIENT"}, Default: "PATIENT"},
		{Name: "first_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "last_name", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "dni", Type: field.TypeString, Unique: true, Nullable: true, Size: 20},
		{Name: "biological_sex", Type: field.TypeEnum, Nullable: true, Enums: []string{"M", "F"}},
		{Name: "date_of_birth", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_role",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EmbryosTable,
		EmbryoTransfersTable,
		MedicalHistoriesTable,
		MedicalOrdersTable,
		MonitoringDaysTable,
		OocytesTable,
		OocyteStateHistoriesTable,
		PartnersTable,
		PatientsTable,
		PuncturesTable,
		StudyResultsTable,
		TreatmentsTable,
		UsersTable,
	}
)

func init() {
	EmbryosTable.ForeignKeys[0].RefTable = OocytesTable
	EmbryoTransfersTable.ForeignKeys[0].RefTable = EmbryosTable
	MedicalHistoriesTable.ForeignKeys[0].RefTable = PatientsTable
	MedicalOrdersTable.ForeignKeys[0].RefTable = TreatmentsTable
	MonitoringDaysTable.ForeignKeys[0].RefTable = TreatmentsTable
	OocytesTable.ForeignKeys[0].RefTable = PuncturesTable
	OocyteStateHistoriesTable.ForeignKeys[0].RefTable = OocytesTable
	OocyteStateHistoriesTable.ForeignKeys[1].RefTable = UsersTable
	PartnersTable.ForeignKeys[0].RefTable = PatientsTable
	PatientsTable.ForeignKeys[0].RefTable = UsersTable
	PuncturesTable.ForeignKeys[0].RefTable = UsersTable
	PuncturesTable.ForeignKeys[1].RefTable = TreatmentsTable
	StudyResultsTable.ForeignKeys[0].RefTable = TreatmentsTable
	TreatmentsTable.ForeignKeys[0].RefTable = PatientsTable
	TreatmentsTable.ForeignKeys[1].RefTable = UsersTable
}

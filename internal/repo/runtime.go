// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/fertitrack/fertitrack_backend/internal/repo/embryo"
	"github.com/fertitrack/fertitrack_backend/internal/repo/embryotransfer"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalhistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/medicalorder"
	"github.com/fertitrack/fertitrack_backend/internal/repo/monitoringday"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocyte"
	"github.com/fertitrack/fertitrack_backend/internal/repo/oocytestatehistory"
	"github.com/fertitrack/fertitrack_backend/internal/repo/partner"
	"github.com/fertitrack/fertitrack_backend/internal/repo/patient"
	"github.com/fertitrack/fertitrack_backend/internal/repo/puncture"
	"github.com/fertitrack/fertitrack_backend/internal/repo/studyresult"
	"github.com/fertitrack/fertitrack_backend/internal/repo/treatment"
	"github.com/fertitrack/fertitrack_backend/internal/repo/user"
	"github.com/fertitrack/fertitrack_backend/internal/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	embryoMixin := schema.Embryo{}.Mixin()
	embryoMixinFields0 := embryoMixin[0].Fields()
	_ = embryoMixinFields0
	embryoMixinFields1 := embryoMixin[1].Fields()
	_ = embryoMixinFields1
	embryoFields := schema.Embryo{}.Fields()
	_ = embryoFields
	// embryoDescCreatedAt is the schema descriptor for created_at field.
	embryoDescCreatedAt := embryoMixinFields1[0].Descriptor()
	// embryo.DefaultCreatedAt holds the default value on creation for the created_at field.
	embryo.DefaultCreatedAt = embryoDescCreatedAt.Default.(func() time.Time)
	// embryoDescUpdatedAt is the schema descriptor for updated_at field.
	embryoDescUpdatedAt := embryoMixinFields1[1].Descriptor()
	// embryo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	embryo.DefaultUpdatedAt = embryoDescUpdatedAt.Default.(func() time.Time)
	// embryo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	embryo.UpdateDefaultUpdatedAt = embryoDescUpdatedAt.UpdateDefault.(func() time.Time)
	// embryoDescEmbryoCode is the schema descriptor for embryo_code field.
	embryoDescEmbryoCode := embryoFields[1].Descriptor()
	// embryo.EmbryoCodeValidator is a validator for the "embryo_code" field. It is called by the builders before save.
	embryo.EmbryoCodeValidator = embryoDescEmbryoCode.Validators[0].(func(string) error)
	// embryoDescQuality is the schema descriptor for quality field.
	embryoDescQuality := embryoFields[4].Descriptor()
	// embryo.QualityValidator is a validator for the "quality" field. It is called by the builders before save.
	embryo.QualityValidator = func() func(int) error {
		validators := embryoDescQuality.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(quality int) error {
			for _, fn := range fns {
				if err := fn(quality); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// embryoDescPgtPerformed is the schema descriptor for pgt_performed field.
	embryoDescPgtPerformed := embryoFields[6].Descriptor()
	// embryo.DefaultPgtPerformed holds the default value on creation for the pgt_performed field.
	embryo.DefaultPgtPerformed = embryoDescPgtPerformed.Default.(bool)
	// embryoDescNitrogenTube is the schema descriptor for nitrogen_tube field.
	embryoDescNitrogenTube := embryoFields[8].Descriptor()
	// embryo.NitrogenTubeValidator is a validator for the "nitrogen_tube" field. It is called by the builders before save.
	embryo.NitrogenTubeValidator = embryoDescNitrogenTube.Validators[0].(func(string) error)
	// embryoDescRackNumber is the schema descriptor for rack_number field.
	embryoDescRackNumber := embryoFields[9].Descriptor()
	// embryo.RackNumberValidator is a validator for the "rack_number" field. It is called by the builders before save.
	embryo.RackNumberValidator = embryoDescRackNumber.Validators[0].(func(string) error)
	// embryoDescID is the schema descriptor for id field.
	embryoDescID := embryoMixinFields0[0].Descriptor()
	// embryo.DefaultID holds the default value on creation for the id field.
	embryo.DefaultID = embryoDescID.Default.(func() uuid.UUID)
	embryotransferMixin := schema.EmbryoTransfer{}.Mixin()
	embryotransferMixinFields0 := embryotransferMixin[0].Fields()
	_ = embryotransferMixinFields0
	embryotransferMixinFields1 := embryotransferMixin[1].Fields()
	_ = embryotransferMixinFields1
	embryotransferFields := schema.EmbryoTransfer{}.Fields()
	_ = embryotransferFields
	// embryotransferDescCreatedAt is the schema descriptor for created_at field.
	embryotransferDescCreatedAt := embryotransferMixinFields1[0].Descriptor()
	// embryotransfer.DefaultCreatedAt holds the default value on creation for the created_at field.
	embryotransfer.DefaultCreatedAt = embryotransferDescCreatedAt.Default.(func() time.Time)
	// embryotransferDescUpdatedAt is the schema descriptor for updated_at field.
	embryotransferDescUpdatedAt := embryotransferMixinFields1[1].Descriptor()
	// embryotransfer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	embryotransfer.DefaultUpdatedAt = embryotransferDescUpdatedAt.Default.(func() time.Time)
	// embryotransfer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	embryotransfer.UpdateDefaultUpdatedAt = embryotransferDescUpdatedAt.UpdateDefault.(func() time.Time)
	// embryotransferDescID is the schema descriptor for id field.
	embryotransferDescID := embryotransferMixinFields0[0].Descriptor()
	// embryotransfer.DefaultID holds the default value on creation for the id field.
	embryotransfer.DefaultID = embryotransferDescID.Default.(func() uuid.UUID)
	medicalhistoryMixin := schema.MedicalHistory{}.Mixin()
	medicalhistoryMixinFields0 := medicalhistoryMixin[0].Fields()
	_ = medicalhistoryMixinFields0
	medicalhistoryMixinFields1 := medicalhistoryMixin[1].Fields()
	_ = medicalhistoryMixinFields1
	medicalhistoryFields := schema.MedicalHistory{}.Fields()
	_ = medicalhistoryFields
	// medicalhistoryDescCreatedAt is the schema descriptor for created_at field.
	medicalhistoryDescCreatedAt := medicalhistoryMixinFields1[0].Descriptor()
	// medicalhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalhistory.DefaultCreatedAt = medicalhistoryDescCreatedAt.Default.(func() time.Time)
	// medicalhistoryDescUpdatedAt is the schema descriptor for updated_at field.
	medicalhistoryDescUpdatedAt := medicalhistoryMixinFields1[1].Descriptor()
	// medicalhistory.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	medicalhistory.DefaultUpdatedAt = medicalhistoryDescUpdatedAt.Default.(func() time.Time)
	// medicalhistory.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	medicalhistory.UpdateDefaultUpdatedAt = medicalhistoryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// medicalhistoryDescID is the schema descriptor for id field.
	medicalhistoryDescID := medicalhistoryMixinFields0[0].Descriptor()
	// medicalhistory.DefaultID holds the default value on creation for the id field.
	medicalhistory.DefaultID = medicalhistoryDescID.Default.(func() uuid.UUID)
	medicalorderMixin := schema.MedicalOrder{}.Mixin()
	medicalorderMixinFields0 := medicalorderMixin[0].Fields()
	_ = medicalorderMixinFields0
	medicalorderMixinFields1 := medicalorderMixin[1].Fields()
	_ = medicalorderMixinFields1
	medicalorderFields := schema.MedicalOrder{}.Fields()
	_ = medicalorderFields
	// medicalorderDescCreatedAt is the schema descriptor for created_at field.
	medicalorderDescCreatedAt := medicalorderMixinFields1[0].Descriptor()
	// medicalorder.DefaultCreatedAt holds the default value on creation for the created_at field.
	medicalorder.DefaultCreatedAt = medicalorderDescCreatedAt.Default.(func() time.Time)
	// medicalorderDescOrderType is the schema descriptor for order_type field.
	medicalorderDescOrderType := medicalorderFields[1].Descriptor()
	// medicalorder.OrderTypeValidator is a validator for the "order_type" field. It is called by the builders before save.
	medicalorder.OrderTypeValidator = medicalorderDescOrderType.Validators[0].(func(string) error)
	// medicalorderDescID is the schema descriptor for id field.
	medicalorderDescID := medicalorderMixinFields0[0].Descriptor()
	// medicalorder.DefaultID holds the default value on creation for the id field.
	medicalorder.DefaultID = medicalorderDescID.Default.(func() uuid.UUID)
	monitoringdayMixin := schema.MonitoringDay{}.Mixin()
	monitoringdayMixinFields0 := monitoringdayMixin[0].Fields()
	_ = monitoringdayMixinFields0
	monitoringdayMixinFields1 := monitoringdayMixin[1].Fields()
	_ = monitoringdayMixinFields1
	monitoringdayFields := schema.MonitoringDay{}.Fields()
	_ = monitoringdayFields
	// monitoringdayDescCreatedAt is the schema descriptor for created_at field.
	monitoringdayDescCreatedAt := monitoringdayMixinFields1[0].Descriptor()
	// monitoringday.DefaultCreatedAt holds the default value on creation for the created_at field.
	monitoringday.DefaultCreatedAt = monitoringdayDescCreatedAt.Default.(func() time.Time)
	// monitoringdayDescUpdatedAt is the schema descriptor for updated_at field.
	monitoringdayDescUpdatedAt := monitoringdayMixinFields1[1].Descriptor()
	// monitoringday.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	monitoringday.DefaultUpdatedAt = monitoringdayDescUpdatedAt.Default.(func() time.Time)
	// monitoringday.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	monitoringday.UpdateDefaultUpdatedAt = monitoringdayDescUpdatedAt.UpdateDefault.(func() time.Time)
	// monitoringdayDescCompleted is the schema descriptor for completed field.
	monitoringdayDescCompleted := monitoringdayFields[3].Descriptor()
	// monitoringday.DefaultCompleted holds the default value on creation for the completed field.
	monitoringday.DefaultCompleted = monitoringdayDescCompleted.Default.(bool)
	// monitoringdayDescID is the schema descriptor for id field.
	monitoringdayDescID := monitoringdayMixinFields0[0].Descriptor()
	// monitoringday.DefaultID holds the default value on creation for the id field.
	monitoringday.DefaultID = monitoringdayDescID.Default.(func() uuid.UUID)
	oocyteMixin := schema.Oocyte{}.Mixin()
	oocyteMixinFields0 := oocyteMixin[0].Fields()
	_ = oocyteMixinFields0
	oocyteMixinFields1 := oocyteMixin[1].Fields()
	_ = oocyteMixinFields1
	oocyteFields := schema.Oocyte{}.Fields()
	_ = oocyteFields
	// oocyteDescCreatedAt is the schema descriptor for created_at field.
	oocyteDescCreatedAt := oocyteMixinFields1[0].Descriptor()
	// oocyte.DefaultCreatedAt holds the default value on creation for the created_at field.
	oocyte.DefaultCreatedAt = oocyteDescCreatedAt.Default.(func() time.Time)
	// oocyteDescUpdatedAt is the schema descriptor for updated_at field.
	oocyteDescUpdatedAt := oocyteMixinFields1[1].Descriptor()
	// oocyte.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	oocyte.DefaultUpdatedAt = oocyteDescUpdatedAt.Default.(func() time.Time)
	// oocyte.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	oocyte.UpdateDefaultUpdatedAt = oocyteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// oocyteDescOocyteCode is the schema descriptor for oocyte_code field.
	oocyteDescOocyteCode := oocyteFields[1].Descriptor()
	// oocyte.OocyteCodeValidator is a validator for the "oocyte_code" field. It is called by the builders before save.
	oocyte.OocyteCodeValidator = oocyteDescOocyteCode.Validators[0].(func(string) error)
	// oocyteDescNitrogenTube is the schema descriptor for nitrogen_tube field.
	oocyteDescNitrogenTube := oocyteFields[6].Descriptor()
	// oocyte.NitrogenTubeValidator is a validator for the "nitrogen_tube" field. It is called by the builders before save.
	oocyte.NitrogenTubeValidator = oocyteDescNitrogenTube.Validators[0].(func(string) error)
	// oocyteDescRackNumber is the schema descriptor for rack_number field.
	oocyteDescRackNumber := oocyteFields[7].Descriptor()
	// oocyte.RackNumberValidator is a validator for the "rack_number" field. It is called by the builders before save.
	oocyte.RackNumberValidator = oocyteDescRackNumber.Validators[0].(func(string) error)
	// oocyteDescID is the schema descriptor for id field.
	oocyteDescID := oocyteMixinFields0[0].Descriptor()
	// oocyte.DefaultID holds the default value on creation for the id field.
	oocyte.DefaultID = oocyteDescID.Default.(func() uuid.UUID)
	oocytestatehistoryMixin := schema.OocyteStateHistory{}.Mixin()
	oocytestatehistoryMixinFields0 := oocytestatehistoryMixin[0].Fields()
	_ = oocytestatehistoryMixinFields0
	oocytestatehistoryMixinFields1 := oocytestatehistoryMixin[1].Fields()
	_ = oocytestatehistoryMixinFields1
	oocytestatehistoryFields := schema.OocyteStateHistory{}.Fields()
	_ = oocytestatehistoryFields
	// oocytestatehistoryDescCreatedAt is the schema descriptor for created_at field.
	oocytestatehistoryDescCreatedAt := oocytestatehistoryMixinFields1[0].Descriptor()
	// oocytestatehistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	oocytestatehistory.DefaultCreatedAt = oocytestatehistoryDescCreatedAt.Default.(func() time.Time)
	// oocytestatehistoryDescFromState is the schema descriptor for from_state field.
	oocytestatehistoryDescFromState := oocytestatehistoryFields[1].Descriptor()
	// oocytestatehistory.FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	oocytestatehistory.FromStateValidator = oocytestatehistoryDescFromState.Validators[0].(func(string) error)
	// oocytestatehistoryDescToState is the schema descriptor for to_state field.
	oocytestatehistoryDescToState := oocytestatehistoryFields[2].Descriptor()
	// oocytestatehistory.ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	oocytestatehistory.ToStateValidator = oocytestatehistoryDescToState.Validators[0].(func(string) error)
	// oocytestatehistoryDescID is the schema descriptor for id field.
	oocytestatehistoryDescID := oocytestatehistoryMixinFields0[0].Descriptor()
	// oocytestatehistory.DefaultID holds the default value on creation for the id field.
	oocytestatehistory.DefaultID = oocytestatehistoryDescID.Default.(func() uuid.UUID)
	partnerMixin := schema.Partner{}.Mixin()
	partnerMixinFields0 := partnerMixin[0].Fields()
	_ = partnerMixinFields0
	partnerMixinFields1 := partnerMixin[1].Fields()
	_ = partnerMixinFields1
	partnerFields := schema.Partner{}.Fields()
	_ = partnerFields
	// partnerDescCreatedAt is the schema descriptor for created_at field.
	partnerDescCreatedAt := partnerMixinFields1[0].Descriptor()
	// partner.DefaultCreatedAt holds the default value on creation for the created_at field.
	partner.DefaultCreatedAt = partnerDescCreatedAt.Default.(func() time.Time)
	// partnerDescUpdatedAt is the schema descriptor for updated_at field.
	partnerDescUpdatedAt := partnerMixinFields1[1].Descriptor()
	// partner.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	partner.DefaultUpdatedAt = partnerDescUpdatedAt.Default.(func() time.Time)
	// partner.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	partner.UpdateDefaultUpdatedAt = partnerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// partnerDescFirstName is the schema descriptor for first_name field.
	partnerDescFirstName := partnerFields[1].Descriptor()
	// partner.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	partner.FirstNameValidator = partnerDescFirstName.Validators[0].(func(string) error)
	// partnerDescLastName is the schema descriptor for last_name field.
	partnerDescLastName := partnerFields[2].Descriptor()
	// partner.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	partner.LastNameValidator = partnerDescLastName.Validators[0].(func(string) error)
	// partnerDescDni is the schema descriptor for dni field.
	partnerDescDni := partnerFields[5].Descriptor()
	// partner.DniValidator is a validator for the "dni" field. It is called by the builders before save.
	partner.DniValidator = partnerDescDni.Validators[0].(func(string) error)
	// partnerDescID is the schema descriptor for id field.
	partnerDescID := partnerMixinFields0[0].Descriptor()
	// partner.DefaultID holds the default value on creation for the id field.
	partner.DefaultID = partnerDescID.Default.(func() uuid.UUID)
	patientMixin := schema.Patient{}.Mixin()
	patientMixinFields0 := patientMixin[0].Fields()
	_ = patientMixinFields0
	patientMixinFields1 := patientMixin[1].Fields()
	_ = patientMixinFields1
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientMixinFields1[0].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientMixinFields1[1].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	// patientDescOccupation is the schema descriptor for occupation field.
	patientDescOccupation := patientFields[1].Descriptor()
	// patient.OccupationValidator is a validator for the "occupation" field. It is called by the builders before save.
	patient.OccupationValidator = patientDescOccupation.Validators[0].(func(string) error)
	// patientDescMedicalCoverageName is the schema descriptor for medical_coverage_name field.
	patientDescMedicalCoverageName := patientFields[3].Descriptor()
	// patient.MedicalCoverageNameValidator is a validator for the "medical_coverage_name" field. It is called by the builders before save.
	patient.MedicalCoverageNameValidator = patientDescMedicalCoverageName.Validators[0].(func(string) error)
	// patientDescMemberNumber is the schema descriptor for member_number field.
	patientDescMemberNumber := patientFields[4].Descriptor()
	// patient.MemberNumberValidator is a validator for the "member_number" field. It is called by the builders before save.
	patient.MemberNumberValidator = patientDescMemberNumber.Validators[0].(func(string) error)
	// patientDescID is the schema descriptor for id field.
	patientDescID := patientMixinFields0[0].Descriptor()
	// patient.DefaultID holds the default value on creation for the id field.
	patient.DefaultID = patientDescID.Default.(func() uuid.UUID)
	punctureMixin := schema.Puncture{}.Mixin()
	punctureMixinFields0 := punctureMixin[0].Fields()
	_ = punctureMixinFields0
	punctureMixinFields1 := punctureMixin[1].Fields()
	_ = punctureMixinFields1
	punctureFields := schema.Puncture{}.Fields()
	_ = punctureFields
	// punctureDescCreatedAt is the schema descriptor for created_at field.
	punctureDescCreatedAt := punctureMixinFields1[0].Descriptor()
	// puncture.DefaultCreatedAt holds the default value on creation for the created_at field.
	puncture.DefaultCreatedAt = punctureDescCreatedAt.Default.(func() time.Time)
	// punctureDescOperatingRoom is the schema descriptor for operating_room field.
	punctureDescOperatingRoom := punctureFields[3].Descriptor()
	// puncture.OperatingRoomValidator is a validator for the "operating_room" field. It is called by the builders before save.
	puncture.OperatingRoomValidator = punctureDescOperatingRoom.Validators[0].(func(string) error)
	// punctureDescID is the schema descriptor for id field.
	punctureDescID := punctureMixinFields0[0].Descriptor()
	// puncture.DefaultID holds the default value on creation for the id field.
	puncture.DefaultID = punctureDescID.Default.(func() uuid.UUID)
	studyresultMixin := schema.StudyResult{}.Mixin()
	studyresultMixinFields0 := studyresultMixin[0].Fields()
	_ = studyresultMixinFields0
	studyresultMixinFields1 := studyresultMixin[1].Fields()
	_ = studyresultMixinFields1
	studyresultFields := schema.StudyResult{}.Fields()
	_ = studyresultFields
	// studyresultDescCreatedAt is the schema descriptor for created_at field.
	studyresultDescCreatedAt := studyresultMixinFields1[0].Descriptor()
	// studyresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyresult.DefaultCreatedAt = studyresultDescCreatedAt.Default.(func() time.Time)
	// studyresultDescStudyType is the schema descriptor for study_type field.
	studyresultDescStudyType := studyresultFields[1].Descriptor()
	// studyresult.StudyTypeValidator is a validator for the "study_type" field. It is called by the builders before save.
	studyresult.StudyTypeValidator = studyresultDescStudyType.Validators[0].(func(string) error)
	// studyresultDescStudyName is the schema descriptor for study_name field.
	studyresultDescStudyName := studyresultFields[2].Descriptor()
	// studyresult.StudyNameValidator is a validator for the "study_name" field. It is called by the builders before save.
	studyresult.StudyNameValidator = studyresultDescStudyName.Validators[0].(func(string) error)
	// studyresultDescResultFileKey is the schema descriptor for result_file_key field.
	studyresultDescResultFileKey := studyresultFields[3].Descriptor()
	// studyresult.ResultFileKeyValidator is a validator for the "result_file_key" field. It is called by the builders before save.
	studyresult.ResultFileKeyValidator = studyresultDescResultFileKey.Validators[0].(func(string) error)
	// studyresultDescID is the schema descriptor for id field.
	studyresultDescID := studyresultMixinFields0[0].Descriptor()
	// studyresult.DefaultID holds the default value on creation for the id field.
	studyresult.DefaultID = studyresultDescID.Default.(func() uuid.UUID)
	treatmentMixin := schema.Treatment{}.Mixin()
	treatmentMixinFields0 := treatmentMixin[0].Fields()
	_ = treatmentMixinFields0
	treatmentMixinFields1 := treatmentMixin[1].Fields()
	_ = treatmentMixinFields1
	treatmentFields := schema.Treatment{}.Fields()
	_ = treatmentFields
	// treatmentDescCreatedAt is the schema descriptor for created_at field.
	treatmentDescCreatedAt := treatmentMixinFields1[0].Descriptor()
	// treatment.DefaultCreatedAt holds the default value on creation for the created_at field.
	treatment.DefaultCreatedAt = treatmentDescCreatedAt.Default.(func() time.Time)
	// treatmentDescUpdatedAt is the schema descriptor for updated_at field.
	treatmentDescUpdatedAt := treatmentMixinFields1[1].Descriptor()
	// treatment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	treatment.DefaultUpdatedAt = treatmentDescUpdatedAt.Default.(func() time.Time)
	// treatment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	treatment.UpdateDefaultUpdatedAt = treatmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// treatmentDescMedicationType is the schema descriptor for medication_type field.
	treatmentDescMedicationType := treatmentFields[5].Descriptor()
	// treatment.MedicationTypeValidator is a validator for the "medication_type" field. It is called by the builders before save.
	treatment.MedicationTypeValidator = treatmentDescMedicationType.Validators[0].(func(string) error)
	// treatmentDescMedicationDose is the schema descriptor for medication_dose field.
	treatmentDescMedicationDose := treatmentFields[6].Descriptor()
	// treatment.MedicationDoseValidator is a validator for the "medication_dose" field. It is called by the builders before save.
	treatment.MedicationDoseValidator = treatmentDescMedicationDose.Validators[0].(func(string) error)
	// treatmentDescMedicationDuration is the schema descriptor for medication_duration field.
	treatmentDescMedicationDuration := treatmentFields[7].Descriptor()
	// treatment.MedicationDurationValidator is a validator for the "medication_duration" field. It is called by the builders before save.
	treatment.MedicationDurationValidator = treatmentDescMedicationDuration.Validators[0].(func(string) error)
	// treatmentDescConsentDocumentKey is the schema descriptor for consent_document_key field.
	treatmentDescConsentDocumentKey := treatmentFields[10].Descriptor()
	// treatment.ConsentDocumentKeyValidator is a validator for the "consent_document_key" field. It is called by the builders before save.
	treatment.ConsentDocumentKeyValidator = treatmentDescConsentDocumentKey.Validators[0].(func(string) error)
	// treatmentDescID is the schema descriptor for id field.
	treatmentDescID := treatmentMixinFields0[0].Descriptor()
	// treatment.DefaultID holds the default value on creation for the id field.
	treatment.DefaultID = treatmentDescID.Default.(func() uuid.UUID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields1[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields1[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[0].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = userDescUsername.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[4].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[5].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[6].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescDni is the schema descriptor for dni field.
	userDescDni := userFields[7].Descriptor()
	// user.DniValidator is a validator for the "dni" field. It is called by the builders before save.
	user.DniValidator = userDescDni.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[10].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescFailedLoginAttempts is the schema descriptor for failed_login_attempts field.
	userDescFailedLoginAttempts := userFields[12].Descriptor()
	// user.DefaultFailedLoginAttempts holds the default value on creation for the failed_login_attempts field.
	user.DefaultFailedLoginAttempts = userDescFailedLoginAttempts.Default.(int)
	// user.FailedLoginAttemptsValidator is a validator for the "failed_login_attempts" field. It is called by the builders before save.
	user.FailedLoginAttemptsValidator = userDescFailedLoginAttempts.Validators[0].(func(int) error)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}

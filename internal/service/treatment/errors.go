package treatment

import "errors"

var (
	ErrTreatmentNotFound     = errors.New("treatment not found")
	ErrPatientNotFound       = errors.New("patient not found")
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrNotADoctor            = errors.New("assigned user cannot carry treatments")
	ErrTreatmentNotActive    = errors.New("treatment is not active")
	ErrInvalidStatusChange   = errors.New("invalid treatment status change")
	ErrMonitoringDayNotFound = errors.New("monitoring day not found")
	ErrStudyResultNotFound   = errors.New("study result not found")
	ErrOrderNotFound         = errors.New("medical order not found")
	ErrNoResultFile          = errors.New("study result has no attached file")
	ErrFileStorageDisabled   = errors.New("file storage is not configured")
)

package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrHistoryNotFound = errors.New("medical history not found")
	ErrPartnerNotFound = errors.New("partner not found")
)

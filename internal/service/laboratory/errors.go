package laboratory

import "errors"

var (
	ErrTreatmentNotFound  = errors.New("treatment not found")
	ErrTreatmentNotActive = errors.New("treatment is not active")
	ErrPunctureNotFound   = errors.New("puncture not found")
	ErrPunctureExists     = errors.New("treatment already has a puncture registered")
	ErrOocyteNotFound     = errors.New("oocyte not found")
	ErrOocyteCodeExists   = errors.New("oocyte code already in use")
	ErrEmbryoNotFound     = errors.New("embryo not found")
	ErrEmbryoCodeExists   = errors.New("embryo code already in use")
	ErrEmbryoExists       = errors.New("oocyte already has an embryo")
	ErrTransferNotFound   = errors.New("embryo transfer not found")
	ErrTransferExists     = errors.New("embryo already has a transfer registered")

	// State machine violations
	ErrInvalidState      = errors.New("unknown lifecycle state")
	ErrInvalidTransition = errors.New("invalid state transition")

	// FERTILIZED and TRANSFERRED cannot be reached by direct state
	// updates; they are side effects of CreateEmbryo and RecordTransfer.
	ErrFertilizeViaEmbryo = errors.New("fertilization is recorded by creating an embryo")
	ErrTransferViaRecord  = errors.New("transfer is recorded through the embryo transfer record")

	ErrOocyteNotMature      = errors.New("oocyte must be mature to be fertilized")
	ErrCryoLocationRequired = errors.New("cryopreservation requires nitrogen tube and rack number")
)

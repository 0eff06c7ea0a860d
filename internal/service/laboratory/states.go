package laboratory

// OocyteState is the lifecycle state of an oocyte.
type OocyteState string

const (
	OocyteVeryImmature  OocyteState = "VERY_IMMATURE"
	OocyteImmature      OocyteState = "IMMATURE"
	OocyteMature        OocyteState = "MATURE"
	OocyteFertilized    OocyteState = "FERTILIZED"
	OocyteDiscarded     OocyteState = "DISCARDED"
	OocyteCryopreserved OocyteState = "CRYOPRESERVED"
)

// EmbryoState is the lifecycle state of an embryo.
type EmbryoState string

const (
	EmbryoDeveloping    EmbryoState = "DEVELOPING"
	EmbryoTransferred   EmbryoState = "TRANSFERRED"
	EmbryoCryopreserved EmbryoState = "CRYOPRESERVED"
	EmbryoDiscarded     EmbryoState = "DISCARDED"
)

// oocyteTransitions is the full transition table for oocytes.
// FERTILIZED and DISCARDED are terminal. FERTILIZED is reachable only
// through CreateEmbryo, never through a direct state update; the table
// still lists it so the atomic fertilization path validates against the
// same source of truth.
var oocyteTransitions = map[OocyteState]map[OocyteState]struct{}{
	OocyteVeryImmature: {
		OocyteImmature:      {},
		OocyteMature:        {},
		OocyteDiscarded:     {},
		OocyteCryopreserved: {},
	},
	OocyteImmature: {
		OocyteMature:        {},
		OocyteDiscarded:     {},
		OocyteCryopreserved: {},
	},
	OocyteMature: {
		OocyteFertilized:    {},
		OocyteDiscarded:     {},
		OocyteCryopreserved: {},
	},
	OocyteCryopreserved: {
		OocyteMature:    {},
		OocyteDiscarded: {},
	},
	OocyteFertilized: {},
	OocyteDiscarded:  {},
}

// embryoTransitions is the full transition table for embryos.
// TRANSFERRED and DISCARDED are terminal. TRANSFERRED is reachable only
// by recording a performed transfer.
var embryoTransitions = map[EmbryoState]map[EmbryoState]struct{}{
	EmbryoDeveloping: {
		EmbryoTransferred:   {},
		EmbryoCryopreserved: {},
		EmbryoDiscarded:     {},
	},
	EmbryoCryopreserved: {
		EmbryoDeveloping:  {},
		EmbryoTransferred: {},
		EmbryoDiscarded:   {},
	},
	EmbryoTransferred: {},
	EmbryoDiscarded:   {},
}

// ValidOocyteState reports whether s is a known oocyte state.
func ValidOocyteState(s OocyteState) bool {
	_, ok := oocyteTransitions[s]
	return ok
}

// ValidEmbryoState reports whether s is a known embryo state.
func ValidEmbryoState(s EmbryoState) bool {
	_, ok := embryoTransitions[s]
	return ok
}

// CanTransitionOocyte reports whether from -> to is a legal oocyte move.
func CanTransitionOocyte(from, to OocyteState) bool {
	targets, ok := oocyteTransitions[from]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// CanTransitionEmbryo reports whether from -> to is a legal embryo move.
func CanTransitionEmbryo(from, to EmbryoState) bool {
	targets, ok := embryoTransitions[from]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// IsTerminalOocyteState reports whether no transition leaves s.
func IsTerminalOocyteState(s OocyteState) bool {
	targets, ok := oocyteTransitions[s]
	return ok && len(targets) == 0
}

// IsTerminalEmbryoState reports whether no transition leaves s.
func IsTerminalEmbryoState(s EmbryoState) bool {
	targets, ok := embryoTransitions[s]
	return ok && len(targets) == 0
}

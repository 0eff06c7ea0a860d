package laboratory

import "testing"

func TestOocyteTransitions(t *testing.T) {
	tests := []struct {
		name string
		from OocyteState
		to   OocyteState
		want bool
	}{
		{"very immature to immature", OocyteVeryImmature, OocyteImmature, true},
		{"very immature to mature", OocyteVeryImmature, OocyteMature, true},
		{"very immature to discarded", OocyteVeryImmature, OocyteDiscarded, true},
		{"very immature to cryopreserved", OocyteVeryImmature, OocyteCryopreserved, true},
		{"very immature cannot fertilize", OocyteVeryImmature, OocyteFertilized, false},
		{"immature to mature", OocyteImmature, OocyteMature, true},
		{"immature cannot regress", OocyteImmature, OocyteVeryImmature, false},
		{"immature cannot fertilize", OocyteImmature, OocyteFertilized, false},
		{"mature to fertilized", OocyteMature, OocyteFertilized, true},
		{"mature to cryopreserved", OocyteMature, OocyteCryopreserved, true},
		{"mature to discarded", OocyteMature, OocyteDiscarded, true},
		{"mature cannot regress", OocyteMature, OocyteImmature, false},
		{"thaw back to mature", OocyteCryopreserved, OocyteMature, true},
		{"cryopreserved to discarded", OocyteCryopreserved, OocyteDiscarded, true},
		{"cryopreserved cannot fertilize directly", OocyteCryopreserved, OocyteFertilized, false},
		{"fertilized is terminal", OocyteFertilized, OocyteDiscarded, false},
		{"discarded is terminal", OocyteDiscarded, OocyteMature, false},
		{"unknown source state", OocyteState("BOGUS"), OocyteMature, false},
		{"unknown target state", OocyteMature, OocyteState("BOGUS"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionOocyte(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransitionOocyte(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestEmbryoTransitions(t *testing.T) {
	tests := []struct {
		name string
		from EmbryoState
		to   EmbryoState
		want bool
	}{
		{"developing to transferred", EmbryoDeveloping, EmbryoTransferred, true},
		{"developing to cryopreserved", EmbryoDeveloping, EmbryoCryopreserved, true},
		{"developing to discarded", EmbryoDeveloping, EmbryoDiscarded, true},
		{"thaw back to developing", EmbryoCryopreserved, EmbryoDeveloping, true},
		{"cryopreserved to transferred", EmbryoCryopreserved, EmbryoTransferred, true},
		{"cryopreserved to discarded", EmbryoCryopreserved, EmbryoDiscarded, true},
		{"transferred is terminal", EmbryoTransferred, EmbryoDiscarded, false},
		{"transferred cannot revert", EmbryoTransferred, EmbryoDeveloping, false},
		{"discarded is terminal", EmbryoDiscarded, EmbryoDeveloping, false},
		{"unknown source state", EmbryoState("BOGUS"), EmbryoDiscarded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransitionEmbryo(tt.from, tt.to); got != tt.want {
				t.Errorf("CanTransitionEmbryo(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestNoSelfLoops(t *testing.T) {
	for from := range oocyteTransitions {
		if CanTransitionOocyte(from, from) {
			t.Errorf("oocyte state %s allows a self transition", from)
		}
	}
	for from := range embryoTransitions {
		if CanTransitionEmbryo(from, from) {
			t.Errorf("embryo state %s allows a self transition", from)
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	oocyteTerminals := []OocyteState{OocyteFertilized, OocyteDiscarded}
	for _, s := range oocyteTerminals {
		if !IsTerminalOocyteState(s) {
			t.Errorf("expected oocyte state %s to be terminal", s)
		}
		for to := range oocyteTransitions {
			if CanTransitionOocyte(s, to) {
				t.Errorf("terminal oocyte state %s has an exit to %s", s, to)
			}
		}
	}

	embryoTerminals := []EmbryoState{EmbryoTransferred, EmbryoDiscarded}
	for _, s := range embryoTerminals {
		if !IsTerminalEmbryoState(s) {
			t.Errorf("expected embryo state %s to be terminal", s)
		}
		for to := range embryoTransitions {
			if CanTransitionEmbryo(s, to) {
				t.Errorf("terminal embryo state %s has an exit to %s", s, to)
			}
		}
	}
}

func TestFertilizedOnlyFromMature(t *testing.T) {
	for from := range oocyteTransitions {
		got := CanTransitionOocyte(from, OocyteFertilized)
		want := from == OocyteMature
		if got != want {
			t.Errorf("CanTransitionOocyte(%s, FERTILIZED) = %v, want %v", from, got, want)
		}
	}
}

func TestAllTransitionTargetsAreKnownStates(t *testing.T) {
	for from, targets := range oocyteTransitions {
		for to := range targets {
			if !ValidOocyteState(to) {
				t.Errorf("oocyte transition %s -> %s targets an unknown state", from, to)
			}
		}
	}
	for from, targets := range embryoTransitions {
		for to := range targets {
			if !ValidEmbryoState(to) {
				t.Errorf("embryo transition %s -> %s targets an unknown state", from, to)
			}
		}
	}
}

func TestValidStates(t *testing.T) {
	for _, s := range []OocyteState{
		OocyteVeryImmature, OocyteImmature, OocyteMature,
		OocyteFertilized, OocyteDiscarded, OocyteCryopreserved,
	} {
		if !ValidOocyteState(s) {
			t.Errorf("ValidOocyteState(%s) = false", s)
		}
	}
	if ValidOocyteState("") || ValidOocyteState("mature") {
		t.Error("lowercase or empty oocyte state should be invalid")
	}

	for _, s := range []EmbryoState{
		EmbryoDeveloping, EmbryoTransferred, EmbryoCryopreserved, EmbryoDiscarded,
	} {
		if !ValidEmbryoState(s) {
			t.Errorf("ValidEmbryoState(%s) = false", s)
		}
	}
	if ValidEmbryoState("") || ValidEmbryoState("developing") {
		t.Error("lowercase or empty embryo state should be invalid")
	}
}

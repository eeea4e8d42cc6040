package models

import (
	"math"
	"strings"
	"testing"
)

func TestNewNeutrinoDefaults(t *testing.T) {
	n := NewNeutrino()

	if n.ID() != InvalidInstanceID {
		t.Errorf("Expected invalid id, got %d", n.ID())
	}
	if n.MCSTIndex() != InvalidMCSTIndex {
		t.Errorf("Expected invalid mcst index, got %d", n.MCSTIndex())
	}
	if n.MCTIndex() != InvalidMCTIndex {
		t.Errorf("Expected invalid mct index, got %d", n.MCTIndex())
	}
	if n.NuTrackID() != InvalidUint || n.LeptonTrackID() != InvalidUint {
		t.Errorf("Expected invalid track ids, got %d and %d", n.NuTrackID(), n.LeptonTrackID())
	}

	codes := map[string]int64{
		"current_type":     int64(n.CurrentType()),
		"interaction_type": int64(n.InteractionType()),
		"interaction_mode": int64(n.InteractionMode()),
		"target":           int64(n.Target()),
		"nucleon":          int64(n.Nucleon()),
		"quark":            int64(n.Quark()),
	}
	for name, v := range codes {
		if v != -1 {
			t.Errorf("Expected %s to default to -1, got %d", name, v)
		}
	}

	floats := map[string]float64{
		"w":              n.HadronicInvariantMass(),
		"x":              n.BjorkenX(),
		"y":              n.Inelasticity(),
		"qsqr":           n.MomentumTransfer(),
		"theta":          n.Theta(),
		"px":             n.Px(),
		"py":             n.Py(),
		"pz":             n.Pz(),
		"vtx.x":          n.X(),
		"vtx.y":          n.Y(),
		"vtx.z":          n.Z(),
		"vtx.t":          n.T(),
		"energy_init":    n.EnergyInit(),
		"energy_deposit": n.EnergyDeposit(),
	}
	for name, v := range floats {
		if v != 0 {
			t.Errorf("Expected %s to default to 0, got %g", name, v)
		}
	}

	if n.DistanceTravel() != -1 {
		t.Errorf("Expected distance travel -1, got %g", n.DistanceTravel())
	}
	if n.PDGCode() != 0 {
		t.Errorf("Expected pdg 0, got %d", n.PDGCode())
	}
	if n.CreationProcess() != "" {
		t.Errorf("Expected empty process, got %q", n.CreationProcess())
	}
	if n.NumVoxels() != 0 {
		t.Errorf("Expected 0 voxels, got %d", n.NumVoxels())
	}
	if len(n.ChildrenIDs()) != 0 {
		t.Errorf("Expected no children, got %v", n.ChildrenIDs())
	}
}

func TestNeutrinoMomentum(t *testing.T) {
	tests := []struct {
		name       string
		px, py, pz float64
		want       float64
	}{
		{"zero", 0, 0, 0, 0},
		{"axis", 0, 0, 2.5, 2.5},
		{"3-4-12", 3, 4, 12, 13},
		{"negative", -3, -4, 0, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNeutrino()
			n.SetMomentum(tt.px, tt.py, tt.pz)
			if n.Px() != tt.px || n.Py() != tt.py || n.Pz() != tt.pz {
				t.Errorf("Expected (%g, %g, %g), got (%g, %g, %g)", tt.px, tt.py, tt.pz, n.Px(), n.Py(), n.Pz())
			}
			if math.Abs(n.P()-tt.want) > 1e-12 {
				t.Errorf("Expected |p| %g, got %g", tt.want, n.P())
			}
		})
	}
}

func TestNeutrinoMomentumIsRecomputed(t *testing.T) {
	n := NewNeutrino()
	n.SetMomentum(1, 0, 0)
	if n.P() != 1 {
		t.Fatalf("Expected |p| 1, got %g", n.P())
	}
	n.SetMomentum(0, 6, 8)
	if n.P() != 10 {
		t.Errorf("Expected |p| 10 after update, got %g", n.P())
	}
}

func TestNeutrinoPosition(t *testing.T) {
	points := [][4]float64{
		{1, 2, 3, 100},
		{-0.5, 1e6, -1e-9, 0},
		{0, 0, 0, 0},
		{math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64, 42},
	}

	for _, p := range points {
		a := NewNeutrino()
		a.SetPositionXYZT(p[0], p[1], p[2], p[3])
		if a.X() != p[0] || a.Y() != p[1] || a.Z() != p[2] || a.T() != p[3] {
			t.Errorf("Expected %v, got (%g, %g, %g, %g)", p, a.X(), a.Y(), a.Z(), a.T())
		}

		b := NewNeutrino()
		b.SetPosition(NewVertex(p[0], p[1], p[2], p[3]))
		if a.Position() != b.Position() {
			t.Errorf("Expected both position setters to agree, got %s and %s", a.Position(), b.Position())
		}
	}
}

func TestNeutrinoSetters(t *testing.T) {
	n := NewNeutrino()
	n.SetID(3)
	n.SetMCSTIndex(0)
	n.SetMCTIndex(7)
	n.SetCurrentType(CurrentCC)
	n.SetInteractionMode(ModeDIS)
	n.SetInteractionType(InteractionCCDIS)
	n.SetTarget(1000180400)
	n.SetNucleon(2112)
	n.SetQuark(2)
	n.SetHadronicInvariantMass(1.8)
	n.SetBjorkenX(0.3)
	n.SetInelasticity(0.6)
	n.SetMomentumTransfer(1.2)
	n.SetTheta(0.25)
	n.SetPDGCode(14)
	n.SetNuTrackID(1)
	n.SetDistanceTravel(12.5)
	n.SetEnergyInit(2500)
	n.SetEnergyDeposit(800)
	n.SetCreationProcess("primary")
	n.SetNumVoxels(120)

	if n.ID() != 3 || n.MCSTIndex() != 0 || n.MCTIndex() != 7 {
		t.Errorf("Expected indices (3, 0, 7), got (%d, %d, %d)", n.ID(), n.MCSTIndex(), n.MCTIndex())
	}
	if n.CurrentType() != CurrentCC || n.InteractionMode() != ModeDIS || n.InteractionType() != InteractionCCDIS {
		t.Errorf("Unexpected classification %d/%d/%d", n.CurrentType(), n.InteractionMode(), n.InteractionType())
	}
	if n.Target() != 1000180400 || n.Nucleon() != 2112 || n.Quark() != 2 {
		t.Errorf("Unexpected target/nucleon/quark %d/%d/%d", n.Target(), n.Nucleon(), n.Quark())
	}
	if n.HadronicInvariantMass() != 1.8 || n.BjorkenX() != 0.3 || n.Inelasticity() != 0.6 ||
		n.MomentumTransfer() != 1.2 || n.Theta() != 0.25 {
		t.Errorf("Unexpected kinematics W=%g x=%g y=%g Q2=%g theta=%g",
			n.HadronicInvariantMass(), n.BjorkenX(), n.Inelasticity(), n.MomentumTransfer(), n.Theta())
	}
	if n.PDGCode() != 14 || n.NuTrackID() != 1 {
		t.Errorf("Unexpected pdg %d or nu track id %d", n.PDGCode(), n.NuTrackID())
	}
	if n.DistanceTravel() != 12.5 || n.EnergyInit() != 2500 || n.EnergyDeposit() != 800 {
		t.Errorf("Unexpected deposition %g/%g/%g", n.DistanceTravel(), n.EnergyInit(), n.EnergyDeposit())
	}
	if n.CreationProcess() != "primary" || n.NumVoxels() != 120 {
		t.Errorf("Unexpected process %q or voxels %d", n.CreationProcess(), n.NumVoxels())
	}
}

func TestNeutrinoSettersAcceptAnyValue(t *testing.T) {
	n := NewNeutrino()
	n.SetTheta(-100)
	n.SetEnergyInit(-1)
	n.SetCurrentType(math.MaxInt16)
	n.SetNumVoxels(-5)

	if n.Theta() != -100 || n.EnergyInit() != -1 || n.CurrentType() != math.MaxInt16 || n.NumVoxels() != -5 {
		t.Error("Expected out-of-range values to be stored unchanged")
	}
}

func TestLeptonTrackIDDoesNotTouchNuTrackID(t *testing.T) {
	n := NewNeutrino()
	n.SetNuTrackID(5)
	n.SetLeptonTrackID(9)

	if n.LeptonTrackID() != 9 {
		t.Errorf("Expected lepton track id 9, got %d", n.LeptonTrackID())
	}
	if n.NuTrackID() != 5 {
		t.Errorf("Expected nu track id to stay 5, got %d", n.NuTrackID())
	}

	fresh := NewNeutrino()
	fresh.SetLeptonTrackID(2)
	if fresh.NuTrackID() != InvalidUint {
		t.Errorf("Expected nu track id to stay invalid, got %d", fresh.NuTrackID())
	}
}

func TestNeutrinoChildren(t *testing.T) {
	n := NewNeutrino()
	n.AddChildID(1)
	n.AddChildID(2)

	ids := n.ChildrenIDs()
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("Expected children [1 2], got %v", ids)
	}

	ids[0] = 99
	if n.ChildrenIDs()[0] != 1 {
		t.Error("Expected ChildrenIDs to return a copy")
	}

	src := []InstanceID{4, 5}
	n.SetChildrenIDs(src)
	src[0] = 0
	if got := n.ChildrenIDs(); len(got) != 2 || got[0] != 4 {
		t.Errorf("Expected SetChildrenIDs to copy its input, got %v", got)
	}
}

func TestNeutrinoCloneIsDeep(t *testing.T) {
	n := NewNeutrino()
	n.AddChildID(1)
	c := n.Clone()
	c.AddChildID(2)
	c.SetChildrenIDs([]InstanceID{8})

	if got := n.ChildrenIDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected original children untouched, got %v", got)
	}
}

func TestNeutrinoDump(t *testing.T) {
	n := NewNeutrino()
	n.SetPDGCode(-12)
	n.SetCurrentType(CurrentNC)
	n.SetInteractionMode(ModeRes)
	n.SetPositionXYZT(1, 2, 3, 100)
	n.SetCreationProcess("primary")
	n.SetLeptonTrackID(4)

	out := n.Dump()
	for _, want := range []string{
		"ID invalid",
		"MCST index invalid",
		"Lepton track ID 4",
		"Nu track ID invalid",
		"NC",
		"RES",
		"PDG -12",
		"(1, 2, 3, 100)",
		"Distance travel -1",
		`"primary"`,
		"Voxels 0",
		"Children IDs []",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected dump to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Count(out, "\n") < 5 {
		t.Errorf("Expected a multi-line dump, got:\n%s", out)
	}

	if s := n.String(); !strings.Contains(s, "pdg=-12") || strings.Contains(s, "\n") {
		t.Errorf("Expected one-line summary with pdg, got %q", s)
	}
}

func TestScenarioDefaultRecordIntoSet(t *testing.T) {
	r := NewNeutrino()
	if uint64(r.ID()) != InvalidIndex {
		t.Errorf("Expected id to be the invalid index, got %d", r.ID())
	}
	if r.PDGCode() != 0 {
		t.Errorf("Expected pdg 0, got %d", r.PDGCode())
	}

	r.SetPositionXYZT(1.0, 2.0, 3.0, 100.0)
	if r.X() != 1.0 || r.T() != 100.0 {
		t.Errorf("Expected x=1 t=100, got x=%g t=%g", r.X(), r.T())
	}

	set := NewNeutrinoSet()
	set.Append(r)
	records := set.AsSlice()
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if records[0].X() != 1.0 {
		t.Errorf("Expected stored x=1, got %g", records[0].X())
	}
}

package models

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Neutrino holds the generator-level truth of one neutrino interaction:
// classification codes, interaction kinematics, the incoming neutrino's
// momentum and vertex, and links into sibling truth collections.
//
// A Neutrino has no overall validity. Each index field is either a real index
// or its sentinel, and setters accept any input without checks. Use
// NewNeutrino to get a defaulted record; the Go zero value puts 0 in index
// fields, which is a valid index.
type Neutrino struct {
	id        InstanceID
	mcstIndex MCSTIndex
	mctIndex  MCTIndex

	nuTrackID     uint32
	leptonTrackID uint32

	currentType     int16
	interactionMode int16
	interactionType int16

	target  int32
	nucleon int32 // 2212 or 2112 for the struck nucleon
	quark   int32 // struck quark, DIS only

	w     float64 // hadronic invariant mass
	x     float64 // Bjorken x
	y     float64 // inelasticity
	qsqr  float64 // Q^2
	theta float64 // lepton scattering angle

	pdg        int32
	px, py, pz float64
	vtx        Vertex

	distTravel    float64 // -1 unless a travelled distance applies
	energyInit    float64
	energyDeposit float64
	process       string
	numVoxels     int32

	childrenIDs []InstanceID // ids in the same owning collection
}

// NewNeutrino returns a record with every field at its unset default
func NewNeutrino() Neutrino {
	return Neutrino{
		id:              InvalidInstanceID,
		mcstIndex:       InvalidMCSTIndex,
		mctIndex:        InvalidMCTIndex,
		nuTrackID:       InvalidUint,
		leptonTrackID:   InvalidUint,
		currentType:     Unclassified,
		interactionMode: Unclassified,
		interactionType: Unclassified,
		target:          -1,
		nucleon:         -1,
		quark:           -1,
		distTravel:      -1,
	}
}

// Clone returns a deep copy of the record
func (n Neutrino) Clone() Neutrino {
	n.childrenIDs = slices.Clone(n.childrenIDs)
	return n
}

// ID returns the id of this record in its owning collection. MCSTIndex and
// MCTIndex link into the sibling shower and track collections.
func (n Neutrino) ID() InstanceID { return n.id }
func (n Neutrino) MCSTIndex() MCSTIndex { return n.mcstIndex }
func (n Neutrino) MCTIndex() MCTIndex { return n.mctIndex }
// Classification codes and the struck target, nucleon and quark PDG codes
func (n Neutrino) CurrentType() int16 { return n.currentType }
func (n Neutrino) InteractionType() int16 { return n.interactionType }
func (n Neutrino) InteractionMode() int16 { return n.interactionMode }
func (n Neutrino) Target() int32 { return n.target }
func (n Neutrino) Nucleon() int32 { return n.nucleon }
func (n Neutrino) Quark() int32 { return n.quark }

// Interaction kinematics
func (n Neutrino) MomentumTransfer() float64 { return n.qsqr }
func (n Neutrino) BjorkenX() float64 { return n.x }
func (n Neutrino) HadronicInvariantMass() float64 { return n.w }
func (n Neutrino) Inelasticity() float64 { return n.y }
func (n Neutrino) Theta() float64 { return n.theta }

// Track ids, PDG code and momentum components of the incoming neutrino
func (n Neutrino) NuTrackID() uint32 { return n.nuTrackID }
func (n Neutrino) LeptonTrackID() uint32 { return n.leptonTrackID }
func (n Neutrino) PDGCode() int32 { return n.pdg }
func (n Neutrino) Px() float64 { return n.px }
func (n Neutrino) Py() float64 { return n.py }
func (n Neutrino) Pz() float64 { return n.pz }

// P returns the momentum magnitude
func (n Neutrino) P() float64 {
	return math.Sqrt(n.px*n.px + n.py*n.py + n.pz*n.pz)
}

// Position returns the interaction vertex; X, Y, Z and T read its coordinates
func (n Neutrino) Position() Vertex { return n.vtx }
func (n Neutrino) X() float64 { return n.vtx.X() }
func (n Neutrino) Y() float64 { return n.vtx.Y() }
func (n Neutrino) Z() float64 { return n.vtx.Z() }
func (n Neutrino) T() float64 { return n.vtx.T() }

// Energy bookkeeping and the creation process
func (n Neutrino) DistanceTravel() float64 { return n.distTravel }
func (n Neutrino) EnergyInit() float64 { return n.energyInit }
func (n Neutrino) EnergyDeposit() float64 { return n.energyDeposit }
func (n Neutrino) CreationProcess() string { return n.process }
func (n Neutrino) NumVoxels() int32 { return n.numVoxels }

// ChildrenIDs returns a copy of the child record ids
func (n Neutrino) ChildrenIDs() []InstanceID {
	return slices.Clone(n.childrenIDs)
}

// Setters store their argument as given, sentinels included
func (n *Neutrino) SetID(id InstanceID) { n.id = id }
func (n *Neutrino) SetMCSTIndex(i MCSTIndex) { n.mcstIndex = i }
func (n *Neutrino) SetMCTIndex(i MCTIndex) { n.mctIndex = i }
func (n *Neutrino) SetCurrentType(c int16) { n.currentType = c }
func (n *Neutrino) SetInteractionType(t int16) { n.interactionType = t }
func (n *Neutrino) SetInteractionMode(m int16) { n.interactionMode = m }
func (n *Neutrino) SetTarget(target int32) { n.target = target }
func (n *Neutrino) SetNucleon(nucleon int32) { n.nucleon = nucleon }
func (n *Neutrino) SetQuark(quark int32) { n.quark = quark }
func (n *Neutrino) SetMomentumTransfer(q2 float64) { n.qsqr = q2 }
func (n *Neutrino) SetBjorkenX(x float64) { n.x = x }
func (n *Neutrino) SetInelasticity(y float64) { n.y = y }
func (n *Neutrino) SetTheta(theta float64) { n.theta = theta }
func (n *Neutrino) SetNuTrackID(id uint32) { n.nuTrackID = id }
func (n *Neutrino) SetLeptonTrackID(id uint32) { n.leptonTrackID = id }
func (n *Neutrino) SetPDGCode(code int32) { n.pdg = code }
func (n *Neutrino) SetDistanceTravel(dist float64) { n.distTravel = dist }
func (n *Neutrino) SetEnergyInit(e float64) { n.energyInit = e }
func (n *Neutrino) SetEnergyDeposit(e float64) { n.energyDeposit = e }
func (n *Neutrino) SetCreationProcess(proc string) { n.process = proc }
func (n *Neutrino) SetNumVoxels(count int32) { n.numVoxels = count }
func (n *Neutrino) SetHadronicInvariantMass(w float64) { n.w = w }

// SetMomentum sets all three momentum components at once
func (n *Neutrino) SetMomentum(px, py, pz float64) {
	n.px, n.py, n.pz = px, py, pz
}

// SetPosition sets the interaction vertex
func (n *Neutrino) SetPosition(vtx Vertex) {
	n.vtx = vtx
}

// SetPositionXYZT sets the interaction vertex from its coordinates
func (n *Neutrino) SetPositionXYZT(x, y, z, t float64) {
	n.vtx = NewVertex(x, y, z, t)
}

// SetChildrenIDs replaces the child record ids
func (n *Neutrino) SetChildrenIDs(ids []InstanceID) {
	n.childrenIDs = slices.Clone(ids)
}

// AddChildID appends one child record id
func (n *Neutrino) AddChildID(id InstanceID) {
	n.childrenIDs = append(n.childrenIDs, id)
}

// String returns a one-line summary
func (n Neutrino) String() string {
	return fmt.Sprintf("Neutrino{id=%s pdg=%d %s/%s E=%g vtx=%s}",
		formatInstanceID(n.id), n.pdg, CurrentName(n.currentType), ModeName(n.interactionMode),
		n.energyInit, n.vtx)
}

// Dump returns a multi-line description of every field
func (n Neutrino) Dump() string {
	var b strings.Builder
	b.WriteString("  Neutrino\n")
	fmt.Fprintf(&b, "    ID %s  MCST index %s  MCT index %s\n",
		formatInstanceID(n.id), formatIndex(uint64(n.mcstIndex), n.mcstIndex.IsValid()),
		formatIndex(uint64(n.mctIndex), n.mctIndex.IsValid()))
	fmt.Fprintf(&b, "    Nu track ID %s  Lepton track ID %s\n",
		formatTrackID(n.nuTrackID), formatTrackID(n.leptonTrackID))
	fmt.Fprintf(&b, "    Current %d (%s)  Mode %d (%s)  Type %d\n",
		n.currentType, CurrentName(n.currentType), n.interactionMode, ModeName(n.interactionMode),
		n.interactionType)
	fmt.Fprintf(&b, "    Target %d  Nucleon %d  Quark %d\n", n.target, n.nucleon, n.quark)
	fmt.Fprintf(&b, "    W %g  x %g  y %g  Q^2 %g  theta %g\n", n.w, n.x, n.y, n.qsqr, n.theta)
	fmt.Fprintf(&b, "    PDG %d  Momentum (%g, %g, %g) |p| %g\n", n.pdg, n.px, n.py, n.pz, n.P())
	fmt.Fprintf(&b, "    Vertex (x, y, z, t) = %s\n", n.vtx)
	fmt.Fprintf(&b, "    Distance travel %g  Initial energy %g  Deposited energy %g\n",
		n.distTravel, n.energyInit, n.energyDeposit)
	fmt.Fprintf(&b, "    Creation process %q  Voxels %d\n", n.process, n.numVoxels)
	fmt.Fprintf(&b, "    Children IDs %v\n", n.childrenIDs)
	return b.String()
}

func formatInstanceID(id InstanceID) string {
	return formatIndex(uint64(id), id.IsValid())
}

func formatTrackID(id uint32) string {
	return formatIndex(uint64(id), id != InvalidUint)
}

func formatIndex(v uint64, valid bool) string {
	if !valid {
		return "invalid"
	}
	return fmt.Sprintf("%d", v)
}

package generator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/GoSim-25-26J-441/nutruth/pkg/config"
	"github.com/GoSim-25-26J-441/nutruth/pkg/logger"
	"github.com/GoSim-25-26J-441/nutruth/pkg/models"
	"github.com/GoSim-25-26J-441/nutruth/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// ErrNoEvents is returned when asked to generate zero or fewer interactions
var ErrNoEvents = errors.New("events must be positive")

// Physics constants in GeV
const (
	nucleonMass = 0.938272
	gevToMeV    = 1000.0

	pdgProton  = 2212
	pdgNeutron = 2112

	primaryProcess = "primary"
)

// checkEvery is how many interactions a shard produces between context checks
const checkEvery = 256

// Generator synthesizes neutrino interactions and translates them into
// Neutrino truth records
type Generator struct {
	cfg *config.Config
}

// New creates a generator for cfg. cfg is expected to be validated.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Generate produces cfg.Events records. Work is split into contiguous shards,
// one per worker, each with its own source seeded seed+shard, so the output
// only depends on the seed and the worker count. A zero seed draws one base
// seed from the clock for the whole run. Record ids equal positions.
func (g *Generator) Generate(ctx context.Context) (*models.NeutrinoSet, error) {
	total := g.cfg.Events
	if total <= 0 {
		return nil, fmt.Errorf("generate %d interactions: %w", total, ErrNoEvents)
	}

	workers := g.cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	seed := g.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	shards := make([][]models.Neutrino, workers)
	group, ctx := errgroup.WithContext(ctx)
	for shard := range workers {
		start := shard * total / workers
		end := (shard + 1) * total / workers
		group.Go(func() error {
			records, err := g.generateShard(ctx, seed+int64(shard), shard, start, end)
			if err != nil {
				return err
			}
			shards[shard] = records
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("generate interactions: %w", err)
	}

	records := make([]models.Neutrino, 0, total)
	for _, shard := range shards {
		records = append(records, shard...)
	}

	set := models.NewNeutrinoSet()
	set.Emplace(&records)
	set.AssignIDs()

	logger.Debug("interactions generated", "events", set.Len(), "workers", workers, "seed", seed)
	return set, nil
}

func (g *Generator) generateShard(ctx context.Context, seed int64, shard, start, end int) ([]models.Neutrino, error) {
	rng := utils.NewRandSource(seed)

	records := make([]models.Neutrino, 0, end-start)
	for pos := start; pos < end; pos++ {
		if (pos-start)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		in := g.sample(rng)
		records = append(records, g.translate(in, pos))
	}

	logger.Debug("shard done", "shard", shard, "start", start, "end", end)
	return records, nil
}

// interaction is one sampled neutrino interaction before translation
type interaction struct {
	energy  float64 // GeV
	current int16
	mode    int16
	nucleon int32
	quark   int32
	x, y    float64
	q2, w   float64
	theta   float64
	vertex  models.Vertex
}

func (g *Generator) sample(rng *utils.RandSource) interaction {
	in := interaction{
		energy:  g.sampleEnergy(rng),
		current: models.CurrentNC,
		nucleon: pdgNeutron,
		quark:   -1,
	}
	if rng.BernoulliBool(g.cfg.Channels.CCFraction) {
		in.current = models.CurrentCC
	}
	if rng.BernoulliBool(g.cfg.Target.ProtonFraction) {
		in.nucleon = pdgProton
	}
	in.mode = g.sampleMode(rng)

	switch in.mode {
	case models.ModeDIS:
		in.x = rng.UniformFloat64(0.05, 1)
		in.y = rng.UniformFloat64(0.05, 0.95)
		in.quark = sampleQuark(rng, in.nucleon)
	case models.ModeRes:
		in.x = rng.UniformFloat64(0.3, 0.9)
		in.y = rng.UniformFloat64(0.05, 0.6)
	case models.ModeCoh:
		// coherent scattering is off the whole nucleus: tiny x and no struck nucleon
		in.x = rng.UniformFloat64(0.001, 0.05)
		in.y = rng.UniformFloat64(0.01, 0.3)
		in.nucleon = -1
	default:
		in.x = 1
		in.y = rng.UniformFloat64(0.01, 0.4)
	}

	in.q2, in.w = kinematics(in.energy, in.x, in.y)
	in.theta = scatteringAngle(in.energy, in.y, in.q2)

	det := g.cfg.Detector
	in.vertex = models.NewVertex(
		rng.UniformFloat64(det.Min[0], det.Max[0]),
		rng.UniformFloat64(det.Min[1], det.Max[1]),
		rng.UniformFloat64(det.Min[2], det.Max[2]),
		rng.UniformFloat64(det.TimeWindowNs[0], det.TimeWindowNs[1]),
	)
	return in
}

func (g *Generator) sampleEnergy(rng *utils.RandSource) float64 {
	beam := g.cfg.Beam
	if beam.Spectrum == config.SpectrumNormal {
		mean := (beam.EnergyMinGeV + beam.EnergyMaxGeV) / 2
		sigma := (beam.EnergyMaxGeV - beam.EnergyMinGeV) / 4
		if sigma == 0 {
			return mean
		}
		return rng.TruncNormFloat64(mean, sigma, beam.EnergyMinGeV, beam.EnergyMaxGeV)
	}
	return rng.UniformFloat64(beam.EnergyMinGeV, beam.EnergyMaxGeV)
}

var modeOrder = []int16{models.ModeQE, models.ModeRes, models.ModeDIS, models.ModeCoh, models.ModeMEC}

func (g *Generator) sampleMode(rng *utils.RandSource) int16 {
	m := g.cfg.Channels.Modes
	idx := rng.WeightedIndex([]float64{m.QE, m.Res, m.DIS, m.Coh, m.MEC})
	if idx < 0 {
		return models.Unclassified
	}
	return modeOrder[idx]
}

// sampleQuark picks a valence quark of the struck nucleon (uud or udd)
func sampleQuark(rng *utils.RandSource, nucleon int32) int32 {
	up := 2.0 / 3.0
	if nucleon == pdgNeutron {
		up = 1.0 / 3.0
	}
	if rng.BernoulliBool(up) {
		return 2
	}
	return 1
}

// kinematics returns Q^2 = 2 M x y E and W = sqrt(M^2 + Q^2 (1/x - 1))
func kinematics(energy, x, y float64) (q2, w float64) {
	q2 = 2 * nucleonMass * x * y * energy
	w2 := nucleonMass*nucleonMass + q2*(1/x-1)
	return q2, math.Sqrt(math.Max(w2, 0))
}

// scatteringAngle returns the lepton angle from Q^2 = 2 E E' (1 - cos theta),
// treating both leptons as massless
func scatteringAngle(energy, y, q2 float64) float64 {
	outgoing := energy * (1 - y)
	if outgoing <= 0 {
		return 0
	}
	cos := utils.ClampFloat64(1-q2/(2*energy*outgoing), -1, 1)
	return math.Acos(cos)
}

// translate fills a truth record for the interaction at position pos
func (g *Generator) translate(in interaction, pos int) models.Neutrino {
	beam := g.cfg.Beam
	dir := beam.Direction
	norm := math.Sqrt(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2])
	p := in.energy * gevToMeV

	rec := models.NewNeutrino()
	// positions past the MCTIndex range keep the sentinel
	if pos < int(models.InvalidMCTIndex) {
		rec.SetMCTIndex(models.MCTIndex(pos))
	}
	rec.SetLeptonTrackID(uint32(pos + 1))
	rec.SetCurrentType(in.current)
	rec.SetInteractionMode(in.mode)
	rec.SetInteractionType(models.InteractionTypeFor(in.current, in.mode))
	rec.SetTarget(g.cfg.Target.PDG)
	rec.SetNucleon(in.nucleon)
	rec.SetQuark(in.quark)
	rec.SetHadronicInvariantMass(in.w)
	rec.SetBjorkenX(in.x)
	rec.SetInelasticity(in.y)
	rec.SetMomentumTransfer(in.q2)
	rec.SetTheta(in.theta)
	rec.SetPDGCode(beam.PDG)
	rec.SetMomentum(p*dir[0]/norm, p*dir[1]/norm, p*dir[2]/norm)
	rec.SetPosition(in.vertex)
	rec.SetEnergyInit(p)
	rec.SetCreationProcess(primaryProcess)
	return rec
}

package config

// Config represents the truth generator configuration
type Config struct {
	LogLevel string   `yaml:"log_level"`
	Seed     int64    `yaml:"seed"`
	Events   int      `yaml:"events"`
	Workers  int      `yaml:"workers"` // 0 means one
	Beam     Beam     `yaml:"beam"`
	Target   Target   `yaml:"target"`
	Channels Channels `yaml:"channels"`
	Detector Detector `yaml:"detector"`
}

// Beam describes the incoming neutrino flux
type Beam struct {
	PDG          int32     `yaml:"pdg"`
	Spectrum     string    `yaml:"spectrum"` // uniform or normal
	EnergyMinGeV float64   `yaml:"energy_min_gev"`
	EnergyMaxGeV float64   `yaml:"energy_max_gev"`
	Direction    []float64 `yaml:"direction"`
}

// Target describes the nucleus the beam interacts with
type Target struct {
	PDG            int32   `yaml:"pdg"`
	ProtonFraction float64 `yaml:"proton_fraction"`
}

// Channels controls how interactions are classified
type Channels struct {
	CCFraction float64     `yaml:"cc_fraction"`
	Modes      ModeWeights `yaml:"modes"`
}

// ModeWeights are relative weights of the interaction modes
type ModeWeights struct {
	QE  float64 `yaml:"qe"`
	Res float64 `yaml:"res"`
	DIS float64 `yaml:"dis"`
	Coh float64 `yaml:"coh"`
	MEC float64 `yaml:"mec"`
}

// Total returns the sum of all weights
func (m ModeWeights) Total() float64 {
	return m.QE + m.Res + m.DIS + m.Coh + m.MEC
}

// Detector is the box vertices are drawn in (cm) and the time window (ns)
type Detector struct {
	Min          []float64 `yaml:"min"`
	Max          []float64 `yaml:"max"`
	TimeWindowNs []float64 `yaml:"time_window_ns"`
}

// Spectrum names
const (
	SpectrumUniform = "uniform"
	SpectrumNormal  = "normal"
)

// DefaultConfig returns a muon-neutrino beam on argon in a MicroBooNE-sized box
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Seed:     1,
		Events:   100,
		Workers:  1,
		Beam: Beam{
			PDG:          14,
			Spectrum:     SpectrumUniform,
			EnergyMinGeV: 0.2,
			EnergyMaxGeV: 5.0,
			Direction:    []float64{0, 0, 1},
		},
		Target: Target{
			PDG:            1000180400,
			ProtonFraction: 0.45,
		},
		Channels: Channels{
			CCFraction: 0.7,
			Modes: ModeWeights{
				QE:  0.4,
				Res: 0.3,
				DIS: 0.25,
				Coh: 0.05,
			},
		},
		Detector: Detector{
			Min:          []float64{0, -116.5, 0},
			Max:          []float64{256.35, 116.5, 1036.8},
			TimeWindowNs: []float64{0, 1600},
		},
	}
}

package config

import (
	"fmt"
	"math"
	"os"
	"strings"
)

// LoadConfig loads and parses a configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	cfg, err := ParseConfigYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks a configuration built in code, e.g. after flag overrides
func (c *Config) Validate() error {
	return validateConfig(c)
}

// validateConfig performs validation on the configuration
func validateConfig(cfg *Config) error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.Events <= 0 {
		return fmt.Errorf("events must be positive, got %d", cfg.Events)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", cfg.Workers)
	}

	if err := validateBeam(&cfg.Beam); err != nil {
		return fmt.Errorf("beam validation failed: %w", err)
	}
	if err := validateFraction("target.proton_fraction", cfg.Target.ProtonFraction); err != nil {
		return err
	}
	if err := validateChannels(&cfg.Channels); err != nil {
		return fmt.Errorf("channels validation failed: %w", err)
	}
	if err := validateDetector(&cfg.Detector); err != nil {
		return fmt.Errorf("detector validation failed: %w", err)
	}

	return nil
}

func validateBeam(beam *Beam) error {
	switch beam.Spectrum {
	case SpectrumUniform, SpectrumNormal:
	default:
		return fmt.Errorf("invalid spectrum: %s (must be uniform or normal)", beam.Spectrum)
	}
	if beam.EnergyMinGeV <= 0 {
		return fmt.Errorf("energy_min_gev must be positive, got %g", beam.EnergyMinGeV)
	}
	if beam.EnergyMaxGeV < beam.EnergyMinGeV {
		return fmt.Errorf("energy_max_gev (%g) must not be below energy_min_gev (%g)", beam.EnergyMaxGeV, beam.EnergyMinGeV)
	}
	if len(beam.Direction) != 3 {
		return fmt.Errorf("direction must have 3 components, got %d", len(beam.Direction))
	}
	norm := math.Sqrt(beam.Direction[0]*beam.Direction[0] + beam.Direction[1]*beam.Direction[1] + beam.Direction[2]*beam.Direction[2])
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return fmt.Errorf("direction must be a finite non-zero vector")
	}
	return nil
}

func validateChannels(ch *Channels) error {
	if err := validateFraction("cc_fraction", ch.CCFraction); err != nil {
		return err
	}
	m := ch.Modes
	for name, w := range map[string]float64{"qe": m.QE, "res": m.Res, "dis": m.DIS, "coh": m.Coh, "mec": m.MEC} {
		if w < 0 {
			return fmt.Errorf("mode weight %s cannot be negative", name)
		}
	}
	if m.Total() <= 0 {
		return fmt.Errorf("mode weights must have a positive sum")
	}
	return nil
}

func validateDetector(det *Detector) error {
	if len(det.Min) != 3 || len(det.Max) != 3 {
		return fmt.Errorf("min and max must have 3 components")
	}
	axes := []string{"x", "y", "z"}
	for i, axis := range axes {
		if det.Max[i] < det.Min[i] {
			return fmt.Errorf("max %s (%g) is below min %s (%g)", axis, det.Max[i], axis, det.Min[i])
		}
	}
	if len(det.TimeWindowNs) != 2 {
		return fmt.Errorf("time_window_ns must have 2 values, got %d", len(det.TimeWindowNs))
	}
	if det.TimeWindowNs[1] < det.TimeWindowNs[0] {
		return fmt.Errorf("time_window_ns end (%g) is before start (%g)", det.TimeWindowNs[1], det.TimeWindowNs[0])
	}
	return nil
}

func validateFraction(name string, v float64) error {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return fmt.Errorf("%s must be between 0 and 1, got %g", name, v)
	}
	return nil
}

package config

import (
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultGravity is the standard gravitational acceleration defined by
	// the CGPM (1901).
	DefaultGravity = 9.80665

	DefaultBarrierHeight  = 3.0      // V0 in eV
	DefaultEpsilon0       = 5.53e-3  // vacuum permittivity over e^2, eV^-1 A^-1
	DefaultEpsilonR       = 4.0      // relative permittivity of boron nitride
	DefaultWavenumber     = 0.512317 // sqrt(2m)/hbar in eV^-1/2 A^-1
	DefaultLayerThickness = 3.0      // Angstroms per layer
	DefaultStartThickness = 3.0      // approximate thickness of one layer
	DefaultThicknessStep  = 1e-4

	DefaultInitialRb = 0.0005 // s^-1, literature value for Rb-79
	DefaultInitialSr = 0.005  // s^-1, literature value for Sr-79
	// DefaultInitialNuclei is the initial number of Sr nuclei in units of
	// 10^12 nuclei: one micromole at the CODATA Avogadro constant.
	DefaultInitialNuclei = 1e-6 * 6.02214076e23 / 1e12

	DefaultOutlierSigma   = 5.0
	DefaultGridResolution = 250
	DefaultGridSpan       = 0.05
	DefaultMaxIterations  = 5_000_000
)

type Config struct {
	Gravity   float64         `yaml:"gravity"`
	Thickness ThicknessConfig `yaml:"thickness"`
	Decay     DecayConfig     `yaml:"decay"`
}

// ThicknessConfig holds the barrier constants and fit tuning for the
// tunnelling-thickness analysis.
type ThicknessConfig struct {
	BarrierHeight  float64 `yaml:"barrier_height"`
	Epsilon0       float64 `yaml:"epsilon0"`
	EpsilonR       float64 `yaml:"epsilon_r"`
	Wavenumber     float64 `yaml:"wavenumber"`
	LayerThickness float64 `yaml:"layer_thickness"`
	StartThickness float64 `yaml:"start_thickness"`
	Step           float64 `yaml:"step"`
	MaxIterations  int     `yaml:"max_iterations"`
}

// DecayConfig holds the initial guesses and fit tuning for the two-isotope
// decay analysis.
type DecayConfig struct {
	InitialRb      float64 `yaml:"initial_rb"`
	InitialSr      float64 `yaml:"initial_sr"`
	InitialNuclei  float64 `yaml:"initial_nuclei"`
	OutlierSigma   float64 `yaml:"outlier_sigma"`
	GridResolution int     `yaml:"grid_resolution"`
	GridSpan       float64 `yaml:"grid_span"`
}

func DefaultConfig() *Config {
	return &Config{
		Gravity: DefaultGravity,
		Thickness: ThicknessConfig{
			BarrierHeight:  DefaultBarrierHeight,
			Epsilon0:       DefaultEpsilon0,
			EpsilonR:       DefaultEpsilonR,
			Wavenumber:     DefaultWavenumber,
			LayerThickness: DefaultLayerThickness,
			StartThickness: DefaultStartThickness,
			Step:           DefaultThicknessStep,
			MaxIterations:  DefaultMaxIterations,
		},
		Decay: DecayConfig{
			InitialRb:      DefaultInitialRb,
			InitialSr:      DefaultInitialSr,
			InitialNuclei:  DefaultInitialNuclei,
			OutlierSigma:   DefaultOutlierSigma,
			GridResolution: DefaultGridResolution,
			GridSpan:       DefaultGridSpan,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Lambda is the image-charge constant ln(2) / (8 pi epsilon_r epsilon_0).
func (c ThicknessConfig) Lambda() float64 {
	return math.Ln2 / (8 * math.Pi * c.EpsilonR * c.Epsilon0)
}

// InnerDistance is the position of the inner image-charge turning point,
// 1.2 lambda / V0.
func (c ThicknessConfig) InnerDistance() float64 {
	return 1.2 * c.Lambda() / c.BarrierHeight
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSteps   = 100
	DefaultTol     = 1e-9
	DefaultMaxIter = 50
	DefaultDx      = 0.1
	DefaultIters   = 25
)

// Config describes one numlab study: which routine to run, on which named
// problem, with which numeric parameters.
type Config struct {
	Kind    string        `yaml:"kind"` // integrate, system, root, solve, eig
	Method  string        `yaml:"method"`
	Problem string        `yaml:"problem"`
	Steps   int           `yaml:"steps"`
	Tol     float64       `yaml:"tol"`
	MaxIter int           `yaml:"max_iter"`
	Dx      float64       `yaml:"dx"`
	Iters   int           `yaml:"iters"`
	Scale   bool          `yaml:"scale"`
	Pivot   bool          `yaml:"pivot"`
	Trace   bool          `yaml:"trace"`
	Initial InitialConfig `yaml:"initial"`
}

// InitialConfig overrides a problem's built-in initial data. Nil fields
// keep the problem defaults.
type InitialConfig struct {
	X0 *float64 `yaml:"x0,omitempty"`
	Y0 *float64 `yaml:"y0,omitempty"`
	XN *float64 `yaml:"xn,omitempty"`
	A  *float64 `yaml:"a,omitempty"`
	B  *float64 `yaml:"b,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Kind:    "integrate",
		Method:  "rk4",
		Problem: "exp",
		Steps:   DefaultSteps,
		Tol:     DefaultTol,
		MaxIter: DefaultMaxIter,
		Dx:      DefaultDx,
		Iters:   DefaultIters,
		Scale:   true,
		Pivot:   true,
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

// Package config resolves netgen run parameters.
//
// Priority: flags > env (NETGEN_*) > config file (netgen.toml) > defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is read when present and no other file is named.
const DefaultFile = "netgen.toml"

// EnvPrefix prefixes environment overrides, e.g. NETGEN_MEAN_DEGREE=6.
const EnvPrefix = "NETGEN_"

// Model names accepted by the "model" key.
const (
	ModelER        = "er"
	ModelBA        = "ba"
	ModelSW        = "sw"
	ModelLattice1D = "lattice1d"
	ModelLattice2D = "lattice2d"
	ModelComplete  = "complete"
	ModelStar      = "star"
	ModelWheel     = "wheel"
	ModelBipartite = "bipartite"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds one generation run.
type Config struct {
	Model         string  `koanf:"model"`
	Nodes         int     `koanf:"nodes"`
	P             float64 `koanf:"probability"`
	MeanDegree    float64 `koanf:"mean_degree"`
	M             int     `koanf:"m"`
	Radius        int     `koanf:"radius"`
	Rewire        float64 `koanf:"rewire"`
	Seed          uint64  `koanf:"seed"`
	Left          int     `koanf:"left"`
	LatticePolicy string  `koanf:"lattice_policy"`
	Spectrum      bool    `koanf:"spectrum"`
	LogLevel      string  `koanf:"log_level"`
	LogJSON       bool    `koanf:"log_json"`
	File          string  `koanf:"config"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"model":          ModelBA,
		"nodes":          10000,
		"probability":    0.0,
		"mean_degree":    4.0,
		"m":              3,
		"radius":         2,
		"rewire":         0.2,
		"seed":           uint64(0),
		"left":           0,
		"lattice_policy": "reject",
		"spectrum":       false,
		"log_level":      "info",
		"log_json":       false,
		"config":         "",
	}
}

// RegisterFlags adds one flag per key to fs. Flag defaults mirror the
// built-in defaults; posflag only overrides lower layers for flags the user
// actually set.
func RegisterFlags(fs *pflag.FlagSet) {
	d := defaults()
	fs.StringP("model", "g", d["model"].(string), "model: er|ba|sw|lattice1d|lattice2d|complete|star|wheel|bipartite")
	fs.IntP("nodes", "n", d["nodes"].(int), "number of nodes")
	fs.Float64P("probability", "p", d["probability"].(float64), "ER link probability (0 derives it from mean-degree)")
	fs.Float64("mean_degree", d["mean_degree"].(float64), "ER target mean degree when probability is 0")
	fs.IntP("m", "m", d["m"].(int), "BA links per new node")
	fs.IntP("radius", "r", d["radius"].(int), "SW/ring radius")
	fs.Float64("rewire", d["rewire"].(float64), "SW rewiring probability")
	fs.Uint64P("seed", "s", d["seed"].(uint64), "random seed (0 uses the clock)")
	fs.Int("left", d["left"].(int), "bipartite left part size (0 splits n in half)")
	fs.Bool("spectrum", d["spectrum"].(bool), "also report the adjacency spectral radius (small networks)")
	fs.String("lattice_policy", d["lattice_policy"].(string), "lattice2d non-square handling: reject|truncate")
	fs.String("log_level", d["log_level"].(string), "debug|info|warn|error")
	fs.Bool("log_json", d["log_json"].(bool), "emit JSON log records")
	fs.StringP("config", "c", d["config"].(string), "TOML config file (default "+DefaultFile+" if present)")
}

// Load loads configuration from defaults, config file, environment variables
// and flags. fs may be nil.
func Load(fs *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file. A named file must exist; the default one is optional.
	path, named := configPath(fs)
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if named || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if fs != nil {
		if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Model = strings.ToLower(cfg.Model)

	return &cfg, nil
}

// configPath picks the flag, then NETGEN_CONFIG, then DefaultFile.
func configPath(fs *pflag.FlagSet) (string, bool) {
	if fs != nil && fs.Changed("config") {
		if v, err := fs.GetString("config"); err == nil && v != "" {
			return v, true
		}
	}
	if v := os.Getenv(EnvPrefix + "CONFIG"); v != "" {
		return v, true
	}
	return DefaultFile, false
}

// Validate checks model-independent ranges; NaN fails every float check.
// Model-specific limits (m < n, 2r < n, square orders) are enforced by the
// builder.
func (c *Config) Validate() error {
	switch c.Model {
	case ModelER, ModelBA, ModelSW, ModelLattice1D, ModelLattice2D,
		ModelComplete, ModelStar, ModelWheel, ModelBipartite:
	default:
		return fmt.Errorf("model %q: %w", c.Model, ErrInvalidConfig)
	}
	if c.Nodes < 1 {
		return fmt.Errorf("nodes=%d must be >= 1: %w", c.Nodes, ErrInvalidConfig)
	}
	if !(c.P >= 0 && c.P <= 1) {
		return fmt.Errorf("probability=%g outside [0,1]: %w", c.P, ErrInvalidConfig)
	}
	if !(c.Rewire >= 0 && c.Rewire <= 1) {
		return fmt.Errorf("rewire=%g outside [0,1]: %w", c.Rewire, ErrInvalidConfig)
	}
	if !(c.MeanDegree >= 0) || math.IsInf(c.MeanDegree, 1) {
		return fmt.Errorf("mean_degree=%g must be finite and >= 0: %w", c.MeanDegree, ErrInvalidConfig)
	}
	if c.Left < 0 {
		return fmt.Errorf("left=%d must be >= 0: %w", c.Left, ErrInvalidConfig)
	}
	switch c.LatticePolicy {
	case "reject", "truncate":
	default:
		return fmt.Errorf("lattice_policy %q: %w", c.LatticePolicy, ErrInvalidConfig)
	}
	return nil
}

// LeftPart returns the bipartite left part size: Left when set, otherwise
// half of Nodes.
func (c *Config) LeftPart() int {
	if c.Left > 0 {
		return c.Left
	}
	return c.Nodes / 2
}

// Probability returns the ER link probability: P when set, otherwise
// MeanDegree/(Nodes-1) capped at 1.
func (c *Config) Probability() float64 {
	if c.P > 0 || c.Nodes < 2 {
		return c.P
	}
	p := c.MeanDegree / float64(c.Nodes-1)
	if p > 1 {
		return 1
	}
	return p
}

// mapProvider feeds a plain map into koanf.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) {
	return p, nil
}

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("not implemented")
}

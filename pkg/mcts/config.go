package mcts

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Randomized override of the root decision, used to diversify games (e.g. self-play).
// Picks among children whose visit count is close enough to the most visited one.
type NoiseSampling struct {
	// Applies only while move number (ply / 2) is below this value
	MoveWindow int `json:"move_window" yaml:"move_window"`
	// Maximum number of changed decisions in one game
	MaxModifications int32 `json:"max_modifications" yaml:"max_modifications"`
	// Children with N >= top - top * VisitFraction take part in the draw
	VisitFraction float64 `json:"visit_fraction" yaml:"visit_fraction"`
	// Sampling temperature, < 1 sharpens towards the most visited, > 1 flattens
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

type Config struct {
	TieBreak  BestChildPolicy `json:"tie_break" yaml:"tie_break"`
	MLHWeight float64         `json:"mlh_weight" yaml:"mlh_weight"`
	// Values >= this threshold are treated as a forced loss for the opponent
	ForcedLossThreshold float64        `json:"forced_loss_threshold" yaml:"forced_loss_threshold"`
	Noise               *NoiseSampling `json:"noise,omitempty" yaml:"noise,omitempty"`
}

const (
	DefaultTieBreak            BestChildPolicy = BestChildMostVisits
	DefaultMLHWeight           float64         = 0
	DefaultForcedLossThreshold float64         = 0.99
)

func DefaultConfig() *Config {
	return &Config{
		TieBreak:            DefaultTieBreak,
		MLHWeight:           DefaultMLHWeight,
		ForcedLossThreshold: DefaultForcedLossThreshold,
	}
}

func DefaultNoiseSampling() *NoiseSampling {
	return &NoiseSampling{
		MoveWindow:       15,
		MaxModifications: 3,
		VisitFraction:    0.1,
		Temperature:      1.0,
	}
}

func (c Config) String() string {
	builder := strings.Builder{}
	_ = json.NewEncoder(&builder).Encode(c)
	return builder.String()
}

// Set the tie-break mode used to pick the root move
func (c *Config) SetTieBreak(policy BestChildPolicy) *Config {
	c.TieBreak = policy
	return c
}

// Set the moves-left heuristic weight, 0 disables it
func (c *Config) SetMLHWeight(weight float64) *Config {
	c.MLHWeight = max(0, weight)
	return c
}

func (c *Config) SetForcedLossThreshold(threshold float64) *Config {
	c.ForcedLossThreshold = threshold
	return c
}

// Set the noise sampling policy, nil disables it
func (c *Config) SetNoise(noise *NoiseSampling) *Config {
	c.Noise = noise
	return c
}

// Whether the value is an overwhelming loss for the side owning the child
func (c *Config) IsForcedLoss(value float64) bool {
	return !IsUndefined(value) && value >= c.ForcedLossThreshold
}

// Checks the configuration for errors that would be fatal during a decision
func (c *Config) Validate() error {
	if c.TieBreak != BestChildMostVisits && c.TieBreak != BestChildValueSufficientVisits {
		return &ConfigError{Field: "tie_break", Err: fmt.Errorf("%w: %d", ErrUnknownTieBreak, int(c.TieBreak))}
	}

	if !(c.MLHWeight >= 0) || math.IsInf(c.MLHWeight, 1) {
		return &ConfigError{Field: "mlh_weight", Err: fmt.Errorf("must be a non-negative number, got %v", c.MLHWeight)}
	}

	if math.IsNaN(c.ForcedLossThreshold) {
		return &ConfigError{Field: "forced_loss_threshold", Err: fmt.Errorf("must be a number, got %v", c.ForcedLossThreshold)}
	}

	if c.Noise == nil {
		return nil
	}

	if c.TieBreak != BestChildMostVisits {
		return &ConfigError{Field: "noise", Err: ErrNoiseRequiresMostVisits}
	}
	if !(c.Noise.Temperature > 0) {
		return configErrorf("noise.temperature", ErrInvalidNoise, "must be positive, got %v", c.Noise.Temperature)
	}
	if !(c.Noise.VisitFraction >= 0 && c.Noise.VisitFraction <= 1) {
		return configErrorf("noise.visit_fraction", ErrInvalidNoise, "must be in [0, 1], got %v", c.Noise.VisitFraction)
	}
	if c.Noise.MaxModifications < 0 || c.Noise.MoveWindow < 0 {
		return configErrorf("noise", ErrInvalidNoise, "move window and modification budget must be non-negative")
	}
	return nil
}

// Parse YAML configuration, fields missing in the document keep their defaults
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("mcts: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mcts: load config: %w", err)
	}
	return ParseConfig(data)
}

var tieBreakNames = map[BestChildPolicy]string{
	BestChildMostVisits:            "most-visits",
	BestChildValueSufficientVisits: "value-sufficient-visits",
}

func (p BestChildPolicy) String() string {
	if name, ok := tieBreakNames[p]; ok {
		return name
	}
	return fmt.Sprintf("BestChildPolicy(%d)", int(p))
}

func ParseBestChildPolicy(name string) (BestChildPolicy, error) {
	for policy, n := range tieBreakNames {
		if n == name {
			return policy, nil
		}
	}
	return 0, &ConfigError{Field: "tie_break", Err: fmt.Errorf("%w: %q", ErrUnknownTieBreak, name)}
}

func (p BestChildPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *BestChildPolicy) UnmarshalText(text []byte) error {
	policy, err := ParseBestChildPolicy(string(text))
	if err != nil {
		return err
	}
	*p = policy
	return nil
}

// Sub-fields missing in the document keep the DefaultNoiseSampling values
func (n *NoiseSampling) UnmarshalYAML(value *yaml.Node) error {
	type plain NoiseSampling
	decoded := plain(*DefaultNoiseSampling())
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	*n = NoiseSampling(decoded)
	return nil
}

func (p BestChildPolicy) MarshalYAML() (any, error) {
	return p.String(), nil
}

func (p *BestChildPolicy) UnmarshalYAML(value *yaml.Node) error {
	return p.UnmarshalText([]byte(value.Value))
}

package growth

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Config holds the tunable weights and bounds of the growth engine. It is
// immutable per extraction call; different tenants may run different configs
// against the same engine.
type Config struct {
	ImprovementWeight    float64 `json:"improvement_weight"`
	ErrorPenalty         float64 `json:"error_penalty"`
	RepeatedErrorPenalty float64 `json:"repeated_error_penalty"`
	IndependentBonus     float64 `json:"independent_bonus"`

	ConfidencePositiveWeight float64 `json:"confidence_positive_weight"`
	ConfidenceNegativeWeight float64 `json:"confidence_negative_weight"`

	MaxSessionDelta int `json:"max_session_delta"`
	MinSessionDelta int `json:"min_session_delta"`

	MentalBlockSessionThreshold int `json:"mental_block_session_threshold"`
	MentalBlockBaseSeverity     int `json:"mental_block_base_severity"`
	MentalBlockRepeatDelta      int `json:"mental_block_repeat_delta"`
	MentalBlockAvoidanceBonus   int `json:"mental_block_avoidance_bonus"`
}

// DefaultConfig returns the standard growth weights.
func DefaultConfig() Config {
	return Config{
		ImprovementWeight:    1.0,
		ErrorPenalty:         2.5,
		RepeatedErrorPenalty: 4.0,
		IndependentBonus:     2.0,

		ConfidencePositiveWeight: 4.0,
		ConfidenceNegativeWeight: 6.0,

		MaxSessionDelta: 12,
		MinSessionDelta: -12,

		MentalBlockSessionThreshold: 3,
		MentalBlockBaseSeverity:     35,
		MentalBlockRepeatDelta:      15,
		MentalBlockAvoidanceBonus:   15,
	}
}

// Validate checks that the config preserves the engine's numeric guarantees.
// The engine's bounded-delta contract depends on well-formed weights, so a
// bad config is a construction-time error, never a silent coercion.
func (c Config) Validate() error {
	for name, w := range map[string]float64{
		"improvement_weight":         c.ImprovementWeight,
		"error_penalty":              c.ErrorPenalty,
		"repeated_error_penalty":     c.RepeatedErrorPenalty,
		"independent_bonus":          c.IndependentBonus,
		"confidence_positive_weight": c.ConfidencePositiveWeight,
		"confidence_negative_weight": c.ConfidenceNegativeWeight,
	} {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("growth config: %s must be a finite number, got %v", name, w)
		}
		if w < 0 {
			return fmt.Errorf("growth config: %s must be non-negative, got %v", name, w)
		}
	}
	if c.MinSessionDelta > c.MaxSessionDelta {
		return fmt.Errorf("growth config: min_session_delta (%d) exceeds max_session_delta (%d)",
			c.MinSessionDelta, c.MaxSessionDelta)
	}
	if c.MentalBlockSessionThreshold < 1 {
		return fmt.Errorf("growth config: mental_block_session_threshold must be >= 1, got %d",
			c.MentalBlockSessionThreshold)
	}
	return nil
}

// configSchema validates growth config files before unmarshaling, so a
// non-numeric weight fails with a schema error instead of a zero value.
var configSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"improvement_weight":             map[string]any{"type": "number", "minimum": 0},
		"error_penalty":                  map[string]any{"type": "number", "minimum": 0},
		"repeated_error_penalty":         map[string]any{"type": "number", "minimum": 0},
		"independent_bonus":              map[string]any{"type": "number", "minimum": 0},
		"confidence_positive_weight":     map[string]any{"type": "number", "minimum": 0},
		"confidence_negative_weight":     map[string]any{"type": "number", "minimum": 0},
		"max_session_delta":              map[string]any{"type": "integer"},
		"min_session_delta":              map[string]any{"type": "integer"},
		"mental_block_session_threshold": map[string]any{"type": "integer", "minimum": 1},
		"mental_block_base_severity":     map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"mental_block_repeat_delta":      map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
		"mental_block_avoidance_bonus":   map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
	},
}

// LoadConfig reads a JSON config file, validates it against the schema, and
// merges it over the defaults. Fields absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read growth config: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Config{}, fmt.Errorf("growth config %s: invalid JSON: %w", path, err)
	}

	compiled, err := compileConfigSchema()
	if err != nil {
		return Config{}, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return Config{}, fmt.Errorf("growth config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("growth config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func compileConfigSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(configSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal config schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse config schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://growth-config.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add config schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile config schema: %w", err)
	}
	return compiled, nil
}

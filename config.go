package bootscore

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonwraymond/bootscore/combine"
	"github.com/jonwraymond/bootscore/observe"
	"github.com/jonwraymond/bootscore/resample"
	"github.com/jonwraymond/bootscore/resilience"
	"github.com/jonwraymond/bootscore/scoring"
)

// Config is the file form of a run configuration.
//
//	splits: 500
//	method: .632+
//	scorer: accuracy
//	seed: 42
//	workers: 8
//	degenerate_policy: redraw
//	iteration_timeout: 30s
//	observe:
//	  service_name: bootscore
//	  logging: {enabled: true, level: info}
type Config struct {
	Splits           int           `yaml:"splits"`
	Method           string        `yaml:"method"`
	Scorer           string        `yaml:"scorer"`
	PredictProba     bool          `yaml:"predict_proba"`
	Seed             *uint64       `yaml:"seed"`
	Clone            *bool         `yaml:"clone"`
	TrainScore       bool          `yaml:"train_score"`
	Workers          int           `yaml:"workers"`
	DegeneratePolicy string        `yaml:"degenerate_policy"`
	MaxDrawAttempts  int           `yaml:"max_draw_attempts"`
	IterationTimeout time.Duration `yaml:"iteration_timeout"`

	// MaxConcurrentFits caps concurrent fits with a bulkhead. Zero disables it.
	MaxConcurrentFits int `yaml:"max_concurrent_fits"`

	// Observe configures telemetry. An empty service name disables it.
	Observe observe.Config `yaml:"observe"`
}

// DefaultConfig returns the configuration equivalent to passing no options.
func DefaultConfig() Config {
	return Config{
		Splits:           DefaultSplits,
		Method:           DefaultMethod.String(),
		Workers:          DefaultWorkers,
		DegeneratePolicy: Redraw.String(),
		MaxDrawAttempts:  resample.DefaultMaxAttempts,
	}
}

// LoadConfig reads a YAML configuration file over DefaultConfig and
// validates it. Environment variables in the file are expanded first; see
// expandEnv.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	text, err := expandEnv(string(data))
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal([]byte(text), &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: parse %s: %w", ErrConfiguration, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that can be checked without an estimator or a
// dataset.
func (c Config) Validate() error {
	opts, err := c.Options()
	if err != nil {
		return err
	}
	if err := newSettings(opts).validate(); err != nil {
		return err
	}
	if c.Observe.ServiceName != "" {
		if err := c.Observe.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
	}
	return nil
}

// Options converts the configuration to run options. Observe is not
// included; build the observer with NewObserver.
func (c Config) Options() ([]Option, error) {
	method := DefaultMethod
	if c.Method != "" {
		m, err := combine.ParseMethod(c.Method)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		method = m
	}

	policy, err := ParseDegeneratePolicy(c.DegeneratePolicy)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithSplits(c.Splits),
		WithMethod(method),
		WithPredictProba(c.PredictProba),
		WithTrainScore(c.TrainScore),
		WithWorkers(c.Workers),
		WithDegeneratePolicy(policy),
		WithMaxDrawAttempts(c.MaxDrawAttempts),
		WithIterationTimeout(c.IterationTimeout),
	}

	if c.Scorer != "" {
		sc, ok := scoring.Lookup(c.Scorer)
		if !ok {
			return nil, fmt.Errorf("%w: unknown scorer %q", ErrConfiguration, c.Scorer)
		}
		opts = append(opts, WithScorer(sc))
	}
	if c.Seed != nil {
		opts = append(opts, WithSeed(*c.Seed))
	}
	if c.Clone != nil {
		opts = append(opts, WithClone(*c.Clone))
	}
	if c.MaxConcurrentFits < 0 {
		return nil, fmt.Errorf("%w: max concurrent fits must not be negative, got %d", ErrConfiguration, c.MaxConcurrentFits)
	}
	if c.MaxConcurrentFits > 0 {
		opts = append(opts, WithBulkhead(resilience.NewBulkhead(resilience.BulkheadConfig{
			MaxConcurrent: c.MaxConcurrentFits,
		})))
	}
	return opts, nil
}

// NewObserver builds the observer described by Observe, or a no-op observer
// when no service name is set.
func (c Config) NewObserver(ctx context.Context) (observe.Observer, error) {
	if c.Observe.ServiceName == "" {
		return observe.NoopObserver(), nil
	}
	return observe.NewObserver(ctx, c.Observe)
}

// Package config loads action server options from YAML files. Unset fields
// fall back to the same defaults the server applies, and the result is
// validated before use.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goalmesh/goalmesh/core"
	"github.com/goalmesh/goalmesh/logging"
	"github.com/goalmesh/goalmesh/server"
)

// Duration parses from either a Go duration string ("15m") or an integer
// nanosecond count.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ns int64
	if err := value.Decode(&ns); err == nil {
		*d = Duration(ns)
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("config: invalid duration: %w", err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// QoSConfig is the file form of a quality-of-service profile.
type QoSConfig struct {
	History     string `yaml:"history"`     // keep_last | keep_all
	Depth       int    `yaml:"depth"`       //
	Reliability string `yaml:"reliability"` // reliable | best_effort
	Durability  string `yaml:"durability"`  // volatile | transient_local
}

// ServerConfig is the file form of server options.
type ServerConfig struct {
	Action          string        `yaml:"action"`
	GoalService     *QoSConfig    `yaml:"goal_service"`
	CancelService   *QoSConfig    `yaml:"cancel_service"`
	ResultService   *QoSConfig    `yaml:"result_service"`
	FeedbackTopic   *QoSConfig    `yaml:"feedback_topic"`
	StatusTopic     *QoSConfig    `yaml:"status_topic"`
	ResultRetention Duration      `yaml:"result_retention"`
	MaxTrackedGoals int           `yaml:"max_tracked_goals"`
	LogLevel        string        `yaml:"log_level"` // debug | info | warn | error
}

// Load reads and parses a YAML config file.
func Load(path string) (ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ServerConfig{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML config bytes and validates them.
func Parse(data []byte) (ServerConfig, error) {
	var cfg ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("config parse failed: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the server would misbehave on.
func Validate(cfg ServerConfig) error {
	if cfg.ResultRetention < 0 {
		return fmt.Errorf("config: result_retention %v is negative", time.Duration(cfg.ResultRetention))
	}
	if cfg.MaxTrackedGoals < 0 {
		return fmt.Errorf("config: max_tracked_goals %d is negative", cfg.MaxTrackedGoals)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", cfg.LogLevel)
	}
	for _, qc := range []*QoSConfig{
		cfg.GoalService, cfg.CancelService, cfg.ResultService, cfg.FeedbackTopic, cfg.StatusTopic,
	} {
		if qc == nil {
			continue
		}
		if _, err := qosProfile(*qc, core.QoSProfile{}); err != nil {
			return err
		}
	}
	return nil
}

// Options converts the file form into server options, applying server
// defaults for anything left unset.
func (cfg ServerConfig) Options() (server.Options, error) {
	opts := server.DefaultOptions()
	if cfg.ResultRetention > 0 {
		opts.ResultRetention = time.Duration(cfg.ResultRetention)
	}
	opts.MaxTrackedGoals = cfg.MaxTrackedGoals

	var err error
	if cfg.GoalService != nil {
		if opts.GoalServiceQoS, err = qosProfile(*cfg.GoalService, opts.GoalServiceQoS); err != nil {
			return server.Options{}, err
		}
	}
	if cfg.CancelService != nil {
		if opts.CancelServiceQoS, err = qosProfile(*cfg.CancelService, opts.CancelServiceQoS); err != nil {
			return server.Options{}, err
		}
	}
	if cfg.ResultService != nil {
		if opts.ResultServiceQoS, err = qosProfile(*cfg.ResultService, opts.ResultServiceQoS); err != nil {
			return server.Options{}, err
		}
	}
	if cfg.FeedbackTopic != nil {
		if opts.FeedbackTopicQoS, err = qosProfile(*cfg.FeedbackTopic, opts.FeedbackTopicQoS); err != nil {
			return server.Options{}, err
		}
	}
	if cfg.StatusTopic != nil {
		if opts.StatusTopicQoS, err = qosProfile(*cfg.StatusTopic, opts.StatusTopicQoS); err != nil {
			return server.Options{}, err
		}
	}
	return opts, nil
}

// Level maps the file's log_level onto a logging level, defaulting to info.
func (cfg ServerConfig) Level() logging.LogLevel {
	switch cfg.LogLevel {
	case "debug":
		return logging.LogLevelDebug
	case "warn":
		return logging.LogLevelWarn
	case "error":
		return logging.LogLevelError
	default:
		return logging.LogLevelInfo
	}
}

func qosProfile(qc QoSConfig, base core.QoSProfile) (core.QoSProfile, error) {
	p := base
	switch qc.History {
	case "":
	case "keep_last":
		p.History = core.KeepLast
	case "keep_all":
		p.History = core.KeepAll
	default:
		return core.QoSProfile{}, fmt.Errorf("config: unknown history %q", qc.History)
	}
	if qc.Depth < 0 {
		return core.QoSProfile{}, fmt.Errorf("config: depth %d is negative", qc.Depth)
	}
	if qc.Depth > 0 {
		p.Depth = qc.Depth
	}
	switch qc.Reliability {
	case "":
	case "reliable":
		p.Reliability = core.Reliable
	case "best_effort":
		p.Reliability = core.BestEffort
	default:
		return core.QoSProfile{}, fmt.Errorf("config: unknown reliability %q", qc.Reliability)
	}
	switch qc.Durability {
	case "":
	case "volatile":
		p.Durability = core.Volatile
	case "transient_local":
		p.Durability = core.TransientLocal
	default:
		return core.QoSProfile{}, fmt.Errorf("config: unknown durability %q", qc.Durability)
	}
	return p, nil
}

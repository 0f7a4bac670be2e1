package config

import (
	"context"
	"runtime"

	"github.com/olimci/fuhen/pkg/events"
)

// DefaultOptions constructs an Options with default values.
func DefaultOptions() *Options {
	return &Options{
		Context:      context.Background(),
		ConfigPath:   "fuhen.toml",
		MaxWorkers:   runtime.NumCPU(),
		Precision:    6,
		EventHandler: new(events.NoopHandler),
	}
}

// Options represents the options for evaluating programs.
type Options struct {
	Context    context.Context
	ConfigPath string

	MaxWorkers int
	Precision  int
	Trace      bool

	EventHandler events.Handler
}

// WithContext sets the root context for evaluation
func (o *Options) WithContext(ctx context.Context) *Options {
	o.Context = ctx
	return o
}

// WithConfig sets the path to the configuration file
func (o *Options) WithConfig(path string) *Options {
	o.ConfigPath = path
	return o
}

// WithMaxWorkers sets the maximum number of concurrent evaluations
func (o *Options) WithMaxWorkers(n int) *Options {
	if n <= 0 {
		panic("max workers must be > 0")
	}

	o.MaxWorkers = n
	return o
}

// WithPrecision sets the number of significant digits in printed results
func (o *Options) WithPrecision(n int) *Options {
	o.Precision = n
	return o
}

// WithTrace enables per-word trace output
func (o *Options) WithTrace() *Options {
	o.Trace = true
	return o
}

// WithEventHandler sets the event handler for evaluation
func (o *Options) WithEventHandler(handler events.Handler) *Options {
	o.EventHandler = handler
	return o
}

// FromConfig overlays the loaded configuration onto the options.
func (o *Options) FromConfig(cfg *Config) *Options {
	if cfg == nil {
		return o
	}
	if cfg.Eval.Precision > 0 {
		o.Precision = cfg.Eval.Precision
	}
	if cfg.Eval.MaxWorkers > 0 {
		o.MaxWorkers = cfg.Eval.MaxWorkers
	}
	if cfg.Eval.Trace {
		o.Trace = true
	}
	return o
}

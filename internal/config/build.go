package config

import (
	"github.com/harrison/boostcfg/internal/alias"
	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/logger"
	"github.com/harrison/boostcfg/internal/params"
)

// Device is the accelerator the process allocates buffers for.
type Device int

const (
	DeviceCPU Device = iota
	DeviceCUDA
)

// String returns the device name.
func (d Device) String() string {
	if d == DeviceCUDA {
		return "cuda"
	}
	return "cpu"
}

// BuildContext carries the state of one build: where messages go, what was
// reported, and the device affinity selected by device_type. It must not be
// shared between concurrent builds.
type BuildContext struct {
	*diagnostic.Reporter

	Device Device

	// params is the canonical map being built, for rules that need to know
	// whether a key was given at all.
	params map[string]string
}

// NewBuildContext returns a context logging to log. A nil log discards messages.
func NewBuildContext(log logger.Logger) *BuildContext {
	return &BuildContext{Reporter: diagnostic.NewReporter(log)}
}

// given returns the raw value of key and whether it was present and non-empty.
func (bc *BuildContext) given(key string) (string, bool) {
	v, ok := bc.params[key]
	return v, ok && v != ""
}

// Build resolves a canonical parameter map into a Config by running Rules in
// order. On the first fatal rule it returns nil and a *FatalError.
func Build(m map[string]string, bc *BuildContext) (*Config, error) {
	if bc == nil {
		bc = NewBuildContext(nil)
	}
	bc.params = m

	c := New()
	for _, rule := range Rules() {
		if err := rule.Apply(c, bc); err != nil {
			return nil, err
		}
	}
	bc.Debug("configuration built from %d parameters", len(m))
	return c, nil
}

// FromRawSet runs the whole pipeline on already tokenized parameters:
// verbosity, first-value deduplication, alias resolution, then Build.
func FromRawSet(raw *params.RawSet, bc *BuildContext) (*Config, error) {
	if bc == nil {
		bc = NewBuildContext(nil)
	}
	if err := params.ResolveVerbosity(raw, bc.Reporter); err != nil {
		return nil, err
	}
	flat := params.KeepFirst(raw, bc.Reporter)
	return Build(alias.Canonicalize(flat, bc.Reporter), bc)
}

// FromText tokenizes whitespace separated key=value text and builds it.
func FromText(text string, bc *BuildContext) (*Config, error) {
	if bc == nil {
		bc = NewBuildContext(nil)
	}
	return FromRawSet(params.Tokenize(text, bc.Reporter), bc)
}

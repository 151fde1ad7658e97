package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileOverrides is the shape of an optional complexity.yaml the daemon
// host (cmd/complexityd) reads to override the package-level tunables above without a rebuild.
// Grounded on internal/ext/config.go's Config/yaml.v3 parsing pattern
// (struct tags, os.ReadFile, yaml.Unmarshal).
type FileOverrides struct {
	MasterGapEpsilon          *float64 `yaml:"master_gap_epsilon,omitempty"`
	CriticalExponentTolerance *float64 `yaml:"critical_exponent_tolerance,omitempty"`
	SimpsonMaxDepth           *int     `yaml:"simpson_max_depth,omitempty"`
	MaxSimplifyPasses         *int     `yaml:"max_simplify_passes,omitempty"`
}

// Load reads path (if it exists) and applies any overrides it specifies to
// the package-level tunables. A missing file is not an error — the
// defaults stand.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	var overrides FileOverrides
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	Apply(overrides)
	return nil
}

// Apply overwrites the package-level tunables with any non-nil fields in o.
func Apply(o FileOverrides) {
	if o.MasterGapEpsilon != nil {
		MasterGapEpsilon = *o.MasterGapEpsilon
	}
	if o.CriticalExponentTolerance != nil {
		CriticalExponentTolerance = *o.CriticalExponentTolerance
	}
	if o.SimpsonMaxDepth != nil {
		SimpsonMaxDepth = *o.SimpsonMaxDepth
	}
	if o.MaxSimplifyPasses != nil {
		MaxSimplifyPasses = *o.MaxSimplifyPasses
	}
}

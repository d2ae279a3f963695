package schema

import "time"

// ManifestPair records what one filter pair contributed to a report.
type ManifestPair struct {
	Pair              string `yaml:"pair"`
	TargetSamples     int    `yaml:"target_samples"`
	TargetCycles      int    `yaml:"target_cycles"`
	ComparisonSamples int    `yaml:"comparison_samples"`
	ComparisonCycles  int    `yaml:"comparison_cycles"`
}

// RunManifest is the YAML document written next to every report.
type RunManifest struct {
	RunUUID   string                   `yaml:"run_uuid"`
	CreatedAt time.Time                `yaml:"created_at"`
	Version   string                   `yaml:"version"`
	Params    RunParams                `yaml:"params"`
	Labels    map[Role]string          `yaml:"labels"`
	Inputs    map[Role]map[Band]string `yaml:"inputs"`
	Pairs     []ManifestPair           `yaml:"pairs"`
	Pages     int                      `yaml:"pages"`
}

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Scoring holds every knob the ranking engine reads. Keyword tiers map a
// weight to the terms worth that weight; rank orders list values from most
// to least preferred.
type Scoring struct {
	KeywordTiers  map[int][]string `yaml:"keyword_tiers"`
	DegreeWeights DegreeWeights    `yaml:"degree_weights"`
	StateRank     []string         `yaml:"state_rank_order"`
	SiteRank      []string         `yaml:"site_rank_order"`
}

type DegreeWeights struct {
	Bachelor  int `yaml:"bachelor"`
	Master    int `yaml:"master"`
	Doctorate int `yaml:"doctorate"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Scoring Scoring `yaml:"scoring"`

	Archive struct {
		CleanupDays int  `yaml:"cleanup_days"`
		Snapshots   bool `yaml:"snapshots"`
	} `yaml:"archive"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

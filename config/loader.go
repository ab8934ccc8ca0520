package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	transitmodel "github.com/theoremus-urban-solutions/transit-model"
)

// Load reads and validates a build configuration from a YAML file.
// Omitted contributor and dataset identifiers are filled with generated
// ones, so two anonymous feeds never collide when merged.
func Load(path string) (BuildConfig, error) {
	var cfg BuildConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return cfg, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no config file is given.
func Default() BuildConfig {
	cfg := BuildConfig{
		Contributor: ContributorConfig{Name: "default contributor"},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *BuildConfig) applyDefaults() {
	if c.Contributor.ID == "" {
		c.Contributor.ID = "contributor:" + uuid.NewString()
	}
	if c.Dataset.ID == "" {
		c.Dataset.ID = "dataset:" + uuid.NewString()
	}
}

// Entities returns the contributor and dataset entities described by the
// configuration, for collaborators seeding a Collections bag.
func (c BuildConfig) Entities() (transitmodel.Contributor, transitmodel.Dataset) {
	contributor := transitmodel.Contributor{
		ID:      c.Contributor.ID,
		Name:    c.Contributor.Name,
		License: c.Contributor.License,
		Website: c.Contributor.Website,
	}
	dataset := transitmodel.Dataset{
		ID:            c.Dataset.ID,
		ContributorID: c.Contributor.ID,
		StartDate:     c.Dataset.StartDate,
		EndDate:       c.Dataset.EndDate,
	}
	return contributor, dataset
}

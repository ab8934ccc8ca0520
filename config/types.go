package config

// ContributorConfig describes the contributor a feed is attributed to.
type ContributorConfig struct {
	ID      string `yaml:"contributor_id"`
	Name    string `yaml:"contributor_name" validate:"required"`
	License string `yaml:"contributor_license"`
	Website string `yaml:"contributor_website" validate:"omitempty,url"`
}

// DatasetConfig describes the dataset a feed is imported as.
type DatasetConfig struct {
	ID        string `yaml:"dataset_id"`
	StartDate string `yaml:"start_date" validate:"omitempty,datetime=20060102"`
	EndDate   string `yaml:"end_date" validate:"omitempty,datetime=20060102"`
}

// BuildConfig is the root build configuration structure.
type BuildConfig struct {
	// Prefix is prepended to every identifier of the bag, allowing several
	// feeds to share one model. Colons are the namespace separator and are
	// not allowed inside the prefix itself.
	Prefix      string            `yaml:"prefix" validate:"omitempty,excludesall=0x3A"`
	Contributor ContributorConfig `yaml:"contributor" validate:"required"`
	Dataset     DatasetConfig     `yaml:"dataset"`
	FeedInfos   map[string]string `yaml:"feed_infos"`
}

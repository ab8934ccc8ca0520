package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/transit-model/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, strings.TrimSpace(`
prefix: nl
contributor:
  contributor_id: "ct:openov"
  contributor_name: "OpenOV"
  contributor_website: "https://openov.nl"
dataset:
  dataset_id: "ds:2026-w1"
  start_date: "20260105"
  end_date: "20260111"
feed_infos:
  feed_publisher_name: openov
`))

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Prefix != "nl" || cfg.Contributor.ID != "ct:openov" || cfg.Dataset.ID != "ds:2026-w1" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	contributor, dataset := cfg.Entities()
	if contributor.Name != "OpenOV" {
		t.Errorf("contributor name = %q; want OpenOV", contributor.Name)
	}
	if dataset.ContributorID != "ct:openov" {
		t.Errorf("dataset contributor = %q; want ct:openov", dataset.ContributorID)
	}
	if dataset.StartDate != "20260105" {
		t.Errorf("dataset start date = %q; want 20260105", dataset.StartDate)
	}
}

func TestLoadGeneratesMissingIdentifiers(t *testing.T) {
	path := writeConfig(t, strings.TrimSpace(`
contributor:
  contributor_name: "Anonymous"
`))

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !strings.HasPrefix(cfg.Contributor.ID, "contributor:") {
		t.Errorf("contributor id %q not generated", cfg.Contributor.ID)
	}
	if !strings.HasPrefix(cfg.Dataset.ID, "dataset:") {
		t.Errorf("dataset id %q not generated", cfg.Dataset.ID)
	}

	other, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if other.Dataset.ID == cfg.Dataset.ID {
		t.Error("two anonymous loads must not share a dataset id")
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing contributor name",
			content: strings.TrimSpace(`
contributor:
  contributor_id: "ct:1"
`),
		},
		{
			name: "prefix with colon",
			content: strings.TrimSpace(`
prefix: "nl:extra"
contributor:
  contributor_name: "OpenOV"
`),
		},
		{
			name: "bad start date",
			content: strings.TrimSpace(`
contributor:
  contributor_name: "OpenOV"
dataset:
  start_date: "2026-01-05"
`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := config.Load(path); err == nil {
				t.Error("Load should have failed validation")
			}
		})
	}
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	if cfg.Contributor.ID == "" || cfg.Dataset.ID == "" {
		t.Errorf("default config has empty identifiers: %+v", cfg)
	}
	if cfg.Contributor.Name == "" {
		t.Error("default contributor has no name")
	}
}

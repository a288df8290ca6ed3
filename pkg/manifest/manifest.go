package manifest

import "github.com/dtnitsch/pageqr/models"

// RunManifest records what a generation run produced. It lets an operator
// see which pages were written without opening the output directory.
type RunManifest struct {
	GeneratedAt string                     `yaml:"generated_at"`
	BaseURL     string                     `yaml:"base_url"`
	OutputDir   string                     `yaml:"output_dir"`
	TotalPages  int                        `yaml:"total_pages"`
	Written     int                        `yaml:"written"`
	Error       string                     `yaml:"error,omitempty"`
	Artifacts   []models.GeneratedArtifact `yaml:"artifacts"`
}

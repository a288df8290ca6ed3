package manifest

import (
	"fmt"
	"time"

	"github.com/dtnitsch/pageqr/models"
	"github.com/dtnitsch/pageqr/pkg/storage"
	"gopkg.in/yaml.v3"
)

// Build assembles the manifest for a run. runErr may be nil.
func Build(baseURL, outputDir string, totalPages int, artifacts []models.GeneratedArtifact, runErr error) RunManifest {
	m := RunManifest{
		GeneratedAt: time.Now().Format(time.RFC3339),
		BaseURL:     baseURL,
		OutputDir:   outputDir,
		TotalPages:  totalPages,
		Written:     len(artifacts),
		Artifacts:   artifacts,
	}
	if m.Artifacts == nil {
		m.Artifacts = []models.GeneratedArtifact{}
	}
	if runErr != nil {
		m.Error = runErr.Error()
	}
	return m
}

// Save writes the manifest as YAML to path.
func Save(m RunManifest, path string, s *storage.Storage) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}
	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}
	return nil
}

package models

// PageMetadata maps a page index to the resource name published for it.
// The public URL of a page is the configured base URL followed by Filename.
type PageMetadata struct {
	PageIndex int64  `json:"page_index" yaml:"page_index"`
	Filename  string `json:"filename" yaml:"filename"`
}

// PageStatus is the per-page sender/receiver/content record, joined to
// PageMetadata by PageIndex. Either record may exist without the other.
type PageStatus struct {
	PageIndex int64  `json:"page_index" yaml:"page_index"`
	Sender    string `json:"sender" yaml:"sender"`
	Receiver  string `json:"receiver" yaml:"receiver"`
	Content   string `json:"content" yaml:"content"`
	Status    bool   `json:"status" yaml:"status"`
}

// GeneratedArtifact describes one QR image written for a page.
// It is derived per run and never stored in the database.
type GeneratedArtifact struct {
	PageIndex int64  `json:"page_index" yaml:"page_index"`
	Filename  string `json:"filename" yaml:"filename"`
	SourceURL string `json:"source_url" yaml:"source_url"`
	ImagePath string `json:"image_path" yaml:"image_path"`
	SizeBytes int64  `json:"size_bytes" yaml:"size_bytes"`
	SHA256    string `json:"sha256" yaml:"sha256"`
}

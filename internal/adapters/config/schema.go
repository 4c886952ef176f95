package config

// Provfile represents the structure of the prov.yaml descriptor file.
type Provfile struct {
	Version     string      `yaml:"version"`
	Sources     []SourceDTO `yaml:"sources"`
	Packages    []string    `yaml:"packages"`
	Concurrency int         `yaml:"concurrency"`
	Timeout     string      `yaml:"timeout"`
}

// SourceDTO represents one pinned snapshot source in the descriptor.
type SourceDTO struct {
	URL      string `yaml:"url"`
	Revision string `yaml:"revision"`
	SHA256   string `yaml:"sha256"`
}

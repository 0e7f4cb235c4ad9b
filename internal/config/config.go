package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Import  ImportConfig  `yaml:"import"`
	Display DisplayConfig `yaml:"display"`
}

type ScoringConfig struct {
	// When false, blank corpus entries are dropped before indexing
	// instead of counting toward the IDF denominator.
	CountEmptyDocuments bool `yaml:"count_empty_documents"`
}

type ImportConfig struct {
	Extensions []string `yaml:"extensions"`
}

type DisplayConfig struct {
	ListLimit int `yaml:"list_limit"`
}

func Default() *Config {
	return &Config{
		Scoring: ScoringConfig{
			CountEmptyDocuments: true,
		},
		Import: ImportConfig{
			Extensions: []string{".txt", ".md", ".html"},
		},
		Display: DisplayConfig{
			ListLimit: 20,
		},
	}
}

func Dir() string {
	if dir := os.Getenv("QALAM_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".qalam")
}

func DBPath() string {
	return filepath.Join(Dir(), "qalam.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}

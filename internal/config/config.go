package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir  = ".dynvec"
	DefaultWorkload = "push_back"
	DefaultCount    = 64
	DefaultSeed     = 1
)

type Config struct {
	DataDir string        `yaml:"data_dir"`
	Trace   TraceConfig   `yaml:"trace"`
	Catalog CatalogConfig `yaml:"catalog"`
}

type TraceConfig struct {
	Workload        string `yaml:"workload"`
	Count           int    `yaml:"count"`
	InitialCapacity int    `yaml:"initial_capacity"`
	Seed            int64  `yaml:"seed"`
}

type CatalogConfig struct {
	Authors []AuthorConfig `yaml:"authors"`
}

type AuthorConfig struct {
	Name  string       `yaml:"name"`
	Books []BookConfig `yaml:"books"`
}

type BookConfig struct {
	Title string `yaml:"title"`
	Pages uint32 `yaml:"pages"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir: DefaultDataDir,
		Trace: TraceConfig{
			Workload: DefaultWorkload,
			Count:    DefaultCount,
			Seed:     DefaultSeed,
		},
		Catalog: CatalogConfig{
			Authors: []AuthorConfig{
				{
					Name: "Stephen King",
					Books: []BookConfig{
						{Title: "It", Pages: 1024},
						{Title: "The Shining", Pages: 976},
						{Title: "Cujo", Pages: 450},
					},
				},
				{
					Name: "J.R.R. Tolkien",
					Books: []BookConfig{
						{Title: "Lord of the Rings: Fellowship of the Ring", Pages: 512},
					},
				},
			},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

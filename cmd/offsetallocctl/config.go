package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// arenaConfig describes one allocator instance. Read from a YAML file when
// --config is given, or built up from the --size/--max-allocs flags
// otherwise.
type arenaConfig struct {
	Size      uint32 `yaml:"size"`
	MaxAllocs uint32 `yaml:"maxAllocs"`
}

func loadArenaConfig(path string) (arenaConfig, error) {
	var cfg arenaConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if cfg.Size == 0 {
		return cfg, fmt.Errorf("config %q: size must be > 0", path)
	}
	if cfg.MaxAllocs == 0 {
		return cfg, fmt.Errorf("config %q: maxAllocs must be >= 1", path)
	}
	return cfg, nil
}

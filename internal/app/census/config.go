package census

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds census builder settings.
type Config struct {
	TextsDir  string `yaml:"texts_dir"  env:"CENSUS_TEXTS_DIR"`
	OutputDir string `yaml:"output_dir" env:"CENSUS_OUTPUT_DIR" env-default:"./static"`
	MinCount  int    `yaml:"min_count"  env:"CENSUS_MIN_COUNT"  env-default:"5"`
	BatchSize int    `yaml:"batch_size" env:"CENSUS_BATCH_SIZE" env-default:"500"`
	Workers   int    `yaml:"workers"    env:"CENSUS_WORKERS"    env-default:"4"`
	DryRun    bool   `yaml:"dry_run"    env:"CENSUS_DRY_RUN"`
}

// LoadConfig reads builder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("census config: file %s not found", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("census config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("census config: read env: %w", err)
	}

	return &cfg, nil
}

package taxagent

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/models"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/output"
	"github.com/ukaji3/taxagent-go/pkg/taxagent/parser"
)

//go:embed sample_config.toml
var sampleConfig string

// DefaultOutputDir is the output directory, relative to the working directory.
const DefaultOutputDir = "gen_json"

// Config holds the deployment constants of a conversion run.
type Config struct {
	// OutputDir must already exist.
	OutputDir string `toml:"output_dir"`
	// BatchSize is the maximum number of persons per output file.
	BatchSize int           `toml:"batch_size"`
	Filer     models.Filer  `toml:"filer"`
	Layout    parser.Layout `toml:"layout"`
}

// DefaultConfig returns the configuration of the reference deployment.
func DefaultConfig() Config {
	return Config{
		OutputDir: DefaultOutputDir,
		BatchSize: output.DefaultBatchSize,
		Filer:     models.DefaultFiler(),
		Layout:    parser.DefaultLayout(),
	}
}

// SampleConfig returns a commented TOML file equal to DefaultConfig.
func SampleConfig() string {
	return sampleConfig
}

// LoadConfig reads a TOML file over DefaultConfig. An empty path returns
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}
	if c.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch_size must be positive, got %d", c.BatchSize))
	}
	if strings.TrimSpace(c.Filer.UNP) == "" {
		errs = append(errs, errors.New("filer.unp must not be empty"))
	}
	if err := c.Layout.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	OutputConfig struct {
		Prefix          string       `yaml:"prefix" validate:"required"`
		Grouping        OutputLayout `yaml:"grouping" validate:"gte=0"`
		Pretty          bool         `yaml:"pretty"`
		VendorNamespace string       `yaml:"vendor_namespace" validate:"required"`
	}

	ScanConfig struct {
		Include  []string `yaml:"include" validate:"min=1,dive,required"`
		Exclude  []string `yaml:"exclude" validate:"dive,required"`
		MinUsage int      `yaml:"min_usage" validate:"min=1"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Output    OutputConfig   `yaml:"output"`
		Scan      ScanConfig     `yaml:"scan"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

// PrefixFieldName must match yaml name of OutputConfig.Prefix, it is a
// template expanded per run and left alone when configuration is processed.
const PrefixFieldName = "prefix"

var requiredOptions = []func(*gencfg.ProcessingOptions){
	gencfg.WithDoNotExpandField(PrefixFieldName),
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// only fields we defined are allowed, so no yaml.Unmarshal here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if !process {
		return cfg, nil
	}
	if err := gencfg.Sanitize(cfg); err != nil {
		return nil, fmt.Errorf("configuration sanitizing failed: %w", err)
	}
	if err := gencfg.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	if !cfg.Output.Grouping.IsValid() {
		return nil, fmt.Errorf("output grouping: %w", ErrInvalidOutputLayout)
	}
	return cfg, nil
}

// LoadConfiguration expands embedded template to get defaults and, when path
// is not empty, superimposes values from the file on top of them. Result is
// sanitized and validated.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	// sequences from the file replace template defaults, they are not merged
	cfg, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare returns expanded configuration template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

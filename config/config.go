package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/heatcalc/core/metrics"
	"github.com/kilianp07/heatcalc/core/model"
)

// Release is reported to Sentry when no release is configured.
var Release = "heatcalc@dev"

// OutputConfig selects the report renderer.
type OutputConfig struct {
	Format string `json:"format"`
	Path   string `json:"path"`
}

type Config struct {
	ScenarioConfig `json:",squash"`
	Output         OutputConfig   `json:"output"`
	Logging        LoggingConfig  `json:"logging"`
	Metrics        metrics.Config `json:"metrics"`
	Sentry         SentryConfig   `json:"sentry"`
}

// Load reads the configuration file at path, applies K_ environment
// overrides and fills defaults. An empty path loads defaults and
// environment only.
func Load(path string) (*Config, error) {
	return load(path, nil, time.Now())
}

// LoadWithOverrides is Load with a final layer of koanf keys, typically
// taken from command line flags. Overrides are applied before defaults, so
// an overridden fuel selects that fuel's defaults.
func LoadWithOverrides(path string, overrides map[string]any) (*Config, error) {
	return load(path, overrides, time.Now())
}

func parserFor(path string) (koanf.Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

func load(path string, overrides map[string]any, now time.Time) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	// Optional environment overrides: K_HEAT_PUMP__JAZ -> heat_pump.jaz
	if err := k.Load(env.Provider("K_", ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	for key, v := range overrides {
		if err := k.Set(key, v); err != nil {
			return nil, fmt.Errorf("override %s: %w", key, err)
		}
	}

	fuel := model.FuelGas
	if s := k.String("heating.fuel"); s != "" {
		f, err := model.ParseFuelType(s)
		if err != nil {
			return nil, fmt.Errorf("heating.fuel: %w", err)
		}
		fuel = f
	}
	for key, v := range defaultValues(fuel, now) {
		if !k.Exists(key) {
			if err := k.Set(key, v); err != nil {
				return nil, err
			}
		}
	}
	percentSet := k.Exists("heat_pump.subsidy_percent")

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.ScenarioConfig.SetDefaults(percentSet)
	cfg.Logging.SetDefaults()
	cfg.Sentry.SetDefaults(Release)
	if err := cfg.ScenarioConfig.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Logging.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Sentry.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Watch reloads the configuration every time the file at path changes
// and hands the result to cb. The returned function stops watching.
func Watch(path string, overrides map[string]any, cb func(*Config, error)) (func() error, error) {
	if _, err := parserFor(path); err != nil {
		return nil, err
	}
	fp := file.Provider(path)
	err := fp.Watch(func(_ interface{}, err error) {
		if err != nil {
			cb(nil, fmt.Errorf("watch %s: %w", path, err))
			return
		}
		cb(LoadWithOverrides(path, overrides))
	})
	if err != nil {
		return nil, err
	}
	return fp.Unwatch, nil
}

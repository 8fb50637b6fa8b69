package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/oraschemagen/oraschemagen/internal/synth"
)

// Config is the per-run generation configuration. Values come from
// oraschemagen.config.json via viper; command-line flags override them.
type Config struct {
	Schemas        []string     `json:"schemas" mapstructure:"schemas"`
	Tables         int          `json:"tables" mapstructure:"tables"`
	DataRows       int          `json:"data_rows" mapstructure:"data_rows"`
	Triggers       int          `json:"triggers" mapstructure:"triggers"`
	Procedures     int          `json:"procedures" mapstructure:"procedures"`
	Functions      int          `json:"functions" mapstructure:"functions"`
	Packages       int          `json:"packages" mapstructure:"packages"`
	Lobs           int          `json:"lobs" mapstructure:"lobs"`
	OutputDir      string       `json:"output_dir" mapstructure:"output_dir"`
	OutputMode     string       `json:"output_mode" mapstructure:"output_mode"`
	SchemaFile     string       `json:"schema_file" mapstructure:"schema_file"`
	IncludeStorage bool         `json:"include_storage" mapstructure:"include_storage"`
	ShiftJIS       bool         `json:"shift_jis" mapstructure:"shift_jis"`
	Seed           int64        `json:"seed" mapstructure:"seed"`
	Ranges         synth.Ranges `json:"ranges" mapstructure:"ranges"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	if len(cfg.Schemas) == 0 {
		cfg.Schemas = []string{"TEST_SCHEMA"}
	}
	if cfg.Tables == 0 && !viper.IsSet("tables") {
		cfg.Tables = 5
	}
	if cfg.DataRows == 0 && !viper.IsSet("data_rows") {
		cfg.DataRows = 100
	}
	if cfg.Triggers == 0 && !viper.IsSet("triggers") {
		cfg.Triggers = 3
	}
	if cfg.Procedures == 0 && !viper.IsSet("procedures") {
		cfg.Procedures = 3
	}
	if cfg.Functions == 0 && !viper.IsSet("functions") {
		cfg.Functions = 3
	}
	if cfg.Packages == 0 && !viper.IsSet("packages") {
		cfg.Packages = 1
	}
	if cfg.Lobs == 0 && !viper.IsSet("lobs") {
		cfg.Lobs = 1
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "generated_sql"
	}
	if cfg.OutputMode == "" {
		cfg.OutputMode = "partitioned"
	}
	if !viper.IsSet("include_storage") {
		cfg.IncludeStorage = true
	}

	defaults := synth.DefaultRanges()
	if cfg.Ranges.SalaryMax == 0 {
		cfg.Ranges.SalaryMin = defaults.SalaryMin
		cfg.Ranges.SalaryMax = defaults.SalaryMax
	}
	if cfg.Ranges.CurrencyMax == 0 {
		cfg.Ranges.CurrencyMin = defaults.CurrencyMin
		cfg.Ranges.CurrencyMax = defaults.CurrencyMax
	}
	if cfg.Ranges.PercentMax == 0 {
		cfg.Ranges.PercentMax = defaults.PercentMax
	}
	if cfg.Ranges.DecimalMax == 0 {
		cfg.Ranges.DecimalMax = defaults.DecimalMax
	}
	if cfg.Ranges.QuantityMax == 0 {
		cfg.Ranges.QuantityMin = defaults.QuantityMin
		cfg.Ranges.QuantityMax = defaults.QuantityMax
	}
	if cfg.Ranges.ManagerIDMax == 0 {
		cfg.Ranges.ManagerIDMin = defaults.ManagerIDMin
		cfg.Ranges.ManagerIDMax = defaults.ManagerIDMax
	}
	if cfg.Ranges.IntegerCap == 0 {
		cfg.Ranges.IntegerCap = defaults.IntegerCap
	}
	if cfg.Ranges.TextCap == 0 {
		cfg.Ranges.TextCap = defaults.TextCap
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir cannot be empty")
	}
	switch c.OutputMode {
	case "consolidated", "partitioned":
	default:
		return fmt.Errorf("unsupported output mode: %s. Supported modes: [consolidated partitioned]", c.OutputMode)
	}
	return nil
}

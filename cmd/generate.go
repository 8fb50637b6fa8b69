package cmd

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oraschemagen/oraschemagen/internal/config"
	"github.com/oraschemagen/oraschemagen/internal/generator"
	"github.com/oraschemagen/oraschemagen/internal/output"
	"github.com/oraschemagen/oraschemagen/internal/pipeline"
	"github.com/oraschemagen/oraschemagen/internal/sjis"
	"github.com/oraschemagen/oraschemagen/internal/synth"
	"github.com/oraschemagen/oraschemagen/internal/types"
)

var (
	genSchemas    string
	genTables     int
	genDataRows   int
	genTriggers   int
	genProcedures int
	genFunctions  int
	genPackages   int
	genLobs       int
	genOutputDir  string
	genSingleFile bool
	genShiftJIS   bool
	genSeed       int64
	genSchemaFile string
	genNoStorage  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic schema export",
	Long: `Generate table DDL, sample data and PL/SQL stubs for a synthetic
Oracle schema. Output is either a single consolidated dump file
(--single-file) or one file per object grouped by kind.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlags(cmd, cfg)

		if err := cfg.Validate(); err != nil {
			return err
		}
		mode, err := output.ParseMode(cfg.OutputMode)
		if err != nil {
			return err
		}

		req := generator.Request{
			Schemas:        cfg.Schemas,
			Tables:         cfg.Tables,
			RowsPerTable:   cfg.DataRows,
			Triggers:       cfg.Triggers,
			Procedures:     cfg.Procedures,
			Functions:      cfg.Functions,
			Packages:       cfg.Packages,
			Lobs:           cfg.Lobs,
			IncludeStorage: cfg.IncludeStorage,
		}
		if cfg.SchemaFile != "" {
			tables, err := config.LoadSchemaFile(cfg.SchemaFile)
			if err != nil {
				return err
			}
			req.CustomTables = tables
			color.Cyan("📄 Loaded %d table definitions from %s", len(tables), cfg.SchemaFile)
		}

		var rng *rand.Rand
		if cfg.Seed != 0 {
			rng = rand.New(rand.NewSource(cfg.Seed))
		}
		engine := synth.NewEngine(rng, cfg.Ranges)
		engine.OnUnknownType = func(col types.ColumnSpec) {
			color.Yellow("⚠️  No value rule for %s.%s (%s); emitting NULL", col.Table, col.Name, col.Type)
		}

		color.Cyan("🛠  Generating objects for schemas: %s", strings.Join(cfg.Schemas, ", "))
		result := pipeline.Run(req, engine)
		color.Green("📊 Generated %d objects from %d tables", len(result.Objects), len(result.Tables))

		writer, err := output.NewWriter(cfg.OutputDir, mode)
		if err != nil {
			return err
		}
		fileName := fmt.Sprintf("oraschemagen_%s.sql", time.Now().Format("20060102_150405"))
		path, err := writer.Write(result.Objects, fileName)
		if err != nil {
			return err
		}
		color.Green("✅ Output written to %s", path)

		if cfg.ShiftJIS {
			if mode != output.ModeConsolidated {
				color.Yellow("⚠️  Shift-JIS conversion only applies to consolidated output; skipping")
				return nil
			}
			sjisPath := strings.TrimSuffix(path, ".sql") + "_sjis.sql"
			if err := sjis.ConvertFile(path, sjisPath); err != nil {
				return err
			}
			color.Green("✅ Shift-JIS copy written to %s", filepath.Clean(sjisPath))
		}
		return nil
	},
}

// applyFlags overrides config values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("schemas") {
		cfg.Schemas = strings.Split(genSchemas, ",")
		for i := range cfg.Schemas {
			cfg.Schemas[i] = strings.TrimSpace(cfg.Schemas[i])
		}
	}
	if flags.Changed("tables") {
		cfg.Tables = genTables
	}
	if flags.Changed("data-rows") {
		cfg.DataRows = genDataRows
	}
	if flags.Changed("triggers") {
		cfg.Triggers = genTriggers
	}
	if flags.Changed("procedures") {
		cfg.Procedures = genProcedures
	}
	if flags.Changed("functions") {
		cfg.Functions = genFunctions
	}
	if flags.Changed("packages") {
		cfg.Packages = genPackages
	}
	if flags.Changed("lobs") {
		cfg.Lobs = genLobs
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = genOutputDir
	}
	if flags.Changed("single-file") {
		if genSingleFile {
			cfg.OutputMode = string(output.ModeConsolidated)
		} else {
			cfg.OutputMode = string(output.ModePartitioned)
		}
	}
	if flags.Changed("shift-jis") {
		cfg.ShiftJIS = genShiftJIS
	}
	if flags.Changed("seed") {
		cfg.Seed = genSeed
	}
	if flags.Changed("schema-file") {
		cfg.SchemaFile = genSchemaFile
	}
	if flags.Changed("no-storage") {
		cfg.IncludeStorage = !genNoStorage
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genSchemas, "schemas", "TEST_SCHEMA", "Comma-separated list of schema names")
	generateCmd.Flags().IntVar(&genTables, "tables", 5, "Number of tables to generate")
	generateCmd.Flags().IntVar(&genDataRows, "data-rows", 100, "Number of data rows per table")
	generateCmd.Flags().IntVar(&genTriggers, "triggers", 3, "Number of triggers to generate")
	generateCmd.Flags().IntVar(&genProcedures, "procedures", 3, "Number of procedures to generate")
	generateCmd.Flags().IntVar(&genFunctions, "functions", 3, "Number of functions to generate")
	generateCmd.Flags().IntVar(&genPackages, "packages", 1, "Number of packages to generate")
	generateCmd.Flags().IntVar(&genLobs, "lobs", 1, "Number of LOB helper routines to generate")
	generateCmd.Flags().StringVar(&genOutputDir, "output-dir", "generated_sql", "Directory for generated SQL")
	generateCmd.Flags().BoolVar(&genSingleFile, "single-file", false, "Write one consolidated SQL file instead of one file per object")
	generateCmd.Flags().BoolVar(&genShiftJIS, "shift-jis", false, "Also write a Shift-JIS copy of the consolidated file")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "Random seed (0 means time-based)")
	generateCmd.Flags().StringVar(&genSchemaFile, "schema-file", "", "YAML file with custom table definitions")
	generateCmd.Flags().BoolVar(&genNoStorage, "no-storage", false, "Omit storage clauses from DDL")
}

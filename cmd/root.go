package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.0"
)

var rootCmd = &cobra.Command{
	Use:   "oraschemagen",
	Short: "Synthetic Oracle schema export generator",
	Long: `
OraSchemaGen assembles synthetic Oracle export scripts: table DDL,
constraints, sequences, batched sample data and PL/SQL stubs, ordered by
object dependencies and written as one consolidated dump or one file per
object.

Nothing is executed against a database; the output is plain SQL text.`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("oraschemagen version %s\n", Version)
			return
		}
		color.New(color.FgCyan, color.Bold).Println("OraSchemaGen", Version)
		fmt.Println()
		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./oraschemagen.config.json)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("oraschemagen.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}

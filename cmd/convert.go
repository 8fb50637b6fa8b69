package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oraschemagen/oraschemagen/internal/sjis"
)

var convertOut string

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Re-encode a generated dump as Shift-JIS",
	Long: `Convert a consolidated UTF-8 dump file to Shift-JIS encoding.
Characters without a Shift-JIS mapping are substituted rather than
failing the conversion.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := args[0]
		out := convertOut
		if out == "" {
			out = input + ".sjis"
		}
		if err := sjis.ConvertFile(input, out); err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}
		color.Green("✅ Converted %s to Shift-JIS: %s", input, out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "Output path (default <input>.sjis)")
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/RyanBlaney/signal-workbench/configs"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the resolved configuration",
	Long: `Load the configuration and display every resolved value.

This command shows the effective settings after defaults, config file, environment
variables and flags have been merged, to help verify that your YAML configuration
is being parsed correctly.

Examples:
  # Show the effective configuration
  signal-workbench config

  # Show with a specific config file
  signal-workbench --config /path/to/config.yaml config`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	printSection("APPLICATION SETTINGS")
	printKeyValue("Verbose", fmt.Sprintf("%t", config.Verbose))
	printKeyValue("Log Level", config.LogLevel)
	printKeyValue("Output Format", config.OutputFormat)
	printKeyValue("Data Directory", config.DataDir)

	printSection("GENERATOR DEFAULTS")
	printKeyValue("Sample Rate", fmt.Sprintf("%g Hz", config.Generator.SampleRate))
	printKeyValue("Duration", fmt.Sprintf("%g s", config.Generator.Duration))
	printKeyValue("Amplitude", fmt.Sprintf("%g", config.Generator.Amplitude))
	printKeyValue("Frequency", fmt.Sprintf("%g Hz", config.Generator.Frequency))
	printKeyValue("Duty Cycle", fmt.Sprintf("%.2f", config.Generator.DutyCycle))
	if config.Generator.Seed != 0 {
		printKeyValue("Seed", fmt.Sprintf("%d", config.Generator.Seed))
	} else {
		printKeyValue("Seed", "none (non-deterministic)")
	}

	printSection("STROBE DEFAULTS")
	printKeyValue("Total Length", fmt.Sprintf("%d", config.Strobe.TotalLength))
	printKeyValue("Rays", fmt.Sprintf("%d", config.Strobe.NumRays))
	printKeyValue("Points Per Ray", fmt.Sprintf("%d", config.Strobe.PointsPerRay))
	printKeyValue("Sample Rate", fmt.Sprintf("%g Hz", config.Strobe.SampleRate))

	printSection("ANALYSIS SETTINGS")
	printKeyValue("Peak Threshold", fmt.Sprintf("%g", config.Analysis.PeakThreshold))
	printKeyValue("Window Function", config.Analysis.WindowFunction)

	printSection("OUTPUT CONFIGURATION")
	printKeyValue("Precision", fmt.Sprintf("%d", config.Output.Precision))
	printKeyValue("Include Metadata", fmt.Sprintf("%t", config.Output.IncludeMetadata))
	printKeyValue("Timestamps", fmt.Sprintf("%t", config.Output.Timestamps))

	fmt.Println()
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Printf("Config file: %s\n", used)
	} else {
		fmt.Println("Config file: none (built-in defaults)")
	}

	return nil
}

func printSection(title string) {
	fmt.Printf("\n%s\n", title)
	fmt.Println(strings.Repeat("-", len(title)))
}

func printKeyValue(key, value string) {
	fmt.Printf("%-25s %s\n", key+":", value)
}

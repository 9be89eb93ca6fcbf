package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	logLevel   string // Log verbosity level
	kernelPath string // Path to the YAML kernel spec
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "gpy",
	Short: "Compound covariance kernels for Gaussian process models",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log verbosity: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&kernelPath, "kernel", "kernel.yaml", "path to the YAML kernel spec")

	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(evalCmd)
}

// Package main is the entry point for the opr-tts-api server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "opr-tts-api",
	Short: "Army Forge to Tabletop Simulator converter",
	Long: `opr-tts-api converts One Page Rules army lists from Army Forge into the
name and description text Tabletop Simulator models use, and stores the
result so the tabletop mod can load it by id.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(convertCmd)
}

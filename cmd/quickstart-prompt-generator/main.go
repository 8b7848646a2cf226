// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quickstart-prompt-generator CLI.
// The questionnaire, composition, and rendering logic live under internal/;
// this package only wires commands, flags, and configuration.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kishore7snehil/quickstart-prompt-generator/internal/store"
	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the quickstart-prompt-generator CLI.
var rootCmd = &cobra.Command{
	Use:   "quickstart-prompt-generator",
	Short: "Generate LLM prompts for SDK quickstart documentation",
	Long: `quickstart-prompt-generator helps SDK and documentation teams create
structured prompts for LLM-based quickstart documentation generation across
any programming language or platform.

Run init to answer a short questionnaire, then generate to produce the three
stage prompts (SDK analysis, style extraction, synthesis). The analyze
subcommands run the parallel workflow for improving existing documentation.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./quickstart-prompt-generator.yaml or ~/.config/quickstart-prompt-generator/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("quickstart-prompt-generator")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "quickstart-prompt-generator"))
		}
	}

	viper.SetDefault("session_file", ".qpg_session.json")
	viper.SetDefault("analysis_session_file", ".qpg_analysis_session.json")
	viper.SetDefault("output.format", "console")

	viper.SetEnvPrefix("QPG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// sessionStore returns the store for a mode, honoring the configured paths.
func sessionStore(mode types.Mode) *store.Store {
	if mode == types.ModeAnalysis {
		return store.New(viper.GetString("analysis_session_file"))
	}
	return store.New(viper.GetString("session_file"))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

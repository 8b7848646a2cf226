// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze existing quickstart documentation for improvements",
	Long: `Analyze runs the improvement workflow in parallel to the generation
workflow, with its own session file. The questionnaire collects the existing
document's source, SDK context, improvement focus areas, and optional
reference quickstarts; generate then produces the three analysis prompts
(rubric evaluation, gap analysis, improvement recommendations).`,
}

var analyzeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new analysis session for existing documentation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(types.ModeAnalysis)
	},
}

var analyzeGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate analysis prompts for documentation improvement",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, types.ModeAnalysis)
	},
}

var analyzeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current analysis session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd, types.ModeAnalysis)
	},
}

var analyzeResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the current analysis session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(types.ModeAnalysis)
	},
}

func init() {
	addGenerateFlags(analyzeGenerateCmd)
	addStatusFlags(analyzeStatusCmd)

	analyzeCmd.AddCommand(analyzeInitCmd)
	analyzeCmd.AddCommand(analyzeGenerateCmd)
	analyzeCmd.AddCommand(analyzeStatusCmd)
	analyzeCmd.AddCommand(analyzeResetCmd)

	rootCmd.AddCommand(analyzeCmd)
}

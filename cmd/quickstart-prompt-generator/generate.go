// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kishore7snehil/quickstart-prompt-generator/internal/compose"
	"github.com/kishore7snehil/quickstart-prompt-generator/internal/render"
	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the three LLM prompts for your quickstart documentation",
	Long: `Generate composes the stage prompts from the completed session: SDK deep
analysis, reference style extraction, and quickstart synthesis. The console
format prints each prompt between copy markers; preview renders them as
styled markdown; markdown and text are suitable for --output files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd, types.ModeGeneration)
	},
}

// runGenerate composes and renders the stage documents for a mode. Shared
// with the analyze generate command.
func runGenerate(cmd *cobra.Command, mode types.Mode) error {
	formatFlag, _ := cmd.Flags().GetString("format")
	if formatFlag == "" {
		formatFlag = viper.GetString("output.format")
	}
	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")

	sess, err := sessionStore(mode).Load()
	if err != nil {
		return err
	}
	if sess == nil {
		return fmt.Errorf("no %s session found: run init first", mode)
	}

	docs, err := compose.Compose(sess)
	if err != nil {
		return err
	}

	if output != "" {
		if err := render.WriteFile(output, docs, format); err != nil {
			return err
		}
		color.Green("Prompts saved to %s", output)
		return nil
	}
	return render.Render(os.Stdout, docs, format)
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "output format: console, markdown, text, or preview")
	cmd.Flags().StringP("output", "o", "", "output file path (writes markdown or text)")
}

func init() {
	addGenerateFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}

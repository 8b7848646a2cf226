// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kishore7snehil/quickstart-prompt-generator/internal/flow"
	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new prompt generation session",
	Long: `Init runs the interactive questionnaire for generation mode: SDK name,
language, repository, reference quickstarts, style preference, and target
framework. Every answer is saved immediately, so an interrupted run resumes
at the last completed step. Type 'back' to return to the previous question,
or 'cancel' to abort without touching a previously saved session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(types.ModeGeneration)
	},
}

// runInit drives the questionnaire for a mode and reports the outcome. It is
// shared with the analyze init command.
func runInit(mode types.Mode) error {
	io := flow.NewConsoleIO()
	io.Notice("Tip: type 'back' to return to the previous question.")

	sess, err := flow.Run(mode, sessionStore(mode), io)
	if err != nil {
		if errors.Is(err, flow.ErrCancelled) {
			color.Yellow("Initialization cancelled.")
			return nil
		}
		return err
	}

	color.Green("Session initialized successfully!")
	fmt.Println(sess.Summary())
	if mode == types.ModeAnalysis {
		fmt.Println("Run 'quickstart-prompt-generator analyze generate' to create analysis prompts.")
	} else {
		fmt.Println("Run 'quickstart-prompt-generator generate' to create your prompts.")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}

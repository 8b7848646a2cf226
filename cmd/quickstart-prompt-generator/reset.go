// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the current generation session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReset(types.ModeGeneration)
	},
}

// runReset removes the persisted session for a mode. Shared with the analyze
// reset command.
func runReset(mode types.Mode) error {
	if err := sessionStore(mode).Clear(); err != nil {
		return err
	}
	color.Green("%s session reset successfully.", mode)
	fmt.Println("Run init to start a new session.")
	return nil
}

func init() {
	rootCmd.AddCommand(resetCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/kishore7snehil/quickstart-prompt-generator/internal/store"
	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatus(cmd, types.ModeGeneration)
	},
}

// runStatus prints the persisted session, as a summary or as YAML. Shared
// with the analyze status command.
func runStatus(cmd *cobra.Command, mode types.Mode) error {
	asYAML, _ := cmd.Flags().GetBool("yaml")

	sess, err := sessionStore(mode).Load()
	if err != nil {
		if errors.Is(err, store.ErrCorruptSession) {
			return fmt.Errorf("session file is unreadable: run reset to discard it (%w)", err)
		}
		return err
	}
	if sess == nil {
		color.Red("No active %s session found.", mode)
		fmt.Println("Run init to get started.")
		return nil
	}

	if asYAML {
		out, err := yaml.Marshal(sess)
		if err != nil {
			return fmt.Errorf("encoding session: %w", err)
		}
		os.Stdout.Write(out)
		return nil
	}

	fmt.Println(sess.Summary())
	if sess.Complete() {
		color.Green("Session complete: ready to generate.")
	} else {
		fmt.Printf("Next step: %s\n", sess.CurrentStep)
	}
	return nil
}

func addStatusFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("yaml", false, "print the full session record as YAML")
}

func init() {
	addStatusFlags(statusCmd)
	rootCmd.AddCommand(statusCmd)
}

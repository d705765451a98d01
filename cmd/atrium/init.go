package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atriumhq/atrium/internal/config"
	"github.com/atriumhq/atrium/internal/home"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the atrium home directory and default config",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		if h.ConfigExists() && !initForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", h.ConfigPath())
		}

		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}
		cmd.Println("wrote default config to", h.ConfigPath())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/secded/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter configuration file",
	Long: `Write a starter configuration file with a freshly generated random seed.

Examples:
  secded init
  secded init --config ./secded.yaml --output-dir ./sim`,
	Args: cobra.NoArgs,
	// The file being created cannot be loaded beforehand
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		outputDir, _ := cmd.Flags().GetString("output-dir")
		force, _ := cmd.Flags().GetBool("force")

		c, err := initializeConfig(configPath, outputDir, force)
		if err != nil {
			return err
		}

		cmd.Printf("Configuration written to %s\n", configPath)
		cmd.Printf("Parity bits: %d\n", c.ParityBits)
		cmd.Printf("Seed: %d\n", c.Vectors.Seed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("output-dir", "", "Directory for generated vector files")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
}

func initializeConfig(configPath, outputDir string, force bool) (*config.Config, error) {
	if config.ConfigExists(configPath) && !force {
		return nil, fmt.Errorf("configuration already exists at %s (use --force to overwrite)", configPath)
	}
	return config.BootstrapConfig(configPath, outputDir)
}

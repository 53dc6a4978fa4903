/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/secded/pkg/config"
)

// cfg is the configuration loaded before every command runs
var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "secded",
	Short: "SECDED - Extended Hamming codec and test-vector generator",
	Long: `secded encodes and decodes extended Hamming (SECDED) blocks and generates
golden test vectors for HDL testbenches of the encoder, decoder and parity units.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		loaded, err := loadConfig(configPath, cmd.Flags().Changed("config"))
		if err != nil {
			return err
		}
		cfg = loaded

		if cmd.Flags().Changed("parity-bits") {
			cfg.ParityBits, _ = cmd.Flags().GetInt("parity-bits")
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			cfg.Logging.Level = "debug"
		}
		return cfg.Validate()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", config.GetDefaultConfigPath(), "Path to the configuration file")
	rootCmd.PersistentFlags().IntP("parity-bits", "m", 4, "Number of Hamming parity bits (block length 2^m)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// loadConfig reads the configuration at path. A missing file falls back to
// defaults unless the path was given explicitly.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if !config.ConfigExists(path) {
		if explicit {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

// debugLogger returns a logger for per-item diagnostics, or nil when debug
// logging is off
func debugLogger(debug bool) *log.Logger {
	if !debug {
		return nil
	}
	return log.New(os.Stderr, "secded: ", log.LstdFlags)
}

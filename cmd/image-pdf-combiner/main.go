// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the image-pdf-combiner CLI.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/MoAlkhateeb/image-pdf-combiner/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; running it performs the combine operation.
var rootCmd = &cobra.Command{
	Use:   "image-pdf-combiner",
	Short: "Combine images and PDFs into a single PDF file",
	Long: `image-pdf-combiner merges every image (.png, .jpeg, .jpg) and PDF file
directly inside a directory into one output PDF, in sorted filename order.
Images become single pages rasterized at the configured DPI; source PDFs
contribute all their pages in their internal order.

When the input or output path is not given as a flag, both are prompted for
interactively on standard input.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCombine,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("input", "i", "", "input directory path")
	rootCmd.Flags().StringP("output", "o", "", "output PDF path (file or directory)")
	rootCmd.Flags().Int("dpi", 0, "DPI for image conversion (default 300)")
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./image-pdf-combiner.yaml or ~/.config/image-pdf-combiner/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("image-pdf-combiner")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "image-pdf-combiner"))
		}
	}

	viper.SetEnvPrefix("IMAGE_PDF_COMBINER")
	viper.AutomaticEnv()
	viper.SetDefault("dpi", types.DefaultDPI)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// exitCode maps a pipeline error to a distinct process exit status per
// error kind.
func exitCode(err error) int {
	switch {
	case errors.Is(err, types.ErrFilesystem):
		return 2
	case errors.Is(err, types.ErrDecode):
		return 3
	case errors.Is(err, types.ErrWrite):
		return 4
	}
	return 1
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(exitCode(err))
	}
}

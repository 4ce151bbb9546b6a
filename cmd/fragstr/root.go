package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Neumenon/fragstr/frag"
	"github.com/Neumenon/fragstr/manifest"
)

var rootCmd = &cobra.Command{
	Use:          "fragstr",
	Short:        "fragstr encodes and decodes fragstrings",
	Long:         `fragstr works with fragstrings: single strings that self-describe and carry a tuple of strings and integers, like "%s%d__foo__42".`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fragstr:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("manifest", "", "Resolve descriptor arguments as names from this YAML manifest")
}

// resolveSchema interprets arg as a literal descriptor, or as a manifest
// entry name when --manifest is set.
func resolveSchema(cmd *cobra.Command, arg string) (*frag.Schema, error) {
	path, err := cmd.Flags().GetString("manifest")
	if err != nil {
		return nil, err
	}
	if path == "" {
		return frag.Compile(arg)
	}
	file, err := manifest.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return file.Schema(arg)
}

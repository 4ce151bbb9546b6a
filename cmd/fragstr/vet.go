package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Neumenon/fragstr/frag"
	"github.com/Neumenon/fragstr/manifest"
)

var vetCmd = &cobra.Command{
	Use:   "vet [manifest.yaml]",
	Short: "Validate descriptors from a manifest or stdin",
	Long: `Validate descriptors. With a file argument, every entry of the YAML
manifest is compiled and failures are reported per name. Without one,
descriptors are read from stdin, one per line. Exits with status 1 if any
descriptor is invalid.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return vetManifest(cmd, args[0])
		}
		return vetStdin(cmd)
	},
}

func vetManifest(cmd *cobra.Command, path string) error {
	file, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}
	errs := file.Validate()
	for _, e := range errs {
		fmt.Fprintln(cmd.OutOrStdout(), e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d descriptors invalid", len(errs), len(file.Names()))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d descriptors ok\n", len(file.Names()))
	return nil
}

func vetStdin(cmd *cobra.Command) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	total, bad := 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++
		if _, err := frag.Compile(line); err != nil {
			bad++
			fmt.Fprintln(cmd.OutOrStdout(), err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d descriptors invalid", bad, total)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d descriptors ok\n", total)
	return nil
}

func init() {
	rootCmd.AddCommand(vetCmd)
}

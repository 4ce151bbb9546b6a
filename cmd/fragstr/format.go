package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Neumenon/fragstr/frag"
)

var formatCmd = &cobra.Command{
	Use:   "format <descriptor> [value]...",
	Short: "Encode values into a fragstring",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := resolveSchema(cmd, args[0])
		if err != nil {
			return err
		}

		raw := args[1:]
		items := schema.Items()
		if len(raw) != len(items) {
			return fmt.Errorf("descriptor %q has %d slots, got %d values", schema, len(items), len(raw))
		}

		values := make([]frag.Value, len(raw))
		for i, s := range raw {
			switch items[i].Type {
			case frag.TypeInt:
				n, err := strconv.ParseInt(s, 10, 64)
				if err != nil {
					return fmt.Errorf("slot %d wants an integer, got %q", i, s)
				}
				values[i] = frag.Int(n)
			default:
				values[i] = frag.Str(s)
			}
		}

		out, err := frag.Encode(schema, values)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

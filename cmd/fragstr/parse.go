package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Neumenon/fragstr/frag"
)

var parseCmd = &cobra.Command{
	Use:   "parse <descriptor> <text>",
	Short: "Decode a fragstring, printing one field per line",
	Long: `Decode a fragstring against a descriptor and print one field per line.
Absent optional fields print as "-". Exits with status 1 if the text does
not match the descriptor.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := resolveSchema(cmd, args[0])
		if err != nil {
			return err
		}

		tuple, ok := frag.Decode(schema, args[1])
		if !ok {
			return fmt.Errorf("input does not match descriptor %q", schema)
		}

		for _, f := range tuple {
			switch {
			case !f.Present():
				fmt.Fprintln(cmd.OutOrStdout(), "-")
			case f.Type() == frag.TypeInt:
				v, _ := f.AsInt()
				fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatInt(v, 10))
			default:
				v, _ := f.AsStr()
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

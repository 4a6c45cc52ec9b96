package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/on-the-ground/tabulated_go/internal/configkeys"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newDecodeCommand(v *viper.Viper) *cobra.Command {
	var at []float64
	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Read a tabulated function and print it, optionally evaluating it",
		Args:  cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return bindFlags(v, cmd.Flags(), binding{configkeys.ConfigTabulateFormat, "format"})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			read, err := decoder(v.GetString(configkeys.ConfigTabulateFormat))
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}

			f, err := read(in)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, f); err != nil {
				return err
			}
			for _, x := range at {
				y := f.Evaluate(x)
				if _, err := fmt.Fprintf(out, "f(%s) = %s\n",
					strconv.FormatFloat(x, 'g', -1, 64),
					strconv.FormatFloat(y, 'g', -1, 64),
				); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("format", formatText, "input format: text or binary")
	cmd.Flags().Float64SliceVar(&at, "at", nil, "evaluate the function at these points")
	return cmd
}
